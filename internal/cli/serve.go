package cli

import (
	"github.com/spf13/cobra"

	"github.com/kintreeapp/kintree/internal/server"
)

// serveCommand creates the serve command for running the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		data    string
		demo    bool
		ownTree bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve interactive family tree pages over HTTP",
		Long: `Serve runs an HTTP server exposing tree pages at /tree/{person-id},
raw SVG and JSON artifacts, and a Graphviz pedigree export. The data
source and cache come from kintree.toml unless overridden by flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			dataFile := data
			if demo {
				dataFile = ""
				cfg.Provider.Kind = "demo"
			}

			prov, cleanup, err := c.openProvider(ctx, cfg, dataFile)
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			runner, err := c.newRunner(ctx, cfg, prov, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(server.Options{
				Addr:       cfg.Server.Addr,
				Runner:     runner,
				Logger:     c.Logger,
				FrameWidth: cfg.Render.FrameWidth,
				Style:      cfg.Render.Style,
				OwnTree:    ownTree,
			})

			printInfo("Serving on %s", cfg.Server.Addr)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&data, "data", "", "family data file (overrides configured provider)")
	cmd.Flags().BoolVar(&demo, "demo", false, "serve the built-in demo family")
	cmd.Flags().BoolVar(&ownTree, "own", false, "treat trees as the viewer's own (adds placeholders)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}
