package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kintreeapp/kintree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "json", "dot"
	data     string   // family data file overriding the configured provider
	width    float64  // frame width in pixels
	style    string   // visual style
	ownTree  bool     // enable add-relative placeholders on empty rows
	detailed bool     // include lifespans in DOT labels
	refresh  bool     // bypass the artifact cache
	noCache  bool     // disable artifact caching entirely
}

// renderCommand creates the render command for generating tree artifacts.
// It renders the three-row frame for one person to SVG, JSON, or DOT.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width: pipeline.DefaultFrameWidth,
		style: pipeline.DefaultStyle,
	}

	cmd := &cobra.Command{
		Use:   "render [person-id]",
		Short: "Render one person's family tree to SVG, JSON, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.data, "data", "", "family data file (overrides configured provider)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: classic (default)")
	cmd.Flags().BoolVar(&opts.ownTree, "own", false, "treat this as the viewer's own tree (adds placeholders)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include lifespans in DOT labels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// runRender fetches the person's relationships, composes the frame, and
// writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, personID string, opts *renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	prov, cleanup, err := c.openProvider(ctx, cfg, opts.data)
	if err != nil {
		return err
	}
	defer cleanup(ctx)

	runner, err := c.newRunner(ctx, cfg, prov, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering tree of %s...", personID))
	spinner.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		PersonID:   personID,
		OwnTree:    opts.ownTree,
		FrameWidth: opts.width,
		Formats:    opts.formats,
		Style:      opts.style,
		Detailed:   opts.detailed,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered tree of %s", result.Set.Selected.DisplayName()))

	base := basePath(opts.output, personID)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}

	printTreeStats(result.Stats.PersonCount, result.Stats.ConnectorCount, result.CacheInfo.RenderHit)
	printNextStep("Serve it interactively", appName+" serve")
	return nil
}

// basePath derives the base output path from the output flag and person id.
// If output is empty, the person id is used. A known format extension on
// the output path is stripped so per-format suffixes can be appended.
func basePath(output, personID string) string {
	if output == "" {
		return personID
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
