package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/history"
	"github.com/kintreeapp/kintree/pkg/pipeline"
	"github.com/kintreeapp/kintree/pkg/provider"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

// browseCommand creates the browse command for the interactive terminal UI.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		data  string
		start string
		width float64
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore the family tree in an interactive terminal UI",
		Long: `Browse opens a terminal UI showing the three-row frame around one
person. Arrow keys move between relatives, enter recenters the tree on
the highlighted person, and r retries a failed fetch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			prov, cleanup, err := c.openProvider(ctx, cfg, data)
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			trail, store := loadHistory(c.Logger)

			startID, err := resolveStart(prov, start, trail.LastViewed)
			if err != nil {
				return err
			}

			model := newBrowseModel(prov, startID, width)
			if store != nil {
				model.onVisit = func(personID string) {
					trail.Visit(personID)
					if err := store.Save(trail); err != nil {
						c.Logger.Debug("save history", "err", err)
					}
				}
			}

			_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "family data file (overrides configured provider)")
	cmd.Flags().StringVar(&start, "start", "", "person id to center on first")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultFrameWidth, "frame width used for centering")

	return cmd
}

// loadHistory opens the viewing history. History is a convenience, so
// failures only degrade the experience and are logged at debug level.
func loadHistory(logger *log.Logger) (history.History, *history.FileStore) {
	store, err := history.NewFileStore("")
	if err != nil {
		logger.Debug("open history store", "err", err)
		return history.History{}, nil
	}
	trail, err := store.Load()
	if err != nil {
		logger.Debug("load history", "err", err)
		return history.History{}, store
	}
	return trail, store
}

// resolveStart picks the person to center on first: the --start flag,
// then the last viewed person (when the data source still has them),
// then the data source's first person.
func resolveStart(prov provider.Provider, flag, lastViewed string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	store, ok := prov.(*memory.Store)
	if !ok {
		// Remote sources cannot be enumerated; fall back to history.
		if lastViewed != "" {
			return lastViewed, nil
		}
		return "", errors.New(errors.ErrCodeInvalidInput,
			"this data source needs --start <person-id>")
	}

	people := store.People()
	if len(people) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "data source has no people")
	}
	for _, p := range people {
		if p.ID == lastViewed {
			return lastViewed, nil
		}
	}
	return people[0].ID, nil
}
