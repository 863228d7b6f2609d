package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/config"
	"rhystmorgan/veContacts/internal/logging"
	"rhystmorgan/veContacts/internal/views"
)

// options holds the command line flags
type options struct {
	configPath   string
	logFile      string
	noAnimations bool
	seedCount    int
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vecontacts",
		Short: "Terminal contact list panel",
		Long: `vecontacts shows a list of placeholder contacts that can be selected,
added and deleted. The selected contact is shown in a side panel.

Nothing is persisted: every run starts from freshly generated contacts.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&opts.noAnimations, "no-animations", false, "disable list and panel transitions")
	cmd.Flags().IntVar(&opts.seedCount, "seed-count", 0, "number of placeholder contacts to start with")

	return cmd
}

// loadConfig applies command line flags on top of file and env configuration
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if opts.noAnimations {
		cfg.Animation.Enabled = false
	}
	if cmd.Flags().Changed("seed-count") {
		cfg.Panel.SeedCount = opts.seedCount
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app := views.NewAppModel(cfg, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to flush audit trail", zap.Error(err))
		}
	}()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}

	logger.Info("contact panel stopped", zap.Int("contacts", app.Panel().Len()))
	return nil
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
