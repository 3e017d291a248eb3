package cli

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/artable/internal/config"
	"github.com/rshade/artable/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationLogToFile marks commands that own the terminal and must keep
// diagnostics off stderr.
const annotationLogToFile = "artable/log-to-file"

// NewRootCmd creates the root Cobra command for the artable CLI.
// It loads .env and the config file, wires logging and tracing, and registers
// the browse, page and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "artable",
		Short:        "Browse the Art Institute of Chicago collection in your terminal",
		Long:         "artable: a paginated, selectable table of artworks from the Art Institute of Chicago API",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("config", "", "config file (default $ARTABLE_HOME/config.yaml or ~/.artable/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "API base URL (overrides config and ARTABLE_API_URL)")
	cmd.PersistentFlags().String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. 127.0.0.1:9464")
	cmd.AddCommand(NewBrowseCmd(), NewPageCmd(), newConfigCmd())

	return cmd
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Listen, _ = cmd.Flags().GetString("metrics-addr")
	}
	return cfg, nil
}

const rootCmdExample = `  # Browse artworks interactively
  artable browse

  # Start browsing at page 5
  artable browse --page 5

  # Print page 3 as JSON
  artable page 3 --output json

  # Show the effective configuration
  artable config show

  # Browse with a Prometheus endpoint for request metrics
  artable browse --metrics-addr 127.0.0.1:9464`
