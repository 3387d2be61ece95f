package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// configKey stores the loaded configuration in the command context.
type configKey struct{}

// NewRootCmd creates the root Cobra command for the gridview CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, nil)
}

// NewRootCmdWithEnv creates the root command with an explicit environment for
// testability. A nil environ reads the process environment.
func NewRootCmdWithEnv(ver string, environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridview",
		Short: "Filter, sort and page through tabular records",
		Long: "gridview loads records from JSON, YAML, CSV or SQLite inputs and shows them one page at a time,\n" +
			"narrowed by a search query and ordered by a column.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, args, environ)
			if err != nil {
				return err
			}
			return setupLogging(cmd, loaded)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			config.CloseLogFile()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default: nearest gridview.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("log-level", "", "log level: trace, debug, info, warn or error")
	pf.String("log-format", "", "log format: console or json")
	pf.String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(NewShowCmd(), NewBrowseCmd(), NewPagesCmd(), NewColumnsCmd())
	return cmd
}

const rootCmdExample = `  # Print the first page of a JSON export
  gridview show deals.json

  # Search, sort and jump to a page
  gridview show deals.json -q acme --sort amount:desc --page 2 --page-size 25

  # Query a SQLite database and print markdown
  gridview show crm.db --sql-query "SELECT * FROM contacts" --format markdown

  # Browse interactively and reload on change
  gridview browse deals.json --watch

  # Print the page links for page 7 of 20
  gridview pages --current 7 --total 20`

// loadConfig layers defaults, config file, environment, flags and positional
// inputs, then stores the result in the command context.
func loadConfig(cmd *cobra.Command, args, environ []string) (*config.Loaded, error) {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(config.LoadOptions{
		File:    path,
		Flags:   cmd.Flags(),
		Inputs:  args,
		Environ: environ,
	})
	if err != nil {
		return nil, err
	}
	cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, loaded))
	return loaded, nil
}

// configFrom returns the configuration loaded by the root command, or the
// defaults when none was loaded.
func configFrom(ctx context.Context) *config.Config {
	if loaded, ok := ctx.Value(configKey{}).(*config.Loaded); ok {
		return &loaded.Config
	}
	cfg := config.Default()
	return &cfg
}

// setupLogging rebuilds the global logger from configuration and --debug and
// attaches a cli component logger to the command context.
func setupLogging(cmd *cobra.Command, loaded *config.Loaded) error {
	cfg := loaded.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Level = "debug"
	}

	if err := config.InitLogger(cfg); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	logger = logging.ComponentLogger(config.GetLogger(), "cli")
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().
		Str("command", cmd.Name()).
		Str("config_file", loaded.FileUsed).
		Strs("inputs", loaded.Inputs).
		Msg("command started")
	return nil
}
