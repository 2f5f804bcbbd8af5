package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the datagrid CLI.
// It loads configuration, wires up logging and tracing, and registers the
// render, browse, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "datagrid",
		Short:         "Sort, paginate and render tabular data",
		Long:          "datagrid: sort, paginate and render record collections as tables, JSON, YAML or HTML",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.datagrid/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .datagrid/config.yaml")
	cmd.AddCommand(NewRenderCmd(), NewBrowseCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Render the demo stock screener sorted by price, highest first
  datagrid render --sort price:desc

  # Render page 3 of a CSV file as JSON
  datagrid render --input quotes.csv --page 3 --output json

  # Page through the demo data served from SQLite
  datagrid render --backend sqlite --page 2 --size small

  # Browse a YAML file interactively
  datagrid browse --input records.yaml --columns columns.yaml

  # Initialize configuration
  datagrid config init`

// loadConfig resolves the project directory and installs the effective
// configuration as the global config.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	projectFlag, _ := cmd.Flags().GetString("project-dir")

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, cwd)
	config.SetResolvedProjectDir(projectDir)

	if configPath != "" {
		cfg, loadErr := config.Load(configPath)
		if loadErr != nil {
			return fmt.Errorf("loading config: %w", loadErr)
		}
		config.SetGlobalConfig(cfg)
		return nil
	}

	config.SetGlobalConfig(config.NewWithProjectDir(ctx, projectDir))
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
