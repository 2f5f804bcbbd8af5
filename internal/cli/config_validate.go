package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/grid"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file (or --config),
the project overlay, and DATAGRID_* environment overrides.

This includes:
- Page size and pagination widget ranges
- Table size and output format names
- Logging level
- Sort locale`,
		Example: `  # Validate current configuration
  datagrid config validate

  # Validate and show detailed information
  datagrid config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	engine := grid.NewSortEngineForLocale(cfg.Table.Locale)
	if cfg.Table.Locale != "" && engine.Locale().String() == "und" {
		cmd.Printf("Warning: locale %q is not recognized, using root collation\n", cfg.Table.Locale)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, engine)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, engine *grid.SortEngine) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if path := cfg.ConfigPath(); path != "" {
		cmd.Printf("  Config file: %s\n", path)
	}
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		cmd.Printf("  Project directory: %s\n", projectDir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Page size: %d\n", cfg.Table.PageSize)
	cmd.Printf("  Page links: %d siblings, %d boundaries\n", cfg.Table.Siblings, cfg.Table.Boundaries)
	cmd.Printf("  Table size: %s (bordered: %t)\n", cfg.Table.Size, cfg.Table.Bordered)
	cmd.Printf("  Sort locale: %s\n", engine.Locale())
	cmd.Printf("  Row key: %s\n", cfg.Table.RowKey)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
