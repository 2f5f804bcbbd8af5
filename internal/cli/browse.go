package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/tui"
)

// errNotTerminal is returned when browse is started without an interactive terminal.
var errNotTerminal = errors.New("browse requires an interactive terminal, use render instead")

// NewBrowseCmd creates the browse command, an interactive grid with header-click
// sorting and page navigation.
func NewBrowseCmd() *cobra.Command {
	grid := newGridFlags()
	var title string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse records in an interactive grid",
		Long: `Opens the records in an interactive terminal grid.

Keys:
  ←/→ or h/l       select a column
  enter or s       sort by the selected column (cycles through its sort orders)
  n/p, pgdown/pgup next and previous page
  g/home, G/end    first and last page
  q, ctrl+c        quit

With --backend each page is fetched from the page source as you navigate.`,
		Example: `  # Browse the demo stock screener
  datagrid browse

  # Browse a CSV file, 25 rows per page
  datagrid browse --input trades.csv --page-size 25

  # Pages served from SQLite
  datagrid browse --backend sqlite`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			return runBrowse(cmd, grid, title)
		},
	}

	grid.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "title shown above the grid")

	return cmd
}

func runBrowse(cmd *cobra.Command, gf *gridFlags, title string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	gf.applyConfig(cmd, cfg.Table)
	if err := gf.validate(); err != nil {
		return err
	}

	data, err := loadGrid(ctx, gf, cfg.Table)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := data.Close(); closeErr != nil {
			logger.Warn().Ctx(ctx).Err(closeErr).Msg("closing page source")
		}
	}()

	return tui.Run(ctx, browseConfig(gf, data, title, cfg.Table))
}

// browseConfig assembles the interactive grid settings.
func browseConfig(gf *gridFlags, data *gridData, title string, table config.TableConfig) tui.GridConfig {
	if title == "" && gf.input == "" {
		title = "Stock Screener"
	}
	return tui.GridConfig{
		Title:        title,
		Records:      data.records,
		Columns:      data.columns,
		Sort:         data.sort,
		RowKey:       data.rowKey,
		Sorter:       data.sorter,
		Paging:       gf.paging,
		Fetcher:      data.fetcher,
		EmptyMessage: table.EmptyMessage,
	}
}
