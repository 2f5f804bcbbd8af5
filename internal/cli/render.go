package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/pipeline"
	"github.com/rshade/datagrid/internal/render"
)

// errInvalidOutput is returned for an --output value that names no renderer.
var errInvalidOutput = errors.New("--output must be one of table, json, ndjson, yaml, html")

// renderFlags holds presentation flags for the render command.
type renderFlags struct {
	output       string
	size         string
	bordered     bool
	loading      bool
	emptyMessage string
	className    string
}

// NewRenderCmd creates the render command, which runs the grid pipeline once and
// writes the visible page.
func NewRenderCmd() *cobra.Command {
	grid := newGridFlags()
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Sort, paginate and print a page of records",
		Long: `Runs the grid pipeline once over a record collection and prints the visible page.

Records come from --input (JSON, YAML or CSV) or the built-in demo stock screener.
Paging is self-managed by default. --total-pages treats the input as a single page
of an externally managed collection, and --backend serves pages from an in-memory
or SQLite page source.`,
		Example: `  # Demo data, page 2, sorted by change percent
  datagrid render --sort changePercent:desc --page 2

  # Every record as NDJSON
  datagrid render --input records.json --no-pagination --output ndjson

  # HTML fragment, small bordered table
  datagrid render --output html --size small --bordered

  # Page 4 of the demo data served from SQLite
  datagrid render --backend sqlite --page 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, grid, &rf)
		},
	}

	grid.register(cmd)
	cmd.Flags().StringVarP(&rf.output, "output", "o", "", "output format: table, json, ndjson, yaml, html (default from config)")
	cmd.Flags().StringVar(&rf.size, "size", "", "table size: small, middle, large (default from config)")
	cmd.Flags().BoolVar(&rf.bordered, "bordered", true, "draw cell borders (default from config)")
	cmd.Flags().BoolVar(&rf.loading, "loading", false, "render the loading placeholder instead of rows")
	cmd.Flags().StringVar(&rf.emptyMessage, "empty-message", "", "text shown when there are no rows")
	cmd.Flags().StringVar(&rf.className, "class", "", "extra CSS class for the HTML wrapper")

	return cmd
}

func runRender(cmd *cobra.Command, gf *gridFlags, rf *renderFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	opts, err := rf.options(cmd, cfg)
	if err != nil {
		return err
	}

	gf.applyConfig(cmd, cfg.Table)
	if err = gf.validate(); err != nil {
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

	in := pipeline.Input{
		Records: data.records,
		Columns: data.columns,
		Sort:    data.sort,
		RowKey:  data.rowKey,
	}

	if data.fetcher != nil {
		page, fetchErr := data.fetcher.FetchPage(ctx, max(gf.paging.Page, pagination.MinPage), gf.paging.PageSize, data.sort)
		if fetchErr != nil {
			return fmt.Errorf("fetching page: %w", fetchErr)
		}
		in.Records = page.Records
		in.Pagination = pagination.ExternallyManaged(page.Number, page.TotalPages, gf.paging.PageSize, logPageChange(ctx))
		in.Pagination.Siblings = gf.paging.Siblings
		in.Pagination.Boundaries = gf.paging.Boundaries
	} else {
		in.Pagination = gf.paging.ToOptions(logPageChange(ctx))
	}

	out := pipeline.New(data.sorter).Render(ctx, in)

	w := cmd.OutOrStdout()
	opts.Styled = isWriterTerminal(w)

	logger.Debug().
		Ctx(ctx).
		Str("operation", "render").
		Str("format", opts.Format).
		Int("rows", len(out.Rows)).
		Int("current_page", out.CurrentPage).
		Int("total_pages", out.TotalPages).
		Msg("rendering page")

	return render.Render(ctx, w, out, opts)
}

// options resolves presentation settings from flags and configuration.
func (rf *renderFlags) options(cmd *cobra.Command, cfg *config.Config) (render.Options, error) {
	opts := render.Options{
		Format:       cfg.Output.DefaultFormat,
		Size:         cfg.Table.Size,
		Bordered:     cfg.Table.Bordered,
		Loading:      rf.loading,
		EmptyMessage: cfg.Table.EmptyMessage,
		ClassName:    rf.className,
	}

	if rf.output != "" {
		opts.Format = rf.output
	}
	if !config.IsValidFormat(opts.Format) {
		return opts, fmt.Errorf("%w: got %q", errInvalidOutput, opts.Format)
	}

	if rf.size != "" {
		switch rf.size {
		case render.SizeSmall, render.SizeMiddle, render.SizeLarge:
			opts.Size = rf.size
		default:
			return opts, fmt.Errorf("%w: got %q", config.ErrInvalidSize, rf.size)
		}
	}
	if cmd.Flags().Changed("bordered") {
		opts.Bordered = rf.bordered
	}
	if rf.emptyMessage != "" {
		opts.EmptyMessage = rf.emptyMessage
	}

	return opts, nil
}

// isWriterTerminal reports whether the provided io.Writer refers to a terminal.
// It returns true when w is an *os.File whose file descriptor is a terminal, and false for any other writer.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

