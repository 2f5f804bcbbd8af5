package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/source"
)

// Page backends for externally managed paging.
const (
	backendNone   = ""
	backendMemory = "memory"
	backendSQLite = "sqlite"
)

// Source errors.
var (
	errUnknownBackend    = errors.New("--backend must be memory or sqlite")
	errBackendNoPaging   = errors.New("--backend cannot be combined with --no-pagination")
	errBackendTotal      = errors.New("--backend computes the page count, --total-pages is not allowed")
	errTableNeedsColumns = errors.New("--table requires --columns")
	errSQLiteSeedsDemo   = errors.New("--backend sqlite seeds only the demo data, use --table to page through other data")
)

// gridFlags holds the data selection flags shared by render and browse.
type gridFlags struct {
	input     string
	columns   string
	sort      string
	locale    string
	rowKey    string
	demoCount int
	seed      uint64

	backend  string
	dsn      string
	table    string
	cacheTTL time.Duration

	paging *pagination.Params
}

func newGridFlags() *gridFlags {
	return &gridFlags{paging: pagination.NewParams()}
}

// register adds the flags to cmd.
func (f *gridFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", "records file (.json, .yaml, .yml or .csv); demo stock data when empty")
	flags.StringVar(&f.columns, "columns", "", "YAML column definitions (default: inferred from the records)")
	flags.StringVar(&f.sort, "sort", "", "initial sort as key or key:asc|desc")
	flags.StringVar(&f.locale, "locale", "", "BCP 47 locale for string collation and number formatting")
	flags.StringVar(&f.rowKey, "row-key", "", "record field that identifies rows")
	flags.IntVar(&f.demoCount, "demo-count", source.DemoStockCount, "number of demo stock records")
	flags.Uint64Var(&f.seed, "seed", 1, "demo data seed")

	flags.StringVar(&f.backend, "backend", backendNone, "serve pages from a backend: memory or sqlite")
	flags.StringVar(&f.dsn, "dsn", ":memory:", "SQLite data source for --backend sqlite")
	flags.StringVar(&f.table, "table", "", "existing SQLite table to page through (default: seeded demo table)")
	flags.DurationVar(&f.cacheTTL, "cache-ttl", source.DefaultCacheTTL, "reuse fetched backend pages for this long (0 disables)")

	flags.IntVar(&f.paging.Page, "page", 0, "page to show (default 1)")
	flags.IntVar(&f.paging.PageSize, "page-size", 0, "records per page (default from config)")
	flags.IntVar(&f.paging.TotalPages, "total-pages", -1,
		"treat the records as one page of this many (externally managed paging)")
	flags.BoolVar(&f.paging.Disabled, "no-pagination", false, "show every record")
	flags.IntVar(&f.paging.Siblings, "siblings", pagination.DefaultSiblings, "page links on each side of the current page")
	flags.IntVar(&f.paging.Boundaries, "boundaries", pagination.DefaultBoundaries, "page links pinned at each end")
}

// applyConfig fills values the user did not set from the table configuration.
func (f *gridFlags) applyConfig(cmd *cobra.Command, table config.TableConfig) {
	if f.locale == "" {
		f.locale = table.Locale
	}
	if !f.paging.Disabled && f.paging.PageSize == 0 {
		f.paging.PageSize = table.PageSize
	}
	if !cmd.Flags().Changed("siblings") {
		f.paging.Siblings = table.Siblings
	}
	if !cmd.Flags().Changed("boundaries") {
		f.paging.Boundaries = table.Boundaries
	}
}

// validate checks flag combinations before anything is loaded.
func (f *gridFlags) validate() error {
	if err := f.paging.Validate(); err != nil {
		return err
	}

	switch f.backend {
	case backendNone:
		return nil
	case backendMemory, backendSQLite:
	default:
		return fmt.Errorf("%w: got %q", errUnknownBackend, f.backend)
	}
	if f.paging.Disabled {
		return errBackendNoPaging
	}
	if f.paging.TotalPages >= 0 {
		return errBackendTotal
	}
	if f.backend == backendSQLite && f.table != "" && f.columns == "" {
		return errTableNeedsColumns
	}
	if f.backend == backendSQLite && f.table == "" && f.input != "" {
		return errSQLiteSeedsDemo
	}
	return nil
}

// gridData is everything a grid surface needs, loaded from the flags.
type gridData struct {
	records []grid.Record
	columns []grid.Column
	sort    *grid.SortDirective
	sorter  *grid.SortEngine
	rowKey  grid.RowKeySpec
	fetcher source.PageFetcher
	db      *sql.DB
}

// Close logs the page cache counters and releases the SQLite handle, if any.
func (d *gridData) Close() error {
	if cached, ok := d.fetcher.(*source.CachedFetcher); ok {
		hits, misses := cached.Stats()
		logger.Debug().
			Str("operation", "close").
			Int("cache_hits", hits).
			Int("cache_misses", misses).
			Msg("page cache summary")
	}
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// loadGrid loads records, columns and the optional page backend.
func loadGrid(ctx context.Context, f *gridFlags, table config.TableConfig) (*gridData, error) {
	log := logging.FromContext(ctx)

	data := &gridData{sorter: grid.NewSortEngineForLocale(f.locale)}

	sort, err := grid.ParseDirective(f.sort)
	if err != nil {
		return nil, fmt.Errorf("parsing --sort: %w", err)
	}
	data.sort = sort

	rowKey := table.RowKey
	if f.input == "" {
		data.records = source.StockRecords(f.demoCount, f.seed)
		data.columns = source.StockColumns(data.sorter.Locale())
		rowKey = source.FieldSymbol
	} else {
		ds, loadErr := source.LoadFile(f.input)
		if loadErr != nil {
			return nil, loadErr
		}
		data.records = ds.Records
		data.columns = source.InferColumns(ds)
	}
	if f.rowKey != "" {
		rowKey = f.rowKey
	}
	data.rowKey = grid.RowKeyField(rowKey)

	if f.columns != "" {
		columns, colErr := source.LoadColumns(f.columns)
		if colErr != nil {
			return nil, colErr
		}
		data.columns = columns
	}

	if err = data.openBackend(ctx, f, rowKey); err != nil {
		_ = data.Close()
		return nil, err
	}
	if data.fetcher != nil {
		data.fetcher = source.NewCachedFetcher(data.fetcher, f.cacheTTL)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "load_grid").
		Str("input", f.input).
		Str("backend", f.backend).
		Int("records", len(data.records)).
		Int("columns", len(data.columns)).
		Str("locale", data.sorter.Locale().String()).
		Msg("grid data loaded")

	return data, nil
}

func (d *gridData) openBackend(ctx context.Context, f *gridFlags, keyColumn string) error {
	switch f.backend {
	case backendMemory:
		d.fetcher = source.NewMemorySource(d.records, d.columns, d.sorter)
		return nil
	case backendSQLite:
		db, err := source.OpenSQLite(ctx, f.dsn)
		if err != nil {
			return err
		}
		d.db = db

		if f.table != "" {
			keys := make([]string, len(d.columns))
			for i, column := range d.columns {
				keys[i] = column.Field()
			}
			src, srcErr := source.NewSQLSource(db, f.table, keys, keyColumn)
			if srcErr != nil {
				return srcErr
			}
			d.fetcher = src
			return nil
		}

		if err = source.SeedStocks(ctx, db, d.records); err != nil {
			return err
		}
		src, err := source.NewStockSource(db)
		if err != nil {
			return err
		}
		d.fetcher = src
		return nil
	default:
		return nil
	}
}

// logPageChange is the change handler for pipelines driven by the CLI. The CLI
// renders once, so a page change is only recorded.
func logPageChange(ctx context.Context) pagination.ChangeFunc {
	return func(page int) {
		logging.FromContext(ctx).Debug().
			Ctx(ctx).
			Str("component", "cli").
			Str("operation", "page_change").
			Int("page", page).
			Msg("page change requested")
	}
}
