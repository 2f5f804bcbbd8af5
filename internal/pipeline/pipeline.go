// Package pipeline composes the data-grid stages into the per-render pipeline:
// sort, then paginate, then resolve row keys and project cells.
//
// A Pipeline belongs to one grid instance. Its only mutable state is the current
// page, held by a pagination.Engine. The sort directive is owned by the caller and
// passed in on every render; header clicks only notify the caller's handler.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
)

// Input is everything a render receives from the caller.
type Input struct {
	// Records is the caller's collection. It is never mutated.
	Records []grid.Record

	// Columns describe how records are displayed and sorted.
	Columns []grid.Column

	// Sort is the caller-controlled directive. Nil means natural order.
	Sort *grid.SortDirective

	// OnSortChange receives the next directive after a sortable header click.
	OnSortChange grid.SortChangeFunc

	// Pagination selects the paging mode. Nil means self-managed with defaults.
	Pagination *pagination.Options

	// PageSize is the top-level page size.
	//
	// Deprecated: set Pagination.PageSize instead, which takes precedence.
	PageSize int

	// RowKey selects row identity. The zero value reads the "id" field.
	RowKey grid.RowKeySpec
}

// Cell is one projected value.
type Cell struct {
	Column grid.Column
	// Value is the raw record value at the column's field, nil when absent.
	Value any
	// Display is the column's render hook output, or Value when there is no hook.
	Display any
}

// Row is one visible record with its identity and projected cells.
type Row struct {
	Key    any
	Index  int
	Record grid.Record
	Cells  []Cell
}

// Output is the result of one render.
type Output struct {
	Columns     []grid.Column
	Rows        []Row
	TotalPages  int
	CurrentPage int
	PageSize    int
	Sort        *grid.SortDirective
	Meta        pagination.Meta
}

// Empty reports whether the render produced no rows.
func (o *Output) Empty() bool {
	return len(o.Rows) == 0
}

// Pipeline runs renders for one grid instance.
type Pipeline struct {
	sorter *grid.SortEngine
	pages  *pagination.Engine

	columns      []grid.Column
	sort         *grid.SortDirective
	onSortChange grid.SortChangeFunc
}

// New creates a pipeline that sorts with sorter. A nil sorter uses root-locale collation.
func New(sorter *grid.SortEngine) *Pipeline {
	if sorter == nil {
		sorter = grid.NewSortEngineForLocale("")
	}
	return &Pipeline{sorter: sorter}
}

// Render runs sort, paginate and projection over in. It never fails: malformed
// columns, unknown sort keys and out-of-range pages all degrade and are logged.
func (p *Pipeline) Render(ctx context.Context, in Input) *Output {
	log := logging.FromContext(ctx)

	if err := grid.ValidateColumns(in.Columns); err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "pipeline").
			Str("operation", "render").
			Err(err).
			Msg("invalid column definitions")
	}

	p.syncPages(log, in.Pagination)
	p.columns = in.Columns
	p.sort = in.Sort
	p.onSortChange = in.OnSortChange

	if in.Sort != nil {
		if _, ok := grid.FindColumn(in.Columns, in.Sort.Key); !ok {
			log.Debug().
				Ctx(ctx).
				Str("component", "pipeline").
				Str("operation", "sort").
				Str("sort_key", in.Sort.Key).
				Msg("sort directive names no column, keeping natural order")
		}
	}
	sorted := p.sorter.Sort(in.Records, in.Sort, in.Columns)

	opts := p.pages.Options()
	pageSize := pagination.ResolvePageSize(opts, in.PageSize)
	current := p.pages.CurrentPage()
	window := pagination.Paginate(sorted, opts, pageSize, current)

	if opts.Kind() == pagination.KindExternallyManaged && current > window.TotalPages {
		log.Warn().
			Ctx(ctx).
			Str("component", "pipeline").
			Str("operation", "paginate").
			Int("current_page", current).
			Int("total_pages", window.TotalPages).
			Msg("current page exceeds caller-supplied total")
	}

	out := &Output{
		Columns:     in.Columns,
		Rows:        project(window.Visible, in.Columns, in.RowKey),
		TotalPages:  window.TotalPages,
		CurrentPage: current,
		PageSize:    pageSize,
		Sort:        in.Sort,
		Meta:        pagination.NewMeta(opts, current, pageSize, window.TotalPages, len(in.Records)),
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "pipeline").
		Str("operation", "render").
		Str("mode", opts.Kind().String()).
		Str("sort", in.Sort.String()).
		Int("records", len(in.Records)).
		Int("visible", len(out.Rows)).
		Int("current_page", current).
		Int("total_pages", window.TotalPages).
		Msg("render complete")

	return out
}

// syncPages creates the page engine on first render and syncs options afterwards.
func (p *Pipeline) syncPages(log *zerolog.Logger, opts *pagination.Options) {
	if p.pages == nil {
		p.pages = pagination.NewEngine(opts, log.With().Str("component", "pagination").Logger())
		return
	}
	p.pages.Sync(opts)
}

// CurrentPage returns the page the next render will show.
func (p *Pipeline) CurrentPage() int {
	if p.pages == nil {
		return pagination.DefaultPage
	}
	return p.pages.CurrentPage()
}

// PageChange is the entry point for a pagination widget. See pagination.Engine.PageChange.
func (p *Pipeline) PageChange(page int) {
	if p.pages == nil {
		p.pages = pagination.NewEngine(nil, zerolog.Nop())
	}
	p.pages.PageChange(page)
}

// HeaderClick handles a click on the header of the column named key, using the
// directive and handler of the most recent render. It reports whether the sort
// handler was invoked.
func (p *Pipeline) HeaderClick(key string) bool {
	column, ok := grid.FindColumn(p.columns, key)
	if !ok {
		return false
	}
	return grid.HeaderClick(p.sort, column, p.onSortChange)
}

// project resolves row keys and cell values for the visible records.
func project(records []grid.Record, columns []grid.Column, spec grid.RowKeySpec) []Row {
	rows := make([]Row, len(records))
	for i, record := range records {
		cells := make([]Cell, len(columns))
		for c, column := range columns {
			value := record[column.Field()]
			display := value
			if column.Render != nil {
				display = column.Render(value, record, i)
			}
			cells[c] = Cell{Column: column, Value: value, Display: display}
		}
		rows[i] = Row{
			Key:    grid.ResolveRowKey(record, i, spec),
			Index:  i,
			Record: record,
			Cells:  cells,
		}
	}
	return rows
}
