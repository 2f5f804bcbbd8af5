package pagination

import (
	"github.com/rs/zerolog"
)

// Result is the visible window of a record collection.
type Result[T any] struct {
	Visible    []T
	TotalPages int
}

// Paginate computes the visible records and total page count for opts.
//
//   - Disabled: every record, TotalPages = 0.
//   - Externally managed: records unchanged, TotalPages = *opts.Total verbatim.
//   - Self-managed: TotalPages = ceil(len/pageSize) and the window for currentPage.
//     A page past the end yields an empty, non-nil slice.
//
// pageSize is expected to be resolved with ResolvePageSize; values below 1 are
// treated as DefaultPageSize.
func Paginate[T any](records []T, opts *Options, pageSize, currentPage int) Result[T] {
	switch opts.Kind() {
	case KindDisabled:
		return Result[T]{Visible: records, TotalPages: 0}
	case KindExternallyManaged:
		return Result[T]{Visible: records, TotalPages: *opts.Total}
	case KindSelfManaged:
		return sliceWindow(records, pageSize, currentPage)
	default:
		return Result[T]{Visible: records}
	}
}

// CalculateTotalPages returns ceil(totalItems / pageSize), or 0 for no items.
func CalculateTotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// sliceWindow returns records[(page-1)*size : page*size] clipped to the slice.
func sliceWindow[T any](records []T, pageSize, page int) Result[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := CalculateTotalPages(len(records), pageSize)

	if page < MinPage {
		return Result[T]{Visible: []T{}, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return Result[T]{Visible: []T{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return Result[T]{Visible: records[start:end], TotalPages: totalPages}
}

// State is the only mutable state the pipeline owns.
type State struct {
	CurrentPage int
}

// Engine owns the current-page state for one grid instance.
// It is not safe for concurrent use; page changes are dispatched on the thread
// that renders.
type Engine struct {
	state        State
	opts         *Options
	lastExternal *int
	logger       zerolog.Logger
}

// NewEngine creates an engine seeded from opts.Page, or DefaultPage when absent.
func NewEngine(opts *Options, logger zerolog.Logger) *Engine {
	e := &Engine{
		state:  State{CurrentPage: DefaultPage},
		opts:   opts,
		logger: logger,
	}
	if page, ok := opts.ExplicitPage(); ok {
		e.state.CurrentPage = page
		e.lastExternal = &page
	}
	return e
}

// CurrentPage returns the current page.
func (e *Engine) CurrentPage() int {
	return e.state.CurrentPage
}

// Options returns the options most recently supplied to NewEngine or Sync.
func (e *Engine) Options() *Options {
	return e.opts
}

// Sync records the latest options. When they carry an explicit page that differs from
// the last explicit page seen, it becomes the current page, overriding any locally
// driven page.
func (e *Engine) Sync(opts *Options) {
	e.opts = opts

	page, ok := opts.ExplicitPage()
	if !ok {
		e.lastExternal = nil
		return
	}

	if e.lastExternal != nil && *e.lastExternal == page {
		return
	}

	e.lastExternal = &page
	if page != e.state.CurrentPage {
		e.logger.Debug().
			Str("operation", "sync_page").
			Int("from", e.state.CurrentPage).
			Int("to", page).
			Msg("adopting externally supplied page")
	}
	e.state.CurrentPage = page
}

// PageChange is the page-change entry point used by pagination widgets.
// It updates the current page and, unless pagination is disabled, notifies
// Options.OnChange. The callback is not awaited. A missing callback makes the
// change local-only. Pages below MinPage are dropped without notifying.
func (e *Engine) PageChange(page int) {
	if page < MinPage {
		e.logger.Debug().
			Str("operation", "page_change").
			Int("page", page).
			Msg("ignoring page below the first page")
		return
	}

	e.state.CurrentPage = page

	if e.opts.Kind() == KindDisabled {
		return
	}

	if e.opts == nil || e.opts.OnChange == nil {
		if e.opts.Kind() == KindExternallyManaged {
			e.logger.Debug().
				Str("operation", "page_change").
				Int("page", page).
				Msg("externally managed paging has no change handler, page change is local only")
		}
		return
	}

	e.opts.OnChange(page)
}
