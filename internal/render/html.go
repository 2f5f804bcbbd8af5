package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/pipeline"
)

// CSS utility classes for the HTML fragment.
const (
	classWrapper   = "overflow-x-auto"
	classTable     = "min-w-full bg-white rounded-lg shadow-sm"
	classBordered  = "border border-gray-200"
	classHeader    = "font-medium text-gray-500 uppercase tracking-wider"
	classHeaderRow = "border-b border-gray-200"
	classBody      = "bg-white divide-y divide-gray-200"
	classRow       = "hover:bg-gray-50"
	classCell      = "whitespace-nowrap text-gray-900"
	classSortable  = "cursor-pointer select-none"
	classSpinner   = "flex justify-center items-center p-8"
	classEmpty     = "text-center py-8 text-gray-500"
	classNav       = "flex items-center justify-between mt-4"
	classPageLink  = "px-3 py-1 rounded text-sm text-gray-700"
	classPageOn    = "px-3 py-1 rounded text-sm bg-blue-600 text-white"
)

// sizeClass returns padding and font classes for a table size.
func sizeClass(size string) string {
	switch size {
	case SizeSmall:
		return "px-3 py-2 text-xs"
	case SizeLarge:
		return "px-8 py-5 text-base"
	default:
		return "px-6 py-4 text-sm"
	}
}

func alignClass(align grid.Align) string {
	switch align {
	case grid.AlignCenter:
		return "text-center"
	case grid.AlignRight:
		return "text-right"
	default:
		return "text-left"
	}
}

func joinClasses(classes ...string) string {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

// Page returns the HTML fragment for out: a table with a pagination nav, a
// spinner while loading, or an empty state when there are no rows.
func Page(out *pipeline.Output, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="%s">`, templ.EscapeString(joinClasses(classWrapper, opts.ClassName))); err != nil {
			return err
		}

		if opts.Loading {
			if err := spinner().Render(ctx, w); err != nil {
				return err
			}
			return writef(w, "</div>")
		}

		if err := Table(out, opts).Render(ctx, w); err != nil {
			return err
		}
		if out.Empty() {
			if err := EmptyState(opts.emptyMessage()).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := Nav(out.Meta).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, "</div>")
	})
}

// Table returns the <table> element for out.
func Table(out *pipeline.Output, opts Options) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tableClass := classTable
		headerClass := joinClasses(sizeClass(opts.Size), classHeader)
		if opts.Bordered {
			tableClass = joinClasses(classTable, classBordered)
			headerClass = joinClasses(headerClass, classHeaderRow)
		}

		if err := writef(w, `<table class="%s"><thead><tr>`, tableClass); err != nil {
			return err
		}
		for _, column := range out.Columns {
			if err := headerCell(w, column, out.Sort, headerClass); err != nil {
				return err
			}
		}
		if err := writef(w, `</tr></thead><tbody class="%s">`, classBody); err != nil {
			return err
		}

		for _, row := range out.Rows {
			if err := writef(w, `<tr class="%s" data-row-key="%s">`,
				classRow, templ.EscapeString(DisplayString(row.Key))); err != nil {
				return err
			}
			for _, cell := range row.Cells {
				class := joinClasses(sizeClass(opts.Size), classCell, alignClass(cell.Column.Align))
				if err := writef(w, `<td class="%s">%s</td>`,
					class, templ.EscapeString(DisplayString(cell.Display))); err != nil {
					return err
				}
			}
			if err := writef(w, "</tr>"); err != nil {
				return err
			}
		}

		return writef(w, "</tbody></table>")
	})
}

func headerCell(w io.Writer, column grid.Column, sort *grid.SortDirective, base string) error {
	class := joinClasses(base, alignClass(column.Align))
	attrs := ""
	if column.Sorter.Sortable() {
		class = joinClasses(class, classSortable)
		attrs = ` data-sort-key="` + templ.EscapeString(column.Key) + `"`
		if sort != nil && sort.Key == column.Key {
			attrs += ` aria-sort="` + ariaSort(sort.Order) + `"`
		}
	}
	if column.Width > 0 {
		attrs += ` style="width: ` + strconv.Itoa(column.Width) + `ch"`
	}
	return writef(w, `<th scope="col" class="%s"%s>%s</th>`,
		class, attrs, templ.EscapeString(HeaderLabel(column, sort, false)))
}

func ariaSort(order grid.Order) string {
	if order == grid.OrderDesc {
		return "descending"
	}
	return "ascending"
}

func spinner() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<div class="%s" role="status"><span>Loading...</span></div>`, classSpinner)
	})
}

// EmptyState returns the placeholder shown below a table with no rows.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<div class="%s">%s</div>`, classEmpty, templ.EscapeString(message))
	})
}

// Nav returns the pagination links for meta. It renders nothing when the
// widget is hidden.
func Nav(meta pagination.Meta) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if !meta.Visible() {
			return nil
		}
		if err := writef(w, `<nav class="%s" aria-label="Pagination">`, classNav); err != nil {
			return err
		}
		if meta.HasPrevious {
			if err := pageLink(w, meta.CurrentPage-1, "‹", false); err != nil {
				return err
			}
		}
		for _, page := range meta.Items() {
			var err error
			if page == pagination.Ellipsis {
				err = writef(w, `<span class="%s">…</span>`, classPageLink)
			} else {
				err = pageLink(w, page, strconv.Itoa(page), page == meta.CurrentPage)
			}
			if err != nil {
				return err
			}
		}
		if meta.HasNext {
			if err := pageLink(w, meta.CurrentPage+1, "›", false); err != nil {
				return err
			}
		}
		return writef(w, `<span class="%s">Page %d of %d</span></nav>`,
			classPageLink, meta.CurrentPage, meta.TotalPages)
	})
}

func pageLink(w io.Writer, page int, label string, active bool) error {
	if active {
		return writef(w, `<span class="%s" aria-current="page">%s</span>`, classPageOn, label)
	}
	return writef(w, `<button type="button" class="%s" data-page="%d">%s</button>`, classPageLink, page, label)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}
