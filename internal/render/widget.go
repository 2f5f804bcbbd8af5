package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/pagination"
)

// Sort indicators appended to header titles.
const (
	IndicatorAsc      = "▲"
	IndicatorDesc     = "▼"
	IndicatorSortable = "↕"
)

// HeaderLabel returns column's title with an indicator for the active sort.
// With hint set, sortable columns that are not active show IndicatorSortable.
func HeaderLabel(column grid.Column, sort *grid.SortDirective, hint bool) string {
	title := column.Title
	if title == "" {
		title = column.Key
	}

	if sort != nil && sort.Key == column.Key {
		switch sort.Order {
		case grid.OrderAsc:
			return title + " " + IndicatorAsc
		case grid.OrderDesc:
			return title + " " + IndicatorDesc
		}
	}
	if hint && column.Sorter.Sortable() {
		return title + " " + IndicatorSortable
	}
	return title
}

// PaginationLine renders the pagination widget as text, for example
// "‹ 1 … 4 [5] 6 … 10 ›  Page 5 of 10". It returns "" when the widget is hidden.
func PaginationLine(meta pagination.Meta) string {
	if !meta.Visible() {
		return ""
	}

	var b strings.Builder
	if meta.HasPrevious {
		b.WriteString("‹ ")
	}

	for i, page := range meta.Items() {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case page == pagination.Ellipsis:
			b.WriteString("…")
		case page == meta.CurrentPage:
			b.WriteString("[" + strconv.Itoa(page) + "]")
		default:
			b.WriteString(strconv.Itoa(page))
		}
	}

	if meta.HasNext {
		b.WriteString(" ›")
	}

	fmt.Fprintf(&b, "  Page %d of %d", meta.CurrentPage, meta.TotalPages)
	return b.String()
}
