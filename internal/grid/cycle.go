package grid

// SortChangeFunc receives the directive produced by a header click.
// A nil directive means natural order.
type SortChangeFunc func(directive *SortDirective)

// NextDirective returns the directive that follows current after a click on column's
// header. Only one directive exists at a time, so clicking a column other than the
// active one always starts that column at OrderAsc.
//
//	CycleDefault: Unsorted -> Asc -> Desc -> Unsorted
//	CycleLoop:    Unsorted|Desc -> Asc -> Desc -> Asc
func NextDirective(current *SortDirective, column Column) *SortDirective {
	if current == nil || current.Key != column.Key {
		return &SortDirective{Key: column.Key, Order: OrderAsc}
	}

	switch current.Order {
	case OrderAsc:
		return &SortDirective{Key: column.Key, Order: OrderDesc}
	case OrderDesc:
		if column.Cycle == CycleLoop {
			return &SortDirective{Key: column.Key, Order: OrderAsc}
		}
		return nil
	default:
		// An unrecognised order is treated as unsorted.
		return &SortDirective{Key: column.Key, Order: OrderAsc}
	}
}

// HeaderClick handles a click on column's header. It reports whether onChange was
// invoked. Clicking a non-sortable column, or clicking with no handler, is a no-op.
func HeaderClick(current *SortDirective, column Column, onChange SortChangeFunc) bool {
	if !column.Sorter.Sortable() || onChange == nil {
		return false
	}
	onChange(NextDirective(current, column))
	return true
}
