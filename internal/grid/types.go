package grid

import (
	"fmt"
)

// Record is a single row of source data keyed by field name.
// The pipeline treats records as read-only.
type Record map[string]any

// Align is the horizontal alignment of a column's cells.
type Align string

// Supported alignments. The zero value renders as AlignLeft.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Order is the direction of a sort directive.
type Order string

// Sort orders.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Valid reports whether o is OrderAsc or OrderDesc.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// SortDirective is the single active sort instruction. A nil *SortDirective means
// natural (insertion) order. Directives are replaced wholesale, never edited.
type SortDirective struct {
	Key   string `json:"key"   yaml:"key"`
	Order Order  `json:"order" yaml:"order"`
}

// String returns the directive in "key:order" form, or "" for a nil directive.
func (d *SortDirective) String() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", d.Key, d.Order)
}

// Equal reports whether two directives describe the same sort, treating two nil
// directives as equal.
func (d *SortDirective) Equal(other *SortDirective) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	return d.Key == other.Key && d.Order == other.Order
}

// CompareFunc orders two records. It returns a negative number when a sorts before b,
// a positive number when a sorts after b, and zero when they are equal.
type CompareFunc func(a, b Record) int

// SorterKind discriminates the Sorter variant.
type SorterKind int

const (
	// NotSortableKind marks a column whose header does not react to clicks.
	NotSortableKind SorterKind = iota
	// DefaultComparatorKind sorts by the column's value with the built-in comparison.
	DefaultComparatorKind
	// CustomComparatorKind sorts with a caller-supplied CompareFunc.
	CustomComparatorKind
)

// Sorter is the per-column comparator policy. The zero value is NotSortable.
type Sorter struct {
	Kind    SorterKind
	Compare CompareFunc
}

// NotSortable returns a Sorter for a column that cannot be sorted.
func NotSortable() Sorter {
	return Sorter{Kind: NotSortableKind}
}

// DefaultSorter returns a Sorter that uses the built-in value comparison.
func DefaultSorter() Sorter {
	return Sorter{Kind: DefaultComparatorKind}
}

// CustomSorter returns a Sorter backed by fn. A nil fn falls back to DefaultSorter.
func CustomSorter(fn CompareFunc) Sorter {
	if fn == nil {
		return DefaultSorter()
	}
	return Sorter{Kind: CustomComparatorKind, Compare: fn}
}

// Sortable reports whether header interaction may produce a directive for the column.
func (s Sorter) Sortable() bool {
	return s.Kind != NotSortableKind
}

// SortCycle is the per-column policy that decides which states repeated header
// clicks visit.
type SortCycle int

const (
	// CycleDefault visits Unsorted -> Asc -> Desc -> Unsorted.
	CycleDefault SortCycle = iota
	// CycleLoop visits Asc -> Desc -> Asc and never returns to Unsorted once engaged.
	CycleLoop
)

// RenderFunc turns a cell value into what the markup engine should display.
// index is the row's position within the visible page.
type RenderFunc func(value any, record Record, index int) any

// Column describes one column of the grid.
type Column struct {
	// Key identifies the column and is the field read by the default comparator.
	// Keys must be unique across a column set.
	Key string `json:"key" yaml:"key"`

	// Title is the header text.
	Title string `json:"title" yaml:"title"`

	// DataIndex is the record field displayed in the column. Defaults to Key.
	DataIndex string `json:"data_index,omitempty" yaml:"data_index,omitempty"`

	// Width is the preferred width in characters (terminal) or pixels (HTML). 0 means auto.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`

	// Align is the horizontal alignment of header and cells.
	Align Align `json:"align,omitempty" yaml:"align,omitempty"`

	// Sorter selects the comparator policy.
	Sorter Sorter `json:"-" yaml:"-"`

	// Cycle selects the header-click state machine.
	Cycle SortCycle `json:"-" yaml:"-"`

	// Render is an optional cell render hook. Nil means identity.
	Render RenderFunc `json:"-" yaml:"-"`
}

// Field returns the record field the column displays.
func (c Column) Field() string {
	if c.DataIndex != "" {
		return c.DataIndex
	}
	return c.Key
}

// FindColumn returns the first column whose Key equals key.
func FindColumn(columns []Column, key string) (Column, bool) {
	for _, col := range columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}

// ValidateColumns reports configuration problems in a column set: empty keys and
// duplicate keys. Callers on render paths log the error and carry on.
func ValidateColumns(columns []Column) error {
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.Key == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyColumnKey)
		}
		if seen[col.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnKey, col.Key)
		}
		seen[col.Key] = true
	}
	return nil
}
