package grid

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortEngine orders records by a single-column SortDirective.
// String comparison is locale-aware. A SortEngine is not safe for concurrent use;
// each pipeline owns its own.
type SortEngine struct {
	collator *collate.Collator
	locale   language.Tag
}

// NewSortEngine creates a SortEngine that collates strings for locale.
// language.Und selects the root collation order.
func NewSortEngine(locale language.Tag) *SortEngine {
	return &SortEngine{
		collator: collate.New(locale),
		locale:   locale,
	}
}

// NewSortEngineForLocale parses a BCP 47 tag such as "en" or "zh-Hans".
// An empty or unparseable tag selects the root collation.
func NewSortEngineForLocale(tag string) *SortEngine {
	if tag == "" {
		return NewSortEngine(language.Und)
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return NewSortEngine(language.Und)
	}
	return NewSortEngine(parsed)
}

// Locale returns the collation locale.
func (e *SortEngine) Locale() language.Tag {
	return e.locale
}

// Sort orders records according to directive and the matching column's comparator.
// Returns a new sorted slice; does not modify the original.
// A nil directive, or one naming no column in columns, returns records unchanged.
// Equal elements keep their input order.
func (e *SortEngine) Sort(records []Record, directive *SortDirective, columns []Column) []Record {
	if directive == nil {
		return records
	}

	column, ok := FindColumn(columns, directive.Key)
	if !ok {
		return records
	}

	cmp := e.comparator(column, directive)

	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})

	return sorted
}

// comparator builds the pairwise comparison for column under directive.
func (e *SortEngine) comparator(column Column, directive *SortDirective) CompareFunc {
	if column.Sorter.Kind == CustomComparatorKind && column.Sorter.Compare != nil {
		custom := column.Sorter.Compare
		if directive.Order == OrderDesc {
			return func(a, b Record) int { return -custom(a, b) }
		}
		return custom
	}

	key, order := directive.Key, directive.Order
	return func(a, b Record) int {
		aValue, aPresent := a[key]
		bValue, bPresent := b[key]
		return e.compareValues(aValue, aPresent, bValue, bPresent, order)
	}
}
