package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNextDirective(t *testing.T) {
	defaultCol := Column{Key: "price", Sorter: DefaultSorter(), Cycle: CycleDefault}
	loopCol := Column{Key: "volume", Sorter: DefaultSorter(), Cycle: CycleLoop}

	tests := []struct {
		name    string
		current *SortDirective
		column  Column
		want    *SortDirective
	}{
		{"default unsorted to asc", nil, defaultCol, &SortDirective{Key: "price", Order: OrderAsc}},
		{"default asc to desc", &SortDirective{Key: "price", Order: OrderAsc}, defaultCol,
			&SortDirective{Key: "price", Order: OrderDesc}},
		{"default desc to unsorted", &SortDirective{Key: "price", Order: OrderDesc}, defaultCol, nil},
		{"loop unsorted to asc", nil, loopCol, &SortDirective{Key: "volume", Order: OrderAsc}},
		{"loop asc to desc", &SortDirective{Key: "volume", Order: OrderAsc}, loopCol,
			&SortDirective{Key: "volume", Order: OrderDesc}},
		{"loop desc to asc", &SortDirective{Key: "volume", Order: OrderDesc}, loopCol,
			&SortDirective{Key: "volume", Order: OrderAsc}},
		{"switching column starts at asc", &SortDirective{Key: "volume", Order: OrderDesc}, defaultCol,
			&SortDirective{Key: "price", Order: OrderAsc}},
		{"switching loop column starts at asc", &SortDirective{Key: "price", Order: OrderAsc}, loopCol,
			&SortDirective{Key: "volume", Order: OrderAsc}},
		{"unknown order restarts at asc", &SortDirective{Key: "price", Order: "sideways"}, defaultCol,
			&SortDirective{Key: "price", Order: OrderAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDirective(tt.current, tt.column)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDefaultCycleRestoresOriginalOrder(t *testing.T) {
	engine := NewSortEngine(language.Und)
	col := Column{Key: "k", Sorter: DefaultSorter()}
	columns := []Column{col}
	records := []Record{{"k": "m"}, {"k": "z"}, {"k": "a"}}

	var directive *SortDirective
	var seen []*SortDirective
	for range 3 {
		directive = NextDirective(directive, col)
		seen = append(seen, directive)
	}

	require.Len(t, seen, 3)
	assert.Equal(t, OrderAsc, seen[0].Order)
	assert.Equal(t, OrderDesc, seen[1].Order)
	assert.Nil(t, seen[2])
	assert.Equal(t, records, engine.Sort(records, directive, columns))
}

func TestLoopCycleNeverReturnsNil(t *testing.T) {
	col := Column{Key: "k", Sorter: DefaultSorter(), Cycle: CycleLoop}

	var directive *SortDirective
	for i := range 10 {
		directive = NextDirective(directive, col)
		require.NotNil(t, directive)
		if i%2 == 0 {
			assert.Equal(t, OrderAsc, directive.Order)
		} else {
			assert.Equal(t, OrderDesc, directive.Order)
		}
	}
}

func TestHeaderClick(t *testing.T) {
	t.Run("NotSortableIsNoop", func(t *testing.T) {
		calls := 0
		col := Column{Key: "label", Sorter: NotSortable()}
		handled := HeaderClick(nil, col, func(*SortDirective) { calls++ })
		assert.False(t, handled)
		assert.Zero(t, calls)
	})

	t.Run("NoHandlerIsNoop", func(t *testing.T) {
		col := Column{Key: "k", Sorter: DefaultSorter()}
		assert.False(t, HeaderClick(nil, col, nil))
	})

	t.Run("SortableInvokesHandler", func(t *testing.T) {
		var got *SortDirective
		col := Column{Key: "k", Sorter: DefaultSorter()}
		handled := HeaderClick(nil, col, func(d *SortDirective) { got = d })
		assert.True(t, handled)
		assert.True(t, got.Equal(&SortDirective{Key: "k", Order: OrderAsc}))
	})

	t.Run("CustomComparatorIsSortable", func(t *testing.T) {
		calls := 0
		col := Column{Key: "k", Sorter: CustomSorter(func(_, _ Record) int { return 0 })}
		assert.True(t, HeaderClick(&SortDirective{Key: "k", Order: OrderDesc}, col, func(d *SortDirective) {
			calls++
			assert.Nil(t, d)
		}))
		assert.Equal(t, 1, calls)
	})
}
