package pagination

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intsUpTo(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestOptions_Kind(t *testing.T) {
	total := 5
	tests := []struct {
		name string
		opts *Options
		want Kind
	}{
		{"nil options", nil, KindSelfManaged},
		{"empty options", &Options{}, KindSelfManaged},
		{"disabled", Disabled(), KindDisabled},
		{"disabled wins over total", &Options{Disabled: true, Total: &total}, KindDisabled},
		{"total selects external", &Options{Total: &total}, KindExternallyManaged},
		{"constructor external", ExternallyManaged(1, 5, 10, nil), KindExternallyManaged},
		{"constructor self", SelfManaged(2, 10), KindSelfManaged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Kind())
		})
	}
}

func TestResolvePageSize(t *testing.T) {
	assert.Equal(t, 25, ResolvePageSize(&Options{PageSize: 25}, 50))
	assert.Equal(t, 50, ResolvePageSize(&Options{}, 50))
	assert.Equal(t, 50, ResolvePageSize(nil, 50))
	assert.Equal(t, DefaultPageSize, ResolvePageSize(nil, 0))
	assert.Equal(t, DefaultPageSize, ResolvePageSize(&Options{PageSize: -3}, -1))
}

func TestPaginate(t *testing.T) {
	items := intsUpTo(25)

	t.Run("Disabled", func(t *testing.T) {
		got := Paginate(items, Disabled(), 10, 3)
		assert.Equal(t, items, got.Visible)
		assert.Equal(t, 0, got.TotalPages)
	})

	t.Run("SelfManagedLastPartialPage", func(t *testing.T) {
		got := Paginate(items, SelfManaged(1, 10), 10, 3)
		assert.Equal(t, []int{20, 21, 22, 23, 24}, got.Visible)
		assert.Equal(t, 3, got.TotalPages)
	})

	t.Run("SelfManagedFirstPage", func(t *testing.T) {
		got := Paginate(items, nil, 10, 1)
		assert.Equal(t, intsUpTo(10), got.Visible)
	})

	t.Run("SelfManagedPastEnd", func(t *testing.T) {
		got := Paginate(items, nil, 10, 4)
		assert.NotNil(t, got.Visible)
		assert.Empty(t, got.Visible)
		assert.Equal(t, 3, got.TotalPages)
	})

	t.Run("SelfManagedPageZero", func(t *testing.T) {
		got := Paginate(items, nil, 10, 0)
		assert.Empty(t, got.Visible)
	})

	t.Run("SelfManagedEmpty", func(t *testing.T) {
		got := Paginate([]int{}, nil, 10, 1)
		assert.Empty(t, got.Visible)
		assert.Equal(t, 0, got.TotalPages)
	})

	t.Run("ExternallyManagedPassesThrough", func(t *testing.T) {
		page := intsUpTo(10)
		opts := ExternallyManaged(2, 5, 10, nil)
		for _, current := range []int{1, 2, 7} {
			got := Paginate(page, opts, 10, current)
			assert.Equal(t, page, got.Visible)
			assert.Equal(t, 5, got.TotalPages)
		}
	})

	t.Run("ExternallyManagedTotalVerbatim", func(t *testing.T) {
		got := Paginate(intsUpTo(3), ExternallyManaged(1, 40, 10, nil), 10, 1)
		assert.Equal(t, 40, got.TotalPages)
	})
}

func TestPaginate_CoversEveryRecordOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, size := range []int{1, 3, 10, 50} {
			items := intsUpTo(n)
			total := CalculateTotalPages(n, size)

			var all []int
			for page := 1; page <= total; page++ {
				all = append(all, Paginate(items, nil, size, page).Visible...)
			}

			if n == 0 {
				assert.Empty(t, all)
				continue
			}
			assert.Equal(t, items, all, "n=%d size=%d", n, size)
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 3, CalculateTotalPages(25, 10))
	assert.Equal(t, 3, CalculateTotalPages(25, 0)) // falls back to DefaultPageSize
}

func TestEngine_Seed(t *testing.T) {
	logger := zerolog.Nop()
	assert.Equal(t, 1, NewEngine(nil, logger).CurrentPage())
	assert.Equal(t, 4, NewEngine(SelfManaged(4, 10), logger).CurrentPage())
	assert.Equal(t, 2, NewEngine(ExternallyManaged(2, 5, 10, nil), logger).CurrentPage())
	assert.Equal(t, 1, NewEngine(&Options{Disabled: true, Page: ptr(3)}, logger).CurrentPage())
}

func TestEngine_PageChange(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("SelfManagedNotifies", func(t *testing.T) {
		var got []int
		opts := &Options{PageSize: 10, OnChange: func(p int) { got = append(got, p) }}
		e := NewEngine(opts, logger)
		e.PageChange(3)
		assert.Equal(t, 3, e.CurrentPage())
		assert.Equal(t, []int{3}, got)
	})

	t.Run("ExternallyManagedNotifies", func(t *testing.T) {
		var got []int
		e := NewEngine(ExternallyManaged(1, 5, 10, func(p int) { got = append(got, p) }), logger)
		e.PageChange(4)
		assert.Equal(t, 4, e.CurrentPage())
		assert.Equal(t, []int{4}, got)
	})

	t.Run("ExternallyManagedWithoutHandlerIsLocal", func(t *testing.T) {
		e := NewEngine(ExternallyManaged(1, 5, 10, nil), logger)
		e.PageChange(2)
		assert.Equal(t, 2, e.CurrentPage())
	})

	t.Run("DisabledDoesNotNotify", func(t *testing.T) {
		calls := 0
		e := NewEngine(&Options{Disabled: true, OnChange: func(int) { calls++ }}, logger)
		e.PageChange(2)
		assert.Equal(t, 2, e.CurrentPage())
		assert.Zero(t, calls)
	})

	t.Run("NilOptions", func(t *testing.T) {
		e := NewEngine(nil, logger)
		e.PageChange(5)
		assert.Equal(t, 5, e.CurrentPage())
	})

	t.Run("BelowFirstPageIgnored", func(t *testing.T) {
		for _, opts := range []*Options{
			{PageSize: 10},
			ExternallyManaged(2, 5, 10, nil),
		} {
			var got []int
			opts.OnChange = func(p int) { got = append(got, p) }
			e := NewEngine(opts, logger)
			start := e.CurrentPage()

			e.PageChange(0)
			e.PageChange(-4)

			assert.Equal(t, start, e.CurrentPage(), opts.Kind().String())
			assert.Empty(t, got, opts.Kind().String())
		}
	})
}

func TestEngine_Sync(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("ExplicitPageChangeOverridesLocal", func(t *testing.T) {
		e := NewEngine(ExternallyManaged(1, 5, 10, nil), logger)
		e.PageChange(3)
		e.Sync(ExternallyManaged(2, 5, 10, nil))
		assert.Equal(t, 2, e.CurrentPage())
	})

	t.Run("UnchangedExplicitPageKeepsLocal", func(t *testing.T) {
		opts := SelfManaged(1, 10)
		e := NewEngine(opts, logger)
		e.PageChange(3)
		e.Sync(opts)
		assert.Equal(t, 3, e.CurrentPage())
	})

	t.Run("AbsentPageKeepsLocal", func(t *testing.T) {
		e := NewEngine(nil, logger)
		e.PageChange(2)
		e.Sync(&Options{PageSize: 5})
		assert.Equal(t, 2, e.CurrentPage())
	})

	t.Run("ReappearingPageIsAdopted", func(t *testing.T) {
		e := NewEngine(SelfManaged(2, 10), logger)
		e.Sync(nil)
		e.PageChange(5)
		e.Sync(SelfManaged(2, 10))
		assert.Equal(t, 2, e.CurrentPage())
	})

	t.Run("OutOfRangeExternalPagePassesThrough", func(t *testing.T) {
		e := NewEngine(nil, logger)
		e.Sync(ExternallyManaged(9, 5, 10, nil))
		assert.Equal(t, 9, e.CurrentPage())
	})

	t.Run("SyncReplacesOptions", func(t *testing.T) {
		e := NewEngine(nil, logger)
		opts := Disabled()
		e.Sync(opts)
		assert.Same(t, opts, e.Options())
	})
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name        string
		opts        *Options
		current     int
		totalPages  int
		wantVisible bool
		wantPrev    bool
		wantNext    bool
	}{
		{"first of three", nil, 1, 3, true, false, true},
		{"middle", nil, 2, 3, true, true, true},
		{"last", nil, 3, 3, true, true, false},
		{"single page hidden", nil, 1, 1, false, false, false},
		{"no pages hidden", nil, 1, 0, false, false, false},
		{"disabled hidden", Disabled(), 1, 0, false, false, false},
		{"external beyond total", ExternallyManaged(7, 5, 10, nil), 7, 5, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.opts, tt.current, 10, tt.totalPages, 25)
			assert.Equal(t, tt.wantVisible, meta.Visible())
			assert.Equal(t, tt.wantPrev, meta.HasPrevious)
			assert.Equal(t, tt.wantNext, meta.HasNext)
			assert.Equal(t, DefaultSiblings, meta.Siblings)
			assert.Equal(t, DefaultBoundaries, meta.Boundaries)
		})
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		active     int
		siblings   int
		boundaries int
		want       []int
	}{
		{"no pages", 0, 1, 1, 1, []int{}},
		{"fits entirely", 5, 3, 1, 1, []int{1, 2, 3, 4, 5}},
		{"start", 10, 1, 1, 1, []int{1, 2, 3, 4, 5, Ellipsis, 10}},
		{"middle", 10, 5, 1, 1, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"end", 10, 10, 1, 1, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"active clamped", 10, 99, 1, 1, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"wider siblings", 20, 10, 2, 1, []int{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Range(tt.total, tt.active, tt.siblings, tt.boundaries))
		})
	}

	meta := NewMeta(nil, 5, 10, 10, 100)
	assert.Equal(t, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}, meta.Items())
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "defaults", params: *NewParams()},
		{name: "page and size", params: Params{Page: 2, PageSize: 20, TotalPages: -1}},
		{name: "external", params: Params{Page: 2, PageSize: 20, TotalPages: 8}},
		{name: "negative page", params: Params{Page: -1, TotalPages: -1}, wantErr: ErrInvalidPage},
		{name: "page size too big", params: Params{PageSize: MaxPageSize + 1, TotalPages: -1}, wantErr: ErrInvalidPageSize},
		{name: "negative total", params: Params{TotalPages: -2}, wantErr: ErrInvalidTotalPages},
		{name: "disabled with page", params: Params{Disabled: true, Page: 2, TotalPages: -1}, wantErr: ErrDisabledWithPage},
		{name: "disabled alone", params: Params{Disabled: true, TotalPages: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParams_ToOptions(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		opts := Params{Disabled: true, TotalPages: -1}.ToOptions(nil)
		assert.Equal(t, KindDisabled, opts.Kind())
	})

	t.Run("SelfManaged", func(t *testing.T) {
		opts := Params{Page: 3, PageSize: 20, TotalPages: -1}.ToOptions(nil)
		assert.Equal(t, KindSelfManaged, opts.Kind())
		page, ok := opts.ExplicitPage()
		require.True(t, ok)
		assert.Equal(t, 3, page)
		assert.Equal(t, 20, opts.PageSize)
	})

	t.Run("ExternallyManaged", func(t *testing.T) {
		called := 0
		opts := Params{Page: 1, TotalPages: 6}.ToOptions(func(int) { called++ })
		assert.Equal(t, KindExternallyManaged, opts.Kind())
		require.NotNil(t, opts.Total)
		assert.Equal(t, 6, *opts.Total)
		opts.OnChange(2)
		assert.Equal(t, 1, called)
	})

	t.Run("NoPageLeavesUnset", func(t *testing.T) {
		opts := NewParams().ToOptions(nil)
		_, ok := opts.ExplicitPage()
		assert.False(t, ok)
	})
}

func ptr(v int) *int { return &v }
