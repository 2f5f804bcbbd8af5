package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/grid"
)

// countingFetcher records how often each page was requested.
type countingFetcher struct {
	calls int
	err   error
}

func (f *countingFetcher) FetchPage(_ context.Context, page, _ int, _ *grid.SortDirective) (Page, error) {
	f.calls++
	if f.err != nil {
		return Page{}, f.err
	}
	return Page{Number: page, TotalPages: 5, Records: []grid.Record{{"page": page}}}, nil
}

func TestNewCachedFetcher_DisabledTTL(t *testing.T) {
	next := &countingFetcher{}
	assert.Same(t, next, NewCachedFetcher(next, 0))
}

func TestCachedFetcher_HitsAndMisses(t *testing.T) {
	ctx := context.Background()
	next := &countingFetcher{}
	c, ok := NewCachedFetcher(next, time.Minute).(*CachedFetcher)
	require.True(t, ok)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	asc := &grid.SortDirective{Key: "id", Order: grid.OrderAsc}
	desc := &grid.SortDirective{Key: "id", Order: grid.OrderDesc}

	tests := []struct {
		name      string
		page      int
		sort      *grid.SortDirective
		advance   time.Duration
		wantCalls int
	}{
		{"first fetch", 1, nil, 0, 1},
		{"same page cached", 1, nil, 0, 1},
		{"other page", 2, nil, 0, 2},
		{"same page new sort", 1, asc, 0, 3},
		{"sort order is part of the key", 1, desc, 0, 4},
		{"cached under sort", 1, asc, 30 * time.Second, 4},
		{"expired", 1, asc, time.Minute, 5},
	}
	for _, tt := range tests {
		now = now.Add(tt.advance)
		page, err := c.FetchPage(ctx, tt.page, 10, tt.sort)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.page, page.Number, tt.name)
		assert.Equal(t, tt.wantCalls, next.calls, tt.name)
	}

	hits, misses := c.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 5, misses)
}

func TestCachedFetcher_ErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	next := &countingFetcher{err: errors.New("down")}
	c := NewCachedFetcher(next, time.Minute)

	_, err := c.FetchPage(ctx, 1, 10, nil)
	require.Error(t, err)

	next.err = nil
	page, err := c.FetchPage(ctx, 1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, next.calls)
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(1, 10, nil)
	assert.Len(t, a, 64)
	assert.Equal(t, a, cacheKey(1, 10, nil))
	assert.NotEqual(t, a, cacheKey(1, 20, nil))
	assert.NotEqual(t, a, cacheKey(1, 10, &grid.SortDirective{Key: "id", Order: grid.OrderAsc}))
}
