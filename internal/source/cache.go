package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/rshade/datagrid/internal/grid"
	"github.com/rshade/datagrid/internal/logging"
)

// DefaultCacheTTL is how long a fetched page is reused.
const DefaultCacheTTL = 30 * time.Second

// cacheEntry is one fetched page with its expiry.
type cacheEntry struct {
	page      Page
	createdAt time.Time
	expiresAt time.Time
}

func (e *cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// CachedFetcher reuses pages fetched from an underlying PageFetcher for a fixed TTL.
// Entries are keyed by page number, page size and sort directive, so paging back to
// a page under the same sort does not hit the backend again. Errors are never cached.
// Safe for concurrent use.
type CachedFetcher struct {
	next PageFetcher
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]*cacheEntry
	hits    int
	misses  int
}

// NewCachedFetcher wraps next. A non-positive ttl returns next unchanged.
func NewCachedFetcher(next PageFetcher, ttl time.Duration) PageFetcher {
	if ttl <= 0 {
		return next
	}
	return &CachedFetcher{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// FetchPage implements PageFetcher.
func (c *CachedFetcher) FetchPage(ctx context.Context, page, pageSize int, sort *grid.SortDirective) (Page, error) {
	key := cacheKey(page, pageSize, sort)
	log := logging.FromContext(ctx)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && !entry.expired(c.now()) {
		c.hits++
		c.mu.Unlock()
		log.Debug().
			Ctx(ctx).
			Str("component", "source").
			Str("operation", "fetch_page").
			Int("page", page).
			Dur("age", c.now().Sub(entry.createdAt)).
			Msg("page cache hit")
		return entry.page, nil
	}
	if ok {
		delete(c.entries, key)
	}
	c.misses++
	c.mu.Unlock()

	fetched, err := c.next.FetchPage(ctx, page, pageSize, sort)
	if err != nil {
		return Page{}, err
	}

	now := c.now()
	c.mu.Lock()
	c.entries[key] = &cacheEntry{page: fetched, createdAt: now, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()

	return fetched, nil
}

// Stats returns the hit and miss counts.
func (c *CachedFetcher) Stats() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// cacheKey hashes the request parameters into a fixed-length key.
func cacheKey(page, pageSize int, sort *grid.SortDirective) string {
	directive := ""
	if sort != nil {
		directive = sort.String()
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%d|%d|%s", page, pageSize, directive))
	return hex.EncodeToString(sum[:])
}
