package session

import (
	"sync"

	"github.com/fwojciec/qna"
)

// Cache maps candidate URLs to their extracted pages for the lifetime of
// one query. Keys are always URLs drawn from the owning session's candidate
// list; a URL is written at most once per session in practice, and repeated
// lookups are idempotent reads. Last write wins.
type Cache struct {
	mu    sync.RWMutex
	pages map[string]*qna.Page
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{pages: make(map[string]*qna.Page)}
}

// Get returns the cached page for a URL, if present.
func (c *Cache) Get(url string) (*qna.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.pages[url]
	return page, ok
}

// Put stores the page for a URL.
func (c *Cache) Put(url string, page *qna.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[url] = page
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
