package folio

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/a-h/templ"
)

// SectionCache memoises the rendered markup of sections that depend only
// on the immutable registry and the section's visibility flag.
type SectionCache struct {
	mu      sync.RWMutex
	entries map[sectionKey]cachedSection
	ttl     time.Duration
}

type sectionKey struct {
	id      string
	visible bool
}

type cachedSection struct {
	html     []byte
	rendered time.Time
}

// NewSectionCache creates a cache whose entries are re-rendered after ttl.
func NewSectionCache(ttl time.Duration) *SectionCache {
	return &SectionCache{
		entries: make(map[sectionKey]cachedSection),
		ttl:     ttl,
	}
}

func (c *SectionCache) valid(e cachedSection, ok bool) bool {
	return ok && time.Since(e.rendered) < c.ttl
}

// Invalidate clears the cache so the next read renders afresh.
func (c *SectionCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[sectionKey]cachedSection)
	c.mu.Unlock()
}

// Len returns the number of cached renders.
func (c *SectionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the markup for id at the given visibility, rendering cmp on
// a miss. It tries a read lock first; only takes a write lock if a render
// is needed.
func (c *SectionCache) Get(ctx context.Context, id string, visible bool, cmp func() templ.Component) ([]byte, error) {
	key := sectionKey{id: id, visible: visible}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if c.valid(e, ok) {
		return e.html, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; c.valid(e, ok) {
		return e.html, nil
	}
	var buf bytes.Buffer
	if err := cmp().Render(ctx, &buf); err != nil {
		return nil, err
	}
	c.entries[key] = cachedSection{html: buf.Bytes(), rendered: time.Now()}
	return buf.Bytes(), nil
}

// Component is Get wrapped as a component, for embedding a cached section
// in a page.
func (c *SectionCache) Component(id string, visible bool, cmp func() templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := c.Get(ctx, id, visible, cmp)
		if err != nil {
			return err
		}
		_, err = w.Write(html)
		return err
	})
}
