// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import "github.com/puzpuzpuz/xsync/v3"

// Cache memoizes compiled matchers of one engine by pattern text.
//
// It is safe for concurrent use. Compile errors are cached as well, so
// repeated calls for a malformed pattern are deterministic and cheap.
type Cache struct {
	// engine compiles patterns missing from entries.
	engine Engine
	// entries stores one compile outcome per pattern text.
	entries *xsync.MapOf[string, cacheEntry]
}

// cacheEntry stores one matcher or a cached compile error.
type cacheEntry struct {
	matcher Matcher
	err     error
}

// NewCache creates an empty cache; nil engine means RE2.
func NewCache(engine Engine) *Cache {
	if engine == nil {
		engine = RE2
	}

	return &Cache{
		engine:  engine,
		entries: xsync.NewMapOf[string, cacheEntry](),
	}
}

// Engine returns cache engine.
func (c *Cache) Engine() Engine {
	return c.engine
}

// Compile returns cached matcher for p, compiling it at most once.
func (c *Cache) Compile(p Pattern) (Matcher, error) {
	entry, _ := c.entries.LoadOrCompute(p.String(), func() cacheEntry {
		m, err := CompileWith(c.engine, p)
		return cacheEntry{matcher: m, err: err}
	})

	return entry.matcher, entry.err
}

// Len returns number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.entries.Clear()
}
