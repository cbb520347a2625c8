// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"regexp"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// GlobCache memoizes compiled globs by exact pattern text.
//
// Entries are never evicted or mutated after insertion; the cache grows with
// the number of distinct patterns seen.
type GlobCache struct {
	// entries maps pattern text to compiled glob.
	entries map[string]*Glob
	// group coalesces concurrent compilations of one pattern.
	group singleflight.Group
	// mu guards entries.
	mu sync.Mutex
}

var defaultGlobCache = sync.OnceValue(NewGlobCache)

// NewGlobCache creates an empty glob cache.
func NewGlobCache() *GlobCache {
	return &GlobCache{
		entries: make(map[string]*Glob),
	}
}

// DefaultGlobCache returns the process-wide glob cache.
func DefaultGlobCache() *GlobCache {
	return defaultGlobCache()
}

// CompileGlob returns the compiled glob for pattern from the process-wide cache,
// compiling and storing it on first use.
func CompileGlob(pattern string) (*Glob, error) {
	return DefaultGlobCache().Compile(pattern)
}

// MatchGlob reports whether candidate matches pattern using the process-wide cache.
func MatchGlob(pattern string, candidate string) (bool, error) {
	return DefaultGlobCache().Match(pattern, candidate)
}

// Fetch returns the cached glob for pattern, if any.
func (c *GlobCache) Fetch(pattern string) (*Glob, bool) {
	c.mu.Lock()
	g, ok := c.entries[pattern]
	c.mu.Unlock()

	return g, ok
}

// Store caches a compiled expression and its numeric ranges under pattern.
//
// ranges[i] must describe capture group i+1 of re. A later Store for the same
// pattern replaces the earlier entry.
func (c *GlobCache) Store(pattern string, re *regexp.Regexp, ranges []NumberRange) *Glob {
	g := &Glob{
		pattern: pattern,
		re:      re,
		ranges:  slices.Clone(ranges),
	}

	c.store(g)
	return g
}

// Compile returns cached glob for pattern or compiles and caches it.
//
// Compile errors are returned to the caller and are not cached.
func (c *GlobCache) Compile(pattern string) (*Glob, error) {
	if g, ok := c.Fetch(pattern); ok {
		return g, nil
	}

	v, err, _ := c.group.Do(pattern, func() (any, error) {
		// A concurrent caller may have stored it between Fetch and Do.
		if g, ok := c.Fetch(pattern); ok {
			return g, nil
		}

		g, err := compileGlob(pattern)
		if err != nil {
			return nil, err
		}

		c.store(g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Glob), nil
}

// Match compiles pattern through the cache and matches candidate against it.
func (c *GlobCache) Match(pattern string, candidate string) (bool, error) {
	g, err := c.Compile(pattern)
	if err != nil {
		return false, err
	}

	return g.Match(candidate)
}

// Len returns the number of cached patterns.
func (c *GlobCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// store inserts g keyed by its pattern text.
func (c *GlobCache) store(g *Glob) {
	c.mu.Lock()
	c.entries[g.pattern] = g
	c.mu.Unlock()
}
