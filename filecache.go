// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"
)

// FileCacheOptions configures FileCache behavior.
type FileCacheOptions struct {
	// Logger receives watch diagnostics. Nil uses a stderr logger prefixed "ecconfig".
	Logger *log.Logger `json:"-" yaml:"-"`
	// OnInvalidate is called with the absolute file path after a cached entry
	// was dropped because the file changed. It runs on the watch goroutine
	// without any cache lock held and should return quickly.
	OnInvalidate func(filename string) `json:"-" yaml:"-"`
}

// FileCache serves file contents from memory and drops an entry as soon as
// the file is written, truncated, removed, renamed or has its attributes changed.
//
// Entries are keyed by absolute cleaned path. FileCache is safe for concurrent use.
type FileCache struct {
	// entries stores loaded file contents by absolute path.
	entries map[string]*fileEntry
	// loading tracks in-flight loads; true marks a load invalidated mid-read.
	loading map[string]bool
	// watcher delivers change events; nil until first load or when unavailable.
	watcher *fsnotify.Watcher
	// watchErr is the sticky watcher creation failure.
	watchErr error
	// loopDone is closed when the watch goroutine exits.
	loopDone chan struct{}
	// dispatching is set while the watch goroutine runs invalidation callbacks.
	dispatching atomic.Bool
	// onInvalidate is the invalidation callback.
	onInvalidate func(filename string)
	logger       *log.Logger
	// group coalesces concurrent first loads of one file.
	group singleflight.Group

	// mu guards every field above except dispatching, group and logger.
	mu     sync.Mutex
	closed bool
}

// fileEntry is one cached file.
type fileEntry struct {
	name string
	data []byte
}

var defaultFileCache = sync.OnceValue(func() *FileCache {
	return NewFileCache(FileCacheOptions{})
})

// NewFileCache creates an empty file cache. The watcher is created on first load.
func NewFileCache(opts FileCacheOptions) *FileCache {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "ecconfig",
		})
	}

	return &FileCache{
		entries:      make(map[string]*fileEntry),
		loading:      make(map[string]bool),
		onInvalidate: opts.OnInvalidate,
		logger:       logger,
	}
}

// DefaultFileCache returns the process-wide file cache used by ParseFile and LoadFile.
func DefaultFileCache() *FileCache {
	return defaultFileCache()
}

// LoadFile loads filename through the process-wide file cache.
func LoadFile(filename string) ([]byte, error) {
	return DefaultFileCache().Load(filename)
}

// SetInvalidationCallback sets the invalidation callback of the process-wide file cache.
func SetInvalidationCallback(fn func(filename string)) {
	DefaultFileCache().OnInvalidate(fn)
}

// OnInvalidate replaces the invalidation callback; nil disables it.
func (c *FileCache) OnInvalidate(fn func(filename string)) {
	c.mu.Lock()
	c.onInvalidate = fn
	c.mu.Unlock()
}

// Load returns contents of filename, reading it from disk only when not cached.
//
// The returned slice is shared with the cache and must not be modified.
// Read failures are returned and never cached.
func (c *FileCache) Load(filename string) ([]byte, error) {
	key, err := cacheKey(filename)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrCacheClosed
	}

	if entry, ok := c.entries[key]; ok {
		data := entry.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.load(key)
	})
	if err != nil {
		return nil, err
	}

	return v.([]byte), nil
}

// Invalidate drops the cached entry for filename and reports whether one existed.
// The invalidation callback runs as for a watched change.
func (c *FileCache) Invalidate(filename string) bool {
	key, err := cacheKey(filename)
	if err != nil {
		return false
	}

	return c.invalidate(key, "explicit")
}

// Len returns the number of cached files.
func (c *FileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Close drops all entries and stops watching. Later loads fail with ErrCacheClosed.
// The invalidation callback is not called for entries dropped by Close.
//
// Close may be called from the invalidation callback. It does not wait for a
// callback already running on the watch goroutine to return.
func (c *FileCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}

	c.closed = true
	clear(c.entries)
	for key := range c.loading {
		c.loading[key] = true
	}

	watcher := c.watcher
	loopDone := c.loopDone
	c.watcher = nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}

	err := watcher.Close()
	if !c.dispatching.Load() {
		<-loopDone
	}
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}

// load reads key from disk and caches it when a watch could be armed.
func (c *FileCache) load(key string) ([]byte, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		data := entry.data
		c.mu.Unlock()
		return data, nil
	}

	watcher := c.ensureWatcherLocked()
	// Registered before arming the watch so events racing the read mark it stale.
	c.loading[key] = false
	c.mu.Unlock()

	data, watched, err := c.readWatched(watcher, key)

	c.mu.Lock()
	stale := c.loading[key] || c.closed
	delete(c.loading, key)
	if err == nil && watched && !stale {
		c.entries[key] = &fileEntry{name: key, data: data}
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	c.logger.Debug("loaded config file", "file", key, "bytes", len(data), "cached", watched && !stale)
	return data, nil
}

// readWatched opens key, arms its watch and reads the whole file.
func (c *FileCache) readWatched(watcher *fsnotify.Watcher, key string) ([]byte, bool, error) {
	f, err := os.Open(key)
	if err != nil {
		return nil, false, fmt.Errorf("load config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	watched := false
	if watcher != nil {
		if err := watcher.Add(key); err != nil {
			c.logger.Warn("cannot watch config file, serving uncached", "file", key, "err", err)
		} else {
			watched = true
		}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		if watched {
			_ = watcher.Remove(key)
		}
		return nil, false, fmt.Errorf("load config file %s: %w", key, err)
	}

	return data, watched, nil
}

// ensureWatcherLocked lazily creates the watcher and its goroutine. c.mu must be held.
func (c *FileCache) ensureWatcherLocked() *fsnotify.Watcher {
	if c.watcher != nil || c.watchErr != nil || c.closed {
		return c.watcher
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.watchErr = err
		c.logger.Warn("file watching unavailable, config files will not be cached", "err", err)
		return nil
	}

	c.watcher = watcher
	c.loopDone = make(chan struct{})
	go c.watchLoop(watcher, c.loopDone)

	return watcher
}

// watchLoop turns watcher events into invalidations until the watcher is closed.
func (c *FileCache) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// The path no longer names the watched inode; a reload re-arms it.
				_ = watcher.Remove(event.Name)
			}

			c.dispatching.Store(true)
			c.invalidate(event.Name, event.Op.String())
			c.dispatching.Store(false)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			if errors.Is(err, fsnotify.ErrEventOverflow) {
				c.logger.Warn("watch events overflowed, dropping all cached files")
				c.dispatching.Store(true)
				c.invalidateAll()
				c.dispatching.Store(false)
				continue
			}

			c.logger.Error("watch error", "err", err)
		}
	}
}

// invalidate removes key from the cache, then notifies the callback outside the lock.
func (c *FileCache) invalidate(key string, reason string) bool {
	c.mu.Lock()
	if _, ok := c.loading[key]; ok {
		c.loading[key] = true
	}

	entry, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	callback := c.onInvalidate
	c.mu.Unlock()

	if !ok {
		return false
	}

	c.logger.Debug("config file invalidated", "file", entry.name, "reason", reason)
	if callback != nil {
		callback(entry.name)
	}

	return true
}

// invalidateAll drops every entry after lost watch events.
func (c *FileCache) invalidateAll() {
	c.mu.Lock()
	dropped := make([]string, 0, len(c.entries))
	for key := range c.entries {
		dropped = append(dropped, key)
	}
	clear(c.entries)

	for key := range c.loading {
		c.loading[key] = true
	}
	callback := c.onInvalidate
	c.mu.Unlock()

	if callback == nil {
		return
	}

	for _, name := range dropped {
		callback(name)
	}
}
