package hw

// A CacheTracker remembers which buffers a read-write hardware cache may
// currently hold dirty lines for. The render and depth caches each own one
// tracker. Entries are added as a side effect of recording draws and removed
// when the batch is reset; the synchronization policy only ever reads the
// entry count.
type CacheTracker struct {
	entries map[string]struct{}
}

// NewCacheTracker creates an empty tracker.
func NewCacheTracker() *CacheTracker {
	return &CacheTracker{
		entries: make(map[string]struct{}),
	}
}

// Track records that the cache may hold dirty lines for the buffer.
func (t *CacheTracker) Track(b *Buffer) {
	t.entries[b.ID()] = struct{}{}
}

// Tracks returns true if the buffer currently has a tracked entry.
func (t *CacheTracker) Tracks(b *Buffer) bool {
	_, ok := t.entries[b.ID()]
	return ok
}

// TrackedEntryCount returns the number of buffers with tracked entries.
func (t *CacheTracker) TrackedEntryCount() int {
	return len(t.entries)
}

// Clear drops all tracked entries.
func (t *CacheTracker) Clear() {
	t.entries = make(map[string]struct{})
}
