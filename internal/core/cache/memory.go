package cache

import (
	"os"
	"slices"
	"sync"
	"time"

	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/util"
)

// Fingerprint identifies the state of a file on disk. A file whose size or
// modification time changed must be decoded again.
type Fingerprint struct {
	Size    int64
	ModTime int64
}

// FingerprintOf builds the fingerprint of info.
func FingerprintOf(info os.FileInfo) Fingerprint {
	return Fingerprint{Size: info.Size(), ModTime: info.ModTime().UnixNano()}
}

// FileEntry holds what decoding one log file produced.
type FileEntry struct {
	Fingerprint  Fingerprint
	Date         model.FileDate
	Events       []model.Event
	Lines        int
	Qualifying   int
	Malformed    int
	LastAccessed int64
}

// MemoryCache keeps decoded log files between runs of a long-lived process.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*FileEntry
	hits    int
	misses  int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*FileEntry),
	}
}

// Get returns a copy of the entry for path when its fingerprint still matches.
func (mc *MemoryCache) Get(path string, fp Fingerprint) (*FileEntry, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, ok := mc.entries[path]
	if !ok || entry.Fingerprint != fp {
		mc.misses++
		return nil, false
	}
	mc.hits++
	entry.LastAccessed = time.Now().Unix()

	clone := *entry
	clone.Events = slices.Clone(entry.Events)
	return &clone, true
}

// Set stores a copy of entry for path.
func (mc *MemoryCache) Set(path string, entry *FileEntry) {
	if entry == nil {
		return
	}
	mc.mu.Lock()
	defer mc.mu.Unlock()

	clone := *entry
	clone.Events = slices.Clone(entry.Events)
	clone.LastAccessed = time.Now().Unix()
	mc.entries[path] = &clone
}

// Retain drops every entry whose path is not in paths and returns how many
// were removed.
func (mc *MemoryCache) Retain(paths []string) int {
	keep := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		keep[p] = struct{}{}
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	removed := 0
	for path := range mc.entries {
		if _, ok := keep[path]; !ok {
			delete(mc.entries, path)
			removed++
		}
	}
	if removed > 0 {
		util.LogDebugf("MemoryCache: dropped %d entries for removed files", removed)
	}
	return removed
}

func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries = make(map[string]*FileEntry)
	mc.hits, mc.misses = 0, 0
}

// Stats reports lookups served, lookups missed and the number of entries.
func (mc *MemoryCache) Stats() (hits, misses, size int) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.hits, mc.misses, len(mc.entries)
}
