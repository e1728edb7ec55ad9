package dataset

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"
)

// Shown in the cuisine selector when the table yields no usable tags.
var defaultCuisines = []string{"american", "chinese", "indian", "italian"}

// Catalog holds the loaded table for the lifetime of the process. The table
// itself is immutable; the mutex only guards the pointer swap on reload.
type Catalog struct {
	dataPath  string
	cachePath string

	mu    sync.RWMutex
	table Table
}

// Open builds the catalog. A snapshot whose source hash matches the current
// dataset file is used as-is; otherwise the dataset is parsed, cleaned and a
// fresh snapshot written. A load failure is logged and leaves the catalog
// empty rather than failing Open.
func Open(dataPath, cachePath string) *Catalog {
	c := &Catalog{dataPath: dataPath, cachePath: cachePath}
	if err := c.Reload(); err != nil {
		log.Printf("⚠️ dataset load failed: %v", err)
	}
	return c
}

// Reload re-runs the load-or-snapshot sequence and swaps in the result.
// On error the catalog is left empty so no stale data is served.
func (c *Catalog) Reload() error {
	hash, err := SourceHash(c.dataPath)
	if err != nil {
		c.swap(nil)
		return err
	}

	if snap, err := ReadSnapshot(c.cachePath); err == nil && snap.SourceHash == hash {
		c.swap(snap.Records)
		return nil
	}

	table, err := Load(c.dataPath)
	if err != nil {
		c.swap(nil)
		return err
	}

	snap := &Snapshot{SourceHash: hash, SavedAt: time.Now().UTC(), Records: table}
	if err := WriteSnapshot(c.cachePath, snap); err != nil {
		// The cache is an optimization; serving from memory still works.
		log.Printf("⚠️ snapshot write failed: %v", err)
	}

	c.swap(table)
	return nil
}

func (c *Catalog) swap(t Table) {
	c.mu.Lock()
	c.table = t
	c.mu.Unlock()
}

// All returns the loaded table. Callers must treat it as read-only.
func (c *Catalog) All() Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table
}

func (c *Catalog) Empty() bool {
	return len(c.All()) == 0
}

// Cuisines returns the distinct cuisine tags across the table, sorted,
// falling back to a small default list when none are found.
func (c *Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	for _, r := range c.All() {
		for _, tag := range strings.Split(r.Cuisines, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return defaultCuisines
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
