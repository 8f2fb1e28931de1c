package schema

import (
	"container/list"
	"sync"
	"time"
)

type fileStamp struct {
	size    int64
	modTime time.Time
}

type cacheEntry struct {
	path  string
	stamp fileStamp
	doc   *Map
}

// documentCache is an LRU of parsed schema trees keyed by file path.
// Stored trees are never handed out directly; callers clone them.
type documentCache struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newDocumentCache(capacity int) *documentCache {
	return &documentCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// get returns the cached tree when the file has not changed since it was stored.
func (c *documentCache) get(path string, stamp fileStamp) (*Map, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[path]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if entry.stamp.size != stamp.size || !entry.stamp.modTime.Equal(stamp.modTime) {
		c.order.Remove(elem)
		delete(c.items, path)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.doc, true
}

func (c *documentCache) put(path string, stamp fileStamp, doc *Map) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[path]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.stamp = stamp
		entry.doc = doc
		c.order.MoveToFront(elem)
		return
	}

	c.items[path] = c.order.PushFront(&cacheEntry{path: path, stamp: stamp, doc: doc})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).path)
	}
}

func (c *documentCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
