package substrata

import (
	"fmt"
	"io/fs"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of parsed files kept by NewFileCache(0)
const DefaultCacheSize = 256

// FileCache keeps parsed per-file trees between runs so unchanged files are
// not re-read. Entries are keyed by path and invalidated by size or mtime.
// A nil *FileCache is valid and caches nothing.
type FileCache struct {
	entries *lru.Cache[string, cachedFile]
}

type cachedFile struct {
	size    int64
	modTime time.Time
	strict  bool
	tree    *Node
}

// NewFileCache creates a cache holding at most size files.
func NewFileCache(size int) (*FileCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, cachedFile](size)
	if err != nil {
		return nil, fmt.Errorf("create parse cache: %w", err)
	}
	return &FileCache{entries: entries}, nil
}

// Len returns the number of cached files.
func (c *FileCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops every cached file.
func (c *FileCache) Purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}

func (c *FileCache) get(path string, info fs.FileInfo, strict bool) (*Node, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.entries.Get(path)
	if !ok {
		return nil, false
	}
	if entry.size != info.Size() || !entry.modTime.Equal(info.ModTime()) || entry.strict != strict {
		c.entries.Remove(path)
		return nil, false
	}
	return entry.tree, true
}

func (c *FileCache) put(path string, info fs.FileInfo, strict bool, tree *Node) {
	if c == nil {
		return
	}
	c.entries.Add(path, cachedFile{
		size:    info.Size(),
		modTime: info.ModTime(),
		strict:  strict,
		tree:    tree,
	})
}
