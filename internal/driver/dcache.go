package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchema меняется вместе с форматом ast.Marshal или cacheEntry.
const cacheSchema uint16 = 1

// DiskCache хранит разобранные деревья (ast.Marshal) на диске,
// ключ: SHA-256 нормализованного исходника (source.File.Hash).
// Раскладка: <dir>/trees/<2 hex>/<64 hex>.mp. Методы nil-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cacheEntry struct {
	Schema uint16 `msgpack:"s"`
	Path   string `msgpack:"p"` // откуда дерево, только для отладки
	Tree   []byte `msgpack:"t"`
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app> (~/.cache/<app> by default).
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return NewDiskCache(filepath.Join(base, app))
}

func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) treesDir() string { return filepath.Join(c.dir, "trees") }

func (c *DiskCache) entryPath(key [32]byte) string {
	name := hex.EncodeToString(key[:])
	return filepath.Join(c.treesDir(), name[:2], name+".mp")
}

// Put stores tree under key. The entry appears atomically: readers see
// either the old file or the complete new one.
func (c *DiskCache) Put(key [32]byte, path string, tree []byte) error {
	if c == nil {
		return nil
	}
	data, err := msgpack.Marshal(cacheEntry{Schema: cacheSchema, Path: path, Tree: tree})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	dst := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".put-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dst)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
	}
	return err
}

// Get returns the tree stored under key. Missing entries and entries of
// another schema are misses, not errors.
func (c *DiskCache) Get(key [32]byte) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.entryPath(key))
	c.mu.RUnlock()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	var e cacheEntry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("cache entry %x: %w", key[:4], err)
	}
	if e.Schema != cacheSchema {
		return nil, false, nil
	}
	return e.Tree, true, nil
}

// DropAll removes every cached tree and reports how many there were.
func (c *DiskCache) DropAll() (int, error) {
	if c == nil {
		return 0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	err := filepath.WalkDir(c.treesDir(), func(_ string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Ext(d.Name()) == ".mp" {
			n++
		}
		return err
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}
	return n, os.RemoveAll(c.treesDir())
}
