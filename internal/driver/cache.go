package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ucc/internal/source"
)

// Increment when the payload format changes.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest = [sha256.Size]byte

// DiskCache remembers which file contents already checked clean, keyed by
// content hash, so unchanged files can be skipped on the next run.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Path   string
	Hash   Digest
}

// OpenDiskCache initializes a disk cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// Subdirectory keeps the cache root tidy and easy to clear.
	return filepath.Join(c.dir, "clean", hex.EncodeToString(key[:])+".mp")
}

// MarkClean records that the file's current content checked without errors.
// The write is atomic so a concurrent reader never sees a torn entry.
func (c *DiskCache) MarkClean(f *source.File) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(f.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := msgpack.NewEncoder(tmp)
	if err := enc.Encode(&cachePayload{
		Schema: cacheSchemaVersion,
		Path:   f.Path,
		Hash:   f.Hash,
	}); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// LookupClean reports whether the file's current content is recorded as
// clean. Entries with a stale schema or mismatched hash are misses.
func (c *DiskCache) LookupClean(f *source.File) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	fh, err := os.Open(c.pathFor(f.Hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer fh.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(fh).Decode(&payload); err != nil {
		return false, err
	}
	if payload.Schema != cacheSchemaVersion || payload.Hash != f.Hash {
		return false, nil
	}
	return true, nil
}

// DropAll clears the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(filepath.Join(c.dir, "clean")); err != nil {
		return err
	}
	return nil
}
