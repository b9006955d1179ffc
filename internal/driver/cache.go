package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pyfmt/internal/format"
)

// Increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest = [32]byte

// DiskCache remembers which (content, options) pairs formatted to an
// identical, diagnostic-free output, so repeated runs over a clean
// tree skip the pipeline entirely. Anything that would change bytes or
// report a warning is never cached. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cleanPayload struct {
	Schema    uint16
	CheckedAt int64
}

// OpenDiskCache initializes a disk cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "clean", hexKey+".mp")
}

// MarkClean records that the keyed input needs no rewrites.
func (c *DiskCache) MarkClean(key Digest) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	name := f.Name()

	enc := msgpack.NewEncoder(f)
	payload := cleanPayload{Schema: diskCacheSchemaVersion, CheckedAt: time.Now().Unix()}
	if err := enc.Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return
	}
	// Atomic replace; a torn entry must never be observed.
	if err := os.Rename(name, p); err != nil {
		_ = os.Remove(name)
	}
}

// IsClean reports whether the keyed input was previously recorded as
// needing no rewrites. Cache failures read as misses.
func (c *DiskCache) IsClean(key Digest) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	var payload cleanPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false
	}
	return payload.Schema == diskCacheSchemaVersion
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey folds the file content hash with the formatting options, so
// an options change invalidates every entry for the file.
func cacheKey(contentHash [32]byte, opts format.Options) Digest {
	h := sha256.New()
	h.Write(contentHash[:])

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(opts.MaxLineLen))
	binary.LittleEndian.PutUint32(buf[4:], uint32(opts.IndentWidth))
	h.Write(buf[:])

	flags := byte(0)
	if opts.Collapse {
		flags |= 1
	}
	if opts.StripFStringPrefix {
		flags |= 2
	}
	if opts.CheckIndent {
		flags |= 4
	}
	h.Write([]byte{flags})

	var out Digest
	h.Sum(out[:0])
	return out
}
