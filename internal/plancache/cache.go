// Package plancache stores evaluated plans on disk keyed by manifest
// content, so an unchanged manifest need not be re-evaluated.
package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

// Increment when the Payload format changes.
const schemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as the cache key.
type Digest [sha256.Size]byte

// Key hashes raw manifest bytes into a cache key.
func Key(manifest []byte) Digest {
	return sha256.Sum256(manifest)
}

// Payload is the cached form of an evaluated plan. Count duplicates
// len(Rules) as a cheap corruption guard on load.
type Payload struct {
	Schema    uint16
	Workspace string
	Count     uint32
	Rules     []rules.Rule
}

// Cache persists payloads under a per-user cache directory.
// Safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache at the standard XDG location for app.
func Open(app string) (*Cache, error) {
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
	return &Cache{dir: dir}, nil
}

// OpenAt initializes the cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "plans", hex.EncodeToString(key[:])+".mp")
}

// Put writes the evaluated rules for key. The write is atomic: encode to
// a temp file, then rename into place.
func (c *Cache) Put(key Digest, workspace string, declared []rules.Rule) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	count, err := safecast.Conv[uint32](len(declared))
	if err != nil {
		return err
	}
	payload := &Payload{
		Schema:    schemaVersion,
		Workspace: workspace,
		Count:     count,
		Rules:     declared,
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, p)
}

// Get loads the cached plan for key. A missing entry, a schema mismatch
// or a corrupted payload all report a miss rather than an error: the
// caller just re-evaluates.
func (c *Cache) Get(key Digest) ([]rules.Rule, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, nil
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	count, err := safecast.Conv[uint32](len(payload.Rules))
	if err != nil || payload.Count != count {
		return nil, false, nil
	}
	return payload.Rules, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
