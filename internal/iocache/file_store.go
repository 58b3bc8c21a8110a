package iocache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// fileEntry is the on-disk shape of one cached value.
type fileEntry struct {
	Value     json.RawMessage `json:"value"`
	Version   int             `json:"version"`
	Timestamp int64           `json:"timestamp"`
}

// FileStore is a JSON-file-backed CacheStore. The whole store lives in one
// file; writes rewrite the file through a temp-file rename so a crash never
// leaves a half-written payload behind. The file is single-writer,
// single-process; concurrent external processes sharing the same path are
// unsupported (last writer wins).
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]fileEntry
}

var _ contract.CacheStore = &FileStore{} // Compile-time check

// NewFileStore opens (or lazily creates) the JSON store at path.
// A missing or corrupt file is treated as an empty store, not an error.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory for %q: %w", path, err)
	}
	fs := &FileStore{path: path, data: make(map[string]fileEntry)}
	fs.load()
	return fs, nil
}

// load reads the backing file into memory. Parse failures leave the store
// empty (cold cache) rather than failing the run.
func (fs *FileStore) load() {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return // Missing file is a cold cache
	}
	var data map[string]fileEntry
	if err := json.Unmarshal(raw, &data); err != nil {
		return // Corrupt file is a cold cache
	}
	fs.data = data
}

// Get retrieves a value by key from the store.
func (fs *FileStore) Get(key string) ([]byte, int, int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, ok := fs.data[key]
	if !ok {
		return nil, 0, 0, fmt.Errorf("key %q not found", key)
	}
	return entry.Value, entry.Version, entry.Timestamp, nil
}

// Set inserts or replaces a key/value pair and flushes the store to disk.
func (fs *FileStore) Set(key string, value []byte, version int, timestamp int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data[key] = fileEntry{Value: value, Version: version, Timestamp: timestamp}
	return fs.flush()
}

// flush writes the full store atomically. Callers hold fs.mu.
func (fs *FileStore) flush() error {
	raw, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache store: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache store: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to commit cache store: %w", err)
	}
	return nil
}

// GetStatus returns status information about the cache store.
func (fs *FileStore) GetStatus() (schema.CacheStatus, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	status := schema.CacheStatus{
		Backend:      string(schema.JSONBackend),
		Connected:    true,
		TotalEntries: len(fs.data),
	}
	for _, entry := range fs.data {
		ts := time.Unix(entry.Timestamp, 0)
		if status.LastEntryTime.IsZero() || ts.After(status.LastEntryTime) {
			status.LastEntryTime = ts
		}
		if status.OldestEntryTime.IsZero() || ts.Before(status.OldestEntryTime) {
			status.OldestEntryTime = ts
		}
	}
	return status, nil
}

// Close is a no-op for file-backed stores; Set already flushed every write.
func (fs *FileStore) Close() error {
	return nil
}
