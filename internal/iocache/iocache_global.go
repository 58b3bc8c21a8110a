package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// Logical store names. The relations store holds the single snapshot entry;
// the profiles store holds one entry per login.
const (
	relationsTable = "relations_cache"
	profilesTable  = "profile_cache"

	relationsFile = "relations.json"
	profilesFile  = "users.json"
)

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global cache manager with the relation and
// profile stores for the configured backend.
func InitStores(backend schema.CacheBackend, connStr, cacheDir string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		relations, profiles, err := newStorePair(backend, connStr, cacheDir)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize caching: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.relations = relations
		Manager.profiles = profiles
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// newStorePair constructs the two named stores for a backend.
func newStorePair(backend schema.CacheBackend, connStr, cacheDir string) (contract.CacheStore, contract.CacheStore, error) {
	switch backend {
	case schema.JSONBackend:
		relations, err := NewFileStore(filepath.Join(cacheDir, relationsFile))
		if err != nil {
			return nil, nil, err
		}
		profiles, err := NewFileStore(filepath.Join(cacheDir, profilesFile))
		if err != nil {
			return nil, nil, err
		}
		return relations, profiles, nil

	default:
		relations, err := NewDBStore(relationsTable, backend, connStr)
		if err != nil {
			return nil, nil, err
		}
		profiles, err := NewDBStore(profilesTable, backend, connStr)
		if err != nil {
			_ = relations.Close()
			return nil, nil, err
		}
		return relations, profiles, nil
	}
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.relations != nil {
			_ = Manager.relations.Close()
		}
		if Manager.profiles != nil {
			_ = Manager.profiles.Close()
		}
	})
}

// ClearCache removes all cached data for the specified backend.
// For JSON, it deletes the cache files. For SQLite, it deletes the database
// file. For SQL backends (MySQL/PostgreSQL), it drops both tables.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.CacheBackend, cacheDir, dbFilePath, connStr string) error {
	switch backend {
	case schema.JSONBackend:
		for _, name := range []string{relationsFile, profilesFile} {
			path := filepath.Join(cacheDir, name)
			// Remove the file; ignore if it doesn't exist
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove cache file %s: %w", path, err)
			}
		}
		return nil

	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearSQLTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// openSQL connects to a SQL database and verifies the connection.
func openSQL(driverName, connStr string) (*sql.DB, error) {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}
	return db, nil
}

// clearSQLTables connects to the SQL database and drops both cache tables.
func clearSQLTables(driverName, connStr string) error {
	db, err := openSQL(driverName, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	for _, table := range []string{relationsTable, profilesTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
