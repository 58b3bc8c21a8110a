// Package contract provides interfaces and shared utilities for gazer's internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/gazer/schema"
)

// SocialClient defines the necessary operations against the remote platform.
// This allows the core pipeline to be tested without network access.
type SocialClient interface {
	// ListFollowersPage returns one page of accounts following the
	// authenticated user. Pages are 1-based.
	ListFollowersPage(ctx context.Context, page, perPage int) ([]string, error)

	// ListFollowingPage returns one page of accounts the authenticated
	// user follows. Pages are 1-based.
	ListFollowingPage(ctx context.Context, page, perPage int) ([]string, error)

	// GetProfile returns the public profile statistics for a login.
	GetProfile(ctx context.Context, login string) (schema.ProfileRecord, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRelationsStore() CacheStore
	GetProfilesStore() CacheStore
}

// CacheStore defines the interface for durable cache storage.
// Staleness policy is the caller's concern; the store only records
// the version and timestamp it was handed at write time.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
