package core

import (
	"context"
	"sync"
	"testing"

	"github.com/huangsam/gazer/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProfileCacheMissFetchesAndStores tests the memoization path.
func TestProfileCacheMissFetchesAndStores(t *testing.T) {
	client := newFakeClient(nil, nil)
	client.profiles["alice"] = schema.ProfileRecord{Login: "alice", PublicRepos: 3, Followers: 10, Following: 2}
	store := newMemStore()
	pc := NewProfileCache(client, store)

	record, err := pc.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, record.PublicRepos)
	assert.Equal(t, 1, client.profileCallCount("alice"))

	// Second lookup is served from the store
	record, err = pc.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Login)
	assert.Equal(t, 1, client.profileCallCount("alice"), "cached profile must not refetch")
}

// TestProfileCacheFetchFailurePropagates tests that a remote failure is not cached.
func TestProfileCacheFetchFailurePropagates(t *testing.T) {
	client := newFakeClient(nil, nil)
	client.failProfiles["bob"] = true
	store := newMemStore()
	pc := NewProfileCache(client, store)

	_, err := pc.GetProfile(context.Background(), "bob")
	require.Error(t, err)
	assert.Equal(t, 0, store.entryCount())

	// After the remote recovers, the next lookup fetches again
	client.mu.Lock()
	client.failProfiles["bob"] = false
	client.mu.Unlock()

	record, err := pc.GetProfile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", record.Login)
}

// TestProfileCacheCorruptEntryRefetches tests that an undecodable record
// is treated as a miss.
func TestProfileCacheCorruptEntryRefetches(t *testing.T) {
	client := newFakeClient(nil, nil)
	client.profiles["carol"] = schema.ProfileRecord{Login: "carol", Followers: 5}
	store := newMemStore()
	require.NoError(t, store.Set("user:carol", []byte("{nope"), currentProfileVersion, 0))
	pc := NewProfileCache(client, store)

	record, err := pc.GetProfile(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, 5, record.Followers)
	assert.Equal(t, 1, client.profileCallCount("carol"))
}

// TestProfileCacheConcurrentLookupsShareOneFetch tests singleflight dedup.
func TestProfileCacheConcurrentLookupsShareOneFetch(t *testing.T) {
	client := newFakeClient(nil, nil)
	client.profiles["dave"] = schema.ProfileRecord{Login: "dave"}
	store := newMemStore()
	pc := NewProfileCache(client, store)

	const lookups = 20
	var wg sync.WaitGroup
	for range lookups {
		wg.Go(func() {
			record, err := pc.GetProfile(context.Background(), "dave")
			assert.NoError(t, err)
			assert.Equal(t, "dave", record.Login)
		})
	}
	wg.Wait()

	// Concurrent misses collapse into very few remote calls; strictly fewer
	// than one call per lookup, typically exactly one.
	assert.Less(t, client.profileCallCount("dave"), lookups)
	assert.GreaterOrEqual(t, client.profileCallCount("dave"), 1)
}
