package core

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// currentSnapshotVersion defines the version of the snapshot cache schema.
const currentSnapshotVersion = 1

// relationsKey is the fixed logical name of the snapshot entry
// (single-account assumption, no multi-account namespacing).
const relationsKey = "relations"

// RelationCache gets-or-refreshes the relation snapshot against a TTL,
// persisting it to the durable store. It owns the snapshot exclusively;
// no other component mutates it.
type RelationCache struct {
	client   contract.SocialClient
	store    contract.CacheStore
	ttl      time.Duration
	pageSize int
	now      func() time.Time
}

// NewRelationCache returns a RelationCache over the given client and store.
func NewRelationCache(client contract.SocialClient, store contract.CacheStore, ttl time.Duration, pageSize int) *RelationCache {
	return &RelationCache{
		client:   client,
		store:    store,
		ttl:      ttl,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// SnapshotResult reports the outcome of a snapshot read.
type SnapshotResult struct {
	Snapshot  schema.RelationSnapshot
	Refreshed bool                 // Whether the remote source was consulted
	Diff      *schema.RelationDiff // Set only when a refresh replaced a previous snapshot
}

// GetSnapshot returns the current snapshot. A refresh runs when the cached
// entry is absent, older than the TTL, or force is set; otherwise the cached
// snapshot is returned with no remote calls. On any fetch failure the store
// is left unchanged and the error propagates; a stale snapshot is never
// returned in place of a failed refresh, and a partially-paginated result
// is never stored.
func (rc *RelationCache) GetSnapshot(ctx context.Context, force bool) (SnapshotResult, error) {
	prev, hadPrev := rc.cachedSnapshot()
	if !force && hadPrev && rc.now().Sub(prev.LastUpdate) <= rc.ttl {
		return SnapshotResult{Snapshot: prev}, nil
	}

	snap, err := rc.fetchSnapshot(ctx)
	if err != nil {
		return SnapshotResult{}, err
	}

	// LastUpdate is monotonically non-decreasing across writes.
	if hadPrev && snap.LastUpdate.Before(prev.LastUpdate) {
		snap.LastUpdate = prev.LastUpdate
	}

	result := SnapshotResult{Snapshot: snap, Refreshed: true}
	if hadPrev {
		diff := DiffFollowers(prev.Followers, snap.Followers)
		result.Diff = &diff
	}

	rc.commit(snap)
	return result, nil
}

// cachedSnapshot attempts to retrieve and decode the stored snapshot.
// Any read, version, or parse failure is a cold cache, not an error.
func (rc *RelationCache) cachedSnapshot() (schema.RelationSnapshot, bool) {
	var snap schema.RelationSnapshot
	if rc.store == nil {
		return snap, false
	}

	data, version, _, err := rc.store.Get(relationsKey)
	if err != nil || version != currentSnapshotVersion {
		return snap, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return schema.RelationSnapshot{}, false
	}
	return snap, true
}

// fetchSnapshot paginates both collections to exhaustion and builds a new
// snapshot. Followers and followees are independent, so the two collections
// are fetched concurrently with each other; pages within one collection are
// fetched sequentially.
func (rc *RelationCache) fetchSnapshot(ctx context.Context) (schema.RelationSnapshot, error) {
	var followers, followees []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followers, err = rc.paginateAll(gctx, rc.client.ListFollowersPage)
		return err
	})
	g.Go(func() error {
		var err error
		followees, err = rc.paginateAll(gctx, rc.client.ListFollowingPage)
		return err
	})
	if err := g.Wait(); err != nil {
		return schema.RelationSnapshot{}, err
	}

	return schema.RelationSnapshot{
		LastUpdate: rc.now(),
		Followers:  followers,
		Followees:  followees,
	}, nil
}

// paginateAll walks one paginated collection to exhaustion, stopping when a
// page comes back short or empty. Duplicate logins are dropped to preserve
// set semantics.
func (rc *RelationCache) paginateAll(ctx context.Context, fetch func(context.Context, int, int) ([]string, error)) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	for page := 1; ; page++ {
		logins, err := fetch(ctx, page, rc.pageSize)
		if err != nil {
			return nil, err
		}
		for _, login := range logins {
			if _, dup := seen[login]; dup {
				continue
			}
			seen[login] = struct{}{}
			all = append(all, login)
		}
		if len(logins) < rc.pageSize {
			return all, nil
		}
	}
}

// commit stores the fully-fetched snapshot. A store-write failure is
// reported but does not fail the run; the caller still gets the fresh
// snapshot and the next run refreshes again.
func (rc *RelationCache) commit(snap schema.RelationSnapshot) {
	if rc.store == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		contract.LogWarn("could not encode relation snapshot", err)
		return
	}
	if err := rc.store.Set(relationsKey, data, currentSnapshotVersion, snap.LastUpdate.Unix()); err != nil {
		contract.LogWarn("could not persist relation snapshot", err)
	}
}
