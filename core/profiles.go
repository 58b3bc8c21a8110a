package core

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// currentProfileVersion defines the version of the profile cache schema.
const currentProfileVersion = 1

// profileKeyPrefix namespaces profile entries in the store.
const profileKeyPrefix = "user:"

// ProfileCache is a permanent memoizing store mapping a login to its
// last-fetched profile record. Entries never expire; a record is only
// replaced when the same login misses the cache again (last write wins).
type ProfileCache struct {
	client contract.SocialClient
	store  contract.CacheStore
	sf     singleflight.Group
}

// NewProfileCache returns a ProfileCache over the given client and store.
func NewProfileCache(client contract.SocialClient, store contract.CacheStore) *ProfileCache {
	return &ProfileCache{client: client, store: store}
}

// GetProfile returns the cached profile for login, fetching and memoizing
// it on first sight. There is no staleness check; profiles are treated as
// cache-forever. Concurrent misses for the same login share one remote
// fetch via singleflight.
func (pc *ProfileCache) GetProfile(ctx context.Context, login string) (schema.ProfileRecord, error) {
	if record, ok := pc.cachedProfile(login); ok {
		return record, nil
	}

	v, err, _ := pc.sf.Do(login, func() (any, error) {
		// Re-check under the flight: a concurrent caller may have stored
		// the record between our miss and this callback running.
		if record, ok := pc.cachedProfile(login); ok {
			return record, nil
		}
		record, err := pc.client.GetProfile(ctx, login)
		if err != nil {
			return schema.ProfileRecord{}, err
		}
		pc.storeProfile(record)
		return record, nil
	})
	if err != nil {
		return schema.ProfileRecord{}, err
	}
	return v.(schema.ProfileRecord), nil
}

// cachedProfile attempts to retrieve and decode a stored record.
// Any read, version, or parse failure is a miss, not an error.
func (pc *ProfileCache) cachedProfile(login string) (schema.ProfileRecord, bool) {
	var record schema.ProfileRecord
	if pc.store == nil {
		return record, false
	}

	data, version, _, err := pc.store.Get(profileKeyPrefix + login)
	if err != nil || version != currentProfileVersion {
		return record, false
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return schema.ProfileRecord{}, false
	}
	return record, true
}

// storeProfile persists a record. Write failures are reported but do not
// fail the lookup; the next run fetches again.
func (pc *ProfileCache) storeProfile(record schema.ProfileRecord) {
	if pc.store == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		contract.LogWarn("could not encode profile record", err)
		return
	}
	if err := pc.store.Set(profileKeyPrefix+record.Login, data, currentProfileVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("could not persist profile record", err)
	}
}
