// Package schema has configs, models and shared constants for all parts of gazer.
package schema

import "time"

// RelationSnapshot is the timestamped pair of follower/followee sets for the
// authenticated account at a point in time. Both slices carry set semantics
// (no duplicates) and are replaced wholesale on every refresh; LastUpdate is
// monotonically non-decreasing across successive writes to the same store.
type RelationSnapshot struct {
	LastUpdate time.Time `json:"last_update"` // When the snapshot was fetched
	Followers  []string  `json:"followers"`   // Accounts following us
	Followees  []string  `json:"followees"`   // Accounts we follow
}

// ProfileRecord holds the last-observed public statistics for one account.
// Records are immutable once stored; a later fetch of the same login
// overwrites the prior record wholesale.
type ProfileRecord struct {
	Login       string `json:"login"`        // Unique account handle (case-sensitive)
	PublicRepos int    `json:"public_repos"` // Number of public repositories
	Followers   int    `json:"followers"`    // Follower count at fetch time
	Following   int    `json:"following"`    // Followee count at fetch time
	HTMLURL     string `json:"html_url"`     // Profile page URL
}

// ClassifiedRow is one ranked account in a category table. Transient,
// constructed per invocation; never persisted.
type ClassifiedRow struct {
	Category Category      `json:"category"`
	Profile  ProfileRecord `json:"profile"`
	Score    float64       `json:"score"`
}

// RelationDiff lists follower changes between two snapshots. Computed
// transiently during a refresh and reported, never persisted.
type RelationDiff struct {
	Gained []string `json:"gained"` // In current followers, not in previous
	Lost   []string `json:"lost"`   // In previous followers, not in current
}

// Empty reports whether the diff carries no changes.
func (d *RelationDiff) Empty() bool {
	return len(d.Gained) == 0 && len(d.Lost) == 0
}

// GraphSummary holds the headline counts for a snapshot.
type GraphSummary struct {
	TotalFollowers int           `json:"total_followers"`
	TotalFollowees int           `json:"total_followees"`
	Mutuals        int           `json:"mutuals"`
	Watching       int           `json:"watching"`
	Watchers       int           `json:"watchers"`
	SnapshotAge    time.Duration `json:"snapshot_age"`
	Refreshed      bool          `json:"refreshed"` // Whether this run hit the remote source
}

// CacheStatus returns status information about a cache store.
type CacheStatus struct {
	Backend         string    // Backend type (json, sqlite, ...)
	Connected       bool      // Whether the store is usable
	TotalEntries    int       // Number of stored entries
	LastEntryTime   time.Time // Timestamp of the newest entry
	OldestEntryTime time.Time // Timestamp of the oldest entry
}
