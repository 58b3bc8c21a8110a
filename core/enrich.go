package core

import (
	"context"
	"sync"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// enrichResult carries the outcome of enriching a single login.
type enrichResult struct {
	row schema.ClassifiedRow
	err error
}

// Enricher turns bare logins into scored, classified rows by fetching
// profiles through the permanent profile cache.
type Enricher struct {
	profiles *ProfileCache
	workers  int
	mode     schema.ScoringMode
}

// NewEnricher returns an Enricher with the given parallelism and scoring mode.
func NewEnricher(profiles *ProfileCache, workers int, mode schema.ScoringMode) *Enricher {
	if workers < 1 {
		workers = 1
	}
	return &Enricher{profiles: profiles, workers: workers, mode: mode}
}

// Enrich fetches a profile for every login in parallel using a worker pool,
// scores each one and returns the rows sorted by score. Logins whose profile
// fetch fails are skipped with a warning; the count of skipped logins is
// returned alongside the rows.
func (e *Enricher) Enrich(ctx context.Context, logins []string, category schema.Category) ([]schema.ClassifiedRow, int) {
	loginCh := make(chan string, len(logins))
	resultCh := make(chan enrichResult, len(logins))
	var wg sync.WaitGroup

	// Start worker pool
	for range e.workers {
		wg.Go(func() {
			for login := range loginCh {
				resultCh <- e.enrichOne(ctx, login, category)
			}
		})
	}

	// Send logins to worker channel
	for _, login := range logins {
		loginCh <- login
	}
	close(loginCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(resultCh)

	rows := make([]schema.ClassifiedRow, 0, len(logins))
	failures := 0
	for r := range resultCh {
		if r.err != nil {
			contract.LogWarn("skipping profile", r.err)
			failures++
			continue
		}
		rows = append(rows, r.row)
	}

	sortRows(rows)
	return rows, failures
}

func (e *Enricher) enrichOne(ctx context.Context, login string, category schema.Category) enrichResult {
	profile, err := e.profiles.GetProfile(ctx, login)
	if err != nil {
		return enrichResult{err: err}
	}
	return enrichResult{row: schema.ClassifiedRow{
		Category: category,
		Profile:  profile,
		Score:    computeScore(profile, e.mode),
	}}
}
