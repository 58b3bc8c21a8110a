package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/outwriter"
	"github.com/huangsam/gazer/schema"
)

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.SocialClient, mgr contract.CacheManager) error

// buildPipeline wires the snapshot cache, profile cache and enricher
// for a single run.
func buildPipeline(cfg *contract.Config, client contract.SocialClient, mgr contract.CacheManager) (*RelationCache, *Enricher) {
	relations := NewRelationCache(client, mgr.GetRelationsStore(), cfg.TTL, cfg.PageSize)
	profiles := NewProfileCache(client, mgr.GetProfilesStore())
	enricher := NewEnricher(profiles, cfg.Workers, cfg.Mode)
	return relations, enricher
}

// ExecuteGazerReport runs the full-graph report: one snapshot, all three
// relation categories enriched and ranked together. It serves as the main
// entry point for the 'report' mode.
func ExecuteGazerReport(ctx context.Context, cfg *contract.Config, client contract.SocialClient, mgr contract.CacheManager) error {
	start := time.Now()
	relations, enricher := buildPipeline(cfg, client, mgr)

	result, err := relations.GetSnapshot(ctx, cfg.Refresh)
	if err != nil {
		return err
	}
	snap := result.Snapshot
	followers := snap.Followers
	followees := snap.Followees

	categories := map[schema.Category][]string{
		schema.MutualCategory:   Mutuals(followers, followees),
		schema.WatchingCategory: Watching(followers, followees),
		schema.WatcherCategory:  Watchers(followers, followees),
	}

	if cfg.Output == schema.TextOut {
		summary := buildSummary(snap, categories, result.Refreshed, time.Now())
		outwriter.WriteSummary(summary, cfg)
		if result.Diff != nil && !result.Diff.Empty() {
			outwriter.WriteDiff(*result.Diff, cfg)
		}
	}

	rows := make([]schema.ClassifiedRow, 0)
	failures := 0
	for _, category := range schema.AllCategories {
		catRows, catFailures := enricher.Enrich(ctx, categories[category], category)
		rows = append(rows, catRows...)
		failures += catFailures
	}
	if failures > 0 {
		contract.LogWarn("profiles skipped", fmt.Errorf("%d lookups failed", failures))
	}

	ranked := RankRows(rows, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.WriteRows(ranked, cfg, duration)
}

// ExecuteGazerCategory runs a single-category report (mutuals, watching
// or watchers) against the shared snapshot.
func ExecuteGazerCategory(ctx context.Context, cfg *contract.Config, client contract.SocialClient, mgr contract.CacheManager, category schema.Category) error {
	start := time.Now()
	relations, enricher := buildPipeline(cfg, client, mgr)

	result, err := relations.GetSnapshot(ctx, cfg.Refresh)
	if err != nil {
		return err
	}
	followers := result.Snapshot.Followers
	followees := result.Snapshot.Followees

	var logins []string
	switch category {
	case schema.MutualCategory:
		logins = Mutuals(followers, followees)
	case schema.WatchingCategory:
		logins = Watching(followers, followees)
	case schema.WatcherCategory:
		logins = Watchers(followers, followees)
	default:
		return fmt.Errorf("unknown category: %s", category)
	}

	rows, failures := enricher.Enrich(ctx, logins, category)
	if failures > 0 {
		contract.LogWarn("profiles skipped", fmt.Errorf("%d lookups failed", failures))
	}

	ranked := RankRows(rows, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.WriteRows(ranked, cfg, duration)
}

// ExecuteGazerDiff forces a snapshot refresh and prints the follower
// delta against the previously cached snapshot.
func ExecuteGazerDiff(ctx context.Context, cfg *contract.Config, client contract.SocialClient, mgr contract.CacheManager) error {
	relations, _ := buildPipeline(cfg, client, mgr)

	result, err := relations.GetSnapshot(ctx, true)
	if err != nil {
		return err
	}
	if result.Diff == nil {
		fmt.Println("No previous snapshot to compare against.")
		return nil
	}
	outwriter.WriteDiff(*result.Diff, cfg)
	return nil
}

// buildSummary computes the headline counts for the text report.
func buildSummary(snap schema.RelationSnapshot, categories map[schema.Category][]string, refreshed bool, now time.Time) schema.GraphSummary {
	return schema.GraphSummary{
		TotalFollowers: len(snap.Followers),
		TotalFollowees: len(snap.Followees),
		Mutuals:        len(categories[schema.MutualCategory]),
		Watching:       len(categories[schema.WatchingCategory]),
		Watchers:       len(categories[schema.WatcherCategory]),
		SnapshotAge:    now.Sub(snap.LastUpdate),
		Refreshed:      refreshed,
	}
}
