package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
	"github.com/huangsam/gazer/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockManager wires in-memory stores behind the mocked manager.
func newMockManager(relations, profiles *memStore) *iocache.MockCacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetRelationsStore").Return(contract.CacheStore(relations))
	mgr.On("GetProfilesStore").Return(contract.CacheStore(profiles))
	return mgr
}

func reportConfig(outputFile string) *contract.Config {
	return &contract.Config{
		ResultLimit:  25,
		Workers:      2,
		Mode:         schema.ImpactMode,
		Precision:    1,
		Output:       schema.CSVOut,
		OutputFile:   outputFile,
		TTL:          time.Hour,
		PageSize:     100,
		CacheBackend: schema.JSONBackend,
	}
}

// TestExecuteGazerReport tests the full report pipeline end to end.
func TestExecuteGazerReport(t *testing.T) {
	client := newFakeClient([]string{"alice", "bob"}, []string{"bob", "carol"})
	client.profiles["alice"] = schema.ProfileRecord{Login: "alice", Followers: 10, Following: 1}
	client.profiles["bob"] = schema.ProfileRecord{Login: "bob", Followers: 50, Following: 2, PublicRepos: 8}
	client.profiles["carol"] = schema.ProfileRecord{Login: "carol", Followers: 1, Following: 30}
	mgr := newMockManager(newMemStore(), newMemStore())

	outputFile := filepath.Join(t.TempDir(), "report.csv")
	cfg := reportConfig(outputFile)

	require.NoError(t, ExecuteGazerReport(context.Background(), cfg, client, mgr))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	out := string(data)

	// bob is the only mutual, alice the only watcher, carol the only watchee
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "carol")
	assert.Contains(t, out, string(schema.MutualCategory))
	assert.Contains(t, out, string(schema.WatcherCategory))
	assert.Contains(t, out, string(schema.WatchingCategory))
}

// TestExecuteGazerCategory tests a single-category run.
func TestExecuteGazerCategory(t *testing.T) {
	client := newFakeClient([]string{"alice", "bob"}, []string{"bob"})
	mgr := newMockManager(newMemStore(), newMemStore())

	outputFile := filepath.Join(t.TempDir(), "watchers.csv")
	cfg := reportConfig(outputFile)

	require.NoError(t, ExecuteGazerCategory(context.Background(), cfg, client, mgr, schema.WatcherCategory))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "bob") // mutual, not a watcher
}

// TestExecuteGazerCategoryLimit tests that the result limit truncates rows.
func TestExecuteGazerCategoryLimit(t *testing.T) {
	followers := []string{"a", "b", "c", "d", "e"}
	client := newFakeClient(followers, nil)
	mgr := newMockManager(newMemStore(), newMemStore())

	outputFile := filepath.Join(t.TempDir(), "watchers.csv")
	cfg := reportConfig(outputFile)
	cfg.ResultLimit = 2

	require.NoError(t, ExecuteGazerCategory(context.Background(), cfg, client, mgr, schema.WatcherCategory))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3) // header + 2 rows
}

// TestExecuteGazerDiff tests the forced-refresh diff flow.
func TestExecuteGazerDiff(t *testing.T) {
	client := newFakeClient([]string{"alice"}, nil)
	relations := newMemStore()
	mgr := newMockManager(relations, newMemStore())
	cfg := reportConfig("")

	// First run has no previous snapshot to diff against
	require.NoError(t, ExecuteGazerDiff(context.Background(), cfg, client, mgr))
	assert.Equal(t, 1, relations.entryCount())

	// Second run diffs against the stored snapshot
	client.followers = []string{"alice", "bob"}
	require.NoError(t, ExecuteGazerDiff(context.Background(), cfg, client, mgr))
}

// TestExecuteGazerCategorySharedSnapshot tests that category runs reuse the
// cached snapshot instead of refetching.
func TestExecuteGazerCategorySharedSnapshot(t *testing.T) {
	client := newFakeClient([]string{"alice"}, []string{"bob"})
	mgr := newMockManager(newMemStore(), newMemStore())
	cfg := reportConfig(filepath.Join(t.TempDir(), "out.csv"))

	require.NoError(t, ExecuteGazerCategory(context.Background(), cfg, client, mgr, schema.WatcherCategory))
	calls := client.totalListCalls()

	require.NoError(t, ExecuteGazerCategory(context.Background(), cfg, client, mgr, schema.WatchingCategory))
	assert.Equal(t, calls, client.totalListCalls(), "second category must reuse the cached snapshot")
}
