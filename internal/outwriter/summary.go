package outwriter

import (
	"fmt"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// WriteSummary prints a concise header with the graph counts for a report run.
func WriteSummary(summary schema.GraphSummary, cfg *contract.Config) {
	source := "cache"
	if summary.Refreshed {
		source = "remote"
	}
	fmt.Printf("Graph: %d followers, %d following (source: %s, age: %s)\n",
		summary.TotalFollowers, summary.TotalFollowees, source, summary.SnapshotAge.Round(time.Second))
	fmt.Printf("Mutuals: %d, Watching: %d, Watchers: %d (mode: %s)\n",
		summary.Mutuals, summary.Watching, summary.Watchers, cfg.Mode)
}

// WriteDiff prints the follower delta between the previous and current snapshots.
func WriteDiff(diff schema.RelationDiff, _ *contract.Config) {
	if diff.Empty() {
		fmt.Println("No follower changes since the last snapshot.")
		return
	}
	for _, login := range diff.Gained {
		fmt.Printf("+ %s\n", login)
	}
	for _, login := range diff.Lost {
		fmt.Printf("- %s\n", login)
	}
	fmt.Printf("Followers: %d gained, %d lost\n", len(diff.Gained), len(diff.Lost))
}
