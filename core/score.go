package core

import (
	"math"

	"github.com/huangsam/gazer/schema"
)

// scoringEpsilon guards against division-by-zero and log-of-zero without
// materially biasing accounts that have zero followees or zero repos.
// It is applied uniformly in the numerator, the denominator, and the log.
const scoringEpsilon = 1e-5

// computeScore calculates an account's impact score from its profile
// statistics. Supports two scoring modes:
// - impact: repo-count weighting plus follower/followee ratio (default)
// - ratio: follower/followee ratio only
// The ratio mode is the degenerate special case of impact with the
// repo-count term removed.
func computeScore(p schema.ProfileRecord, mode schema.ScoringMode) float64 {
	ratio := (float64(p.Followers) + scoringEpsilon) / (float64(p.Following) + scoringEpsilon)

	switch mode {
	case schema.RatioMode:
		return ratio
	default: // case "impact" (default)
		return math.Log10(float64(p.PublicRepos)+scoringEpsilon) + ratio
	}
}
