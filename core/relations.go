package core

import (
	"sort"

	"github.com/huangsam/gazer/schema"
)

// Mutuals returns followees who also follow us (G ∩ F).
func Mutuals(followers, followees []string) []string {
	return intersect(followees, followers)
}

// Watching returns followees who do not follow back (G \ F).
func Watching(followers, followees []string) []string {
	return subtract(followees, followers)
}

// Watchers returns followers we do not follow back (F \ G).
func Watchers(followers, followees []string) []string {
	return subtract(followers, followees)
}

// DiffFollowers compares two follower sets and returns what changed.
func DiffFollowers(previous, current []string) schema.RelationDiff {
	return schema.RelationDiff{
		Gained: subtract(current, previous),
		Lost:   subtract(previous, current),
	}
}

// intersect returns the members of a that are also in b.
// The result is sorted so output is identical regardless of input order.
func intersect(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, l := range b {
		bSet[l] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, l := range a {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		if _, ok := bSet[l]; ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// subtract returns the members of a that are not in b.
// The result is sorted so output is identical regardless of input order.
func subtract(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, l := range b {
		bSet[l] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, l := range a {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		if _, ok := bSet[l]; !ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
