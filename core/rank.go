package core

import (
	"sort"

	"github.com/huangsam/gazer/schema"
)

// sortRows orders rows by score descending; ties break by ascending login
// so equal scores render deterministically.
func sortRows(rows []schema.ClassifiedRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Profile.Login < rows[j].Profile.Login
	})
}

// RankRows sorts rows by their impact score in descending order and
// returns the top 'limit' rows. If limit is greater than the number of
// rows, all rows are returned in sorted order.
func RankRows(rows []schema.ClassifiedRow, limit int) []schema.ClassifiedRow {
	sortRows(rows)
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
