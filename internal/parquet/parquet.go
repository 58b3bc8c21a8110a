// Package parquet provides data structures and functions for exporting
// ranked report data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/gazer/schema"
)

// RowRecord represents one ranked account in the Parquet export.
type RowRecord struct {
	// Rank is the 1-based position after sorting by score.
	Rank int32 `parquet:"rank,snappy"`

	// Login is the account identifier.
	Login string `parquet:"login,snappy"`

	// Category is the relation bucket: mutual, watching or watcher.
	Category string `parquet:"category,snappy"`

	// Score is the computed account score.
	Score float64 `parquet:"score,snappy"`

	// PublicRepos is the count of public repositories.
	PublicRepos int32 `parquet:"public_repos,snappy"`

	// Followers is the account's follower count.
	Followers int32 `parquet:"followers,snappy"`

	// Following is the account's followee count.
	Following int32 `parquet:"following,snappy"`

	// ProfileURL is the account's web profile link.
	ProfileURL string `parquet:"profile_url,snappy"`

	// GeneratedAt is when the report run produced this record.
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// ConvertRows maps ranked classified rows to Parquet records.
func ConvertRows(rows []schema.ClassifiedRow, generatedAt time.Time) []RowRecord {
	records := make([]RowRecord, len(rows))
	for i, r := range rows {
		records[i] = RowRecord{
			Rank:        int32(i + 1),
			Login:       r.Profile.Login,
			Category:    string(r.Category),
			Score:       r.Score,
			PublicRepos: int32(r.Profile.PublicRepos),
			Followers:   int32(r.Profile.Followers),
			Following:   int32(r.Profile.Following),
			ProfileURL:  r.Profile.HTMLURL,
			GeneratedAt: generatedAt,
		}
	}
	return records
}

// WriteRowRecords writes a slice of RowRecord structs to a Parquet file.
func WriteRowRecords(data []RowRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RowRecord struct tags
	writer := parquet.NewGenericWriter[RowRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
