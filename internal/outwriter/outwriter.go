// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/parquet"
	"github.com/huangsam/gazer/schema"
)

// WriteRows outputs the ranked rows, dispatching based on the output format configured.
func WriteRows(rows []schema.ClassifiedRow, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRowJSONResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRowCSVResults(rows, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeRowParquetResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRowTable(rows, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRowJSONResults handles opening the file and calling the JSON writer.
func writeRowJSONResults(rows []schema.ClassifiedRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRows(w, rows)
	}, "Wrote JSON")
}

// writeRowCSVResults handles opening the file and calling the CSV writer.
func writeRowCSVResults(rows []schema.ClassifiedRow, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRows(csvWriter, rows, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeRowParquetResults writes rows to a Parquet file. Parquet has no
// stdout mode; a destination file is required.
func writeRowParquetResults(rows []schema.ClassifiedRow, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	records := parquet.ConvertRows(rows, time.Now())
	if err := parquet.WriteRowRecords(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d records to %s\n", len(records), cfg.OutputFile)
	return nil
}
