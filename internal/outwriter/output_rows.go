package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeRowTable generates and writes the human-readable table.
func writeRowTable(rows []schema.ClassifiedRow, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Login", "Score", "Label", "Repos", "Followers", "Following", "Category", "URL"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, r := range rows {
		label := contract.GetPlainLabel(r.Score)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Score)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1), // Rank
			r.Profile.Login,
			fmtFloat(r.Score),
			label,
			fmt.Sprintf(intFmt, r.Profile.PublicRepos),
			fmt.Sprintf(intFmt, r.Profile.Followers),
			fmt.Sprintf(intFmt, r.Profile.Following),
			string(r.Category),
			contract.TruncateText(r.Profile.HTMLURL, getMaxTableURLWidth(cfg)),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d accounts\n", len(rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Report completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRows writes the ranked rows in CSV format.
func writeCSVResultsForRows(w *csv.Writer, rows []schema.ClassifiedRow, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"login",
		"score",
		"label",
		"public_repos",
		"followers",
		"following",
		"category",
		"url",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range rows {
		rec := []string{
			strconv.Itoa(i + 1),
			r.Profile.Login,
			fmtFloat(r.Score),
			contract.GetPlainLabel(r.Score),
			fmt.Sprintf(intFmt, r.Profile.PublicRepos),
			fmt.Sprintf(intFmt, r.Profile.Followers),
			fmt.Sprintf(intFmt, r.Profile.Following),
			string(r.Category),
			r.Profile.HTMLURL,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRows writes the ranked rows in JSON format.
func writeJSONResultsForRows(w io.Writer, rows []schema.ClassifiedRow) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONRowResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ClassifiedRow
	}

	output := make([]JSONRowResult, len(rows))
	for i, r := range rows {
		output[i] = JSONRowResult{
			Rank:          i + 1,
			Label:         contract.GetPlainLabel(r.Score),
			ClassifiedRow: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
