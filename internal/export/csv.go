// Package export writes the ingest result to flat files for ad-hoc
// analysis alongside the database snapshot.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
)

var csvHeader = []string{
	"full_name",
	"abbreviated_name",
	"team",
	"player_id",
	"current_price",
	"total_change",
	"change_percentage",
	"last_change",
	"expected_price",
	"expected_change",
	"expected_price_2",
	"expected_change_2",
	"expected_price_3",
	"expected_change_3",
	"scraped_date",
}

// WriteCSV writes the snapshot rows to path, creating parent
// directories as needed. Nil values become empty cells.
func WriteCSV(path string, rows []supercoach.PriceSnapshot) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

func csvRecord(row supercoach.PriceSnapshot) []string {
	return []string{
		row.FullName,
		row.AbbreviatedName,
		row.Team,
		formatID(row.PlayerID),
		formatFloat(row.CurrentPrice),
		formatFloat(row.TotalChange),
		formatFloat(row.ChangePercentage),
		formatFloat(row.LastChange),
		formatFloat(row.ExpectedPrice),
		formatFloat(row.ExpectedChange),
		formatFloat(row.ExpectedPrice2),
		formatFloat(row.ExpectedChange2),
		formatFloat(row.ExpectedPrice3),
		formatFloat(row.ExpectedChange3),
		row.ScrapedDate.Format(time.DateOnly),
	}
}

func formatID(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
