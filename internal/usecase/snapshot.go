package usecase

import (
	"time"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
	"github.com/afl-project/supercoach-ingest/internal/parse"
)

// BuildSnapshots converts processed rows into storage-ready price
// snapshots. headers names the pass-through cells of each row, in
// order; price and percentage cells are coerced to numbers, everything
// unrecognized is ignored. Rows whose player blob yielded no name at
// all are dropped.
func BuildSnapshots(headers []string, rows []supercoach.RowResult, scrapedDate time.Time) []supercoach.PriceSnapshot {
	out := make([]supercoach.PriceSnapshot, 0, len(rows))
	for _, row := range rows {
		if row.Parsed.FullName == "" {
			continue
		}

		snap := supercoach.PriceSnapshot{
			FullName:        row.Parsed.FullName,
			AbbreviatedName: row.Parsed.AbbreviatedName,
			Team:            row.Parsed.Team,
			ScrapedDate:     scrapedDate,
		}
		if row.Resolved {
			id := row.PlayerID
			snap.PlayerID = &id
		}

		for i, header := range headers {
			if i >= len(row.Raw.Cells) {
				break
			}
			assignCell(&snap, header, row.Raw.Cells[i])
		}

		out = append(out, snap)
	}
	return out
}

func assignCell(snap *supercoach.PriceSnapshot, header, cell string) {
	switch header {
	case "Current":
		snap.CurrentPrice = parse.Price(cell)
	case "Total Change":
		snap.TotalChange = parse.Price(cell)
	case "Change %":
		snap.ChangePercentage = parse.Percent(cell)
	case "Last Change":
		snap.LastChange = parse.Price(cell)
	case "Expected Price":
		snap.ExpectedPrice = parse.Price(cell)
	case "Expected Change":
		snap.ExpectedChange = parse.Price(cell)
	case "Expected Price 2":
		snap.ExpectedPrice2 = parse.Price(cell)
	case "Expected Change 2":
		snap.ExpectedChange2 = parse.Price(cell)
	case "Expected Price 3":
		snap.ExpectedPrice3 = parse.Price(cell)
	case "Expected Change 3":
		snap.ExpectedChange3 = parse.Price(cell)
	}
}
