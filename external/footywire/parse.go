package footywire

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
)

const playerColumnHeader = "Player"

// PriceTable is the scraped prices table. Headers carry the non-player
// column titles in page order; each row's Cells align with them.
type PriceTable struct {
	Headers []string
	Rows    []supercoach.RawRow
}

// ParsePriceTable extracts the prices table from the page markup. The
// table lives inside div#fantasy-prices-div; the first row is the
// header and names the player column.
func ParsePriceTable(raw []byte) (PriceTable, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return PriceTable{}, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("div#fantasy-prices-div table").First()
	if table.Length() == 0 {
		return PriceTable{}, fmt.Errorf("prices table not found")
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return PriceTable{}, fmt.Errorf("prices table has no rows")
	}

	headers := cellTexts(rows.First())
	playerIdx := -1
	for i, h := range headers {
		if strings.EqualFold(h, playerColumnHeader) {
			playerIdx = i
			break
		}
	}
	if playerIdx < 0 {
		return PriceTable{}, fmt.Errorf("prices table header has no %q column", playerColumnHeader)
	}

	out := PriceTable{Headers: dropIndex(headers, playerIdx)}
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) == 0 {
			return
		}

		player := ""
		if playerIdx < len(cells) {
			player = cells[playerIdx]
			cells = dropIndex(cells, playerIdx)
		} else {
			player = cells[0]
			cells = cells[1:]
		}

		out.Rows = append(out.Rows, supercoach.RawRow{
			Player: player,
			Cells:  padCells(cells, len(out.Headers)),
		})
	})

	return out, nil
}

func cellTexts(row *goquery.Selection) []string {
	var out []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.TrimSpace(cell.Text()))
	})
	return out
}

func dropIndex(items []string, idx int) []string {
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// padCells pins every row to the header width so downstream column
// mapping never indexes out of range.
func padCells(cells []string, width int) []string {
	if len(cells) == width {
		return cells
	}
	if len(cells) > width {
		return cells[:width]
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}
