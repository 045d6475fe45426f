package supercoach

import "time"

// RawRow is one scraped row of the FootyWire SuperCoach price table.
// Player holds the concatenated name/team blob; Cells carries the
// remaining columns untouched, in header order.
type RawRow struct {
	Player string
	Cells  []string
}

// ParsedPlayer is the decomposed form of a RawRow's player blob.
// AbbreviatedName and Team are empty when the blob was too short or
// structureless to recover them.
type ParsedPlayer struct {
	FullName        string
	AbbreviatedName string
	Team            string
}

// RowResult pairs one input row with its decomposition and resolution
// outcome. Err is set only for query-channel failures; an unmatched
// player has Resolved=false and a nil Err.
type RowResult struct {
	Index    int
	Raw      RawRow
	Parsed   ParsedPlayer
	PlayerID int64
	Resolved bool
	Err      error
}

// BatchResult is the outcome of one ingest run, in input order.
type BatchResult struct {
	Rows       []RowResult
	Resolved   int
	Unresolved int
	Failed     int
}

// PriceSnapshot is one supercoach_prices row ready for storage. Nil
// pointers become NULL; PlayerID is nil when resolution found no
// canonical record.
type PriceSnapshot struct {
	FullName         string
	AbbreviatedName  string
	Team             string
	PlayerID         *int64
	CurrentPrice     *float64
	TotalChange      *float64
	ChangePercentage *float64
	LastChange       *float64
	ExpectedPrice    *float64
	ExpectedChange   *float64
	ExpectedPrice2   *float64
	ExpectedChange2  *float64
	ExpectedPrice3   *float64
	ExpectedChange3  *float64
	ScrapedDate      time.Time
}
