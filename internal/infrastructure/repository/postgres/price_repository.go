package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
	qb "github.com/afl-project/supercoach-ingest/internal/platform/querybuilder"
)

// PriceRepository stores the scraped SuperCoach snapshot. Each run
// replaces the previous one inside a single transaction so readers
// never see a half-written table.
type PriceRepository struct {
	db *sqlx.DB
}

// Batches stay well under the postgres parameter cap (65535 / 15
// columns).
const priceInsertChunk = 500

var priceInsertColumns = []string{
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

func NewPriceRepository(db *sqlx.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

func (r *PriceRepository) ReplaceSnapshot(ctx context.Context, rows []supercoach.PriceSnapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM supercoach_prices"); err != nil {
		return fmt.Errorf("clear supercoach_prices: %w", err)
	}

	for start := 0; start < len(rows); start += priceInsertChunk {
		end := start + priceInsertChunk
		if end > len(rows) {
			end = len(rows)
		}
		if err := insertPriceChunk(ctx, tx, rows[start:end]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

func insertPriceChunk(ctx context.Context, tx *sqlx.Tx, rows []supercoach.PriceSnapshot) error {
	builder := qb.InsertInto("supercoach_prices").Columns(priceInsertColumns...)
	for _, row := range rows {
		builder.Values(
			row.FullName,
			nullIfEmpty(row.AbbreviatedName),
			nullIfEmpty(row.Team),
			row.PlayerID,
			row.CurrentPrice,
			row.TotalChange,
			row.ChangePercentage,
			row.LastChange,
			row.ExpectedPrice,
			row.ExpectedChange,
			row.ExpectedPrice2,
			row.ExpectedChange2,
			row.ExpectedPrice3,
			row.ExpectedChange3,
			row.ScrapedDate,
		)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert supercoach_prices query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert supercoach_prices chunk: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
