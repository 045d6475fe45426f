package supercoach

import "context"

// PriceRepository persists the scraped price snapshot. Each run
// replaces the previous snapshot wholesale.
type PriceRepository interface {
	ReplaceSnapshot(ctx context.Context, rows []PriceSnapshot) error
}
