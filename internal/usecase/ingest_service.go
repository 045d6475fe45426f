package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/afl-project/supercoach-ingest/internal/domain/roster"
	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
	"github.com/afl-project/supercoach-ingest/internal/parse"
	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
)

// playerResolver is what the batch driver needs from the resolver.
type playerResolver interface {
	Resolve(ctx context.Context, fullName, team string) (roster.Match, bool, error)
}

// IngestService drives a batch of scraped rows through decomposition
// and resolution. Rows are independent, so the service can fan out
// across a worker pool; results keep input order either way. A
// query-channel failure is recorded on its row and the batch carries
// on.
type IngestService struct {
	resolver    playerResolver
	logger      *logging.Logger
	workerCount int
}

func NewIngestService(resolver playerResolver, logger *logging.Logger, workerCount int) *IngestService {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount < 1 {
		workerCount = 1
	}
	return &IngestService{
		resolver:    resolver,
		logger:      logger,
		workerCount: workerCount,
	}
}

func (s *IngestService) ProcessRows(ctx context.Context, rows []supercoach.RawRow) (supercoach.BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.ProcessRows")
	defer span.End()

	results := make([]supercoach.RowResult, len(rows))
	if len(rows) == 0 {
		return supercoach.BatchResult{Rows: results}, nil
	}

	if s.workerCount == 1 {
		for i, row := range rows {
			results[i] = s.processRow(ctx, i, row)
		}
	} else if err := s.processParallel(ctx, rows, results); err != nil {
		return supercoach.BatchResult{}, err
	}

	out := supercoach.BatchResult{Rows: results}
	for _, row := range results {
		switch {
		case row.Err != nil:
			out.Failed++
		case row.Resolved:
			out.Resolved++
		default:
			out.Unresolved++
		}
	}

	s.logger.InfoContext(ctx, "batch processed",
		"rows", len(rows),
		"resolved", out.Resolved,
		"unresolved", out.Unresolved,
		"failed", out.Failed,
	)

	return out, nil
}

func (s *IngestService) processParallel(ctx context.Context, rows []supercoach.RawRow, results []supercoach.RowResult) error {
	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, row := range rows {
		i, row := i, row
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = s.processRow(ctx, i, row)
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit row to worker pool: %w", err)
		}
	}
	workers.Wait()

	return nil
}

func (s *IngestService) processRow(ctx context.Context, index int, row supercoach.RawRow) supercoach.RowResult {
	out := supercoach.RowResult{
		Index:  index,
		Raw:    row,
		Parsed: parse.Decompose(row.Player),
	}

	match, ok, err := s.resolver.Resolve(ctx, out.Parsed.FullName, out.Parsed.Team)
	if err != nil {
		out.Err = err
		s.logger.ErrorContext(ctx, "row resolution failed",
			"row", index,
			"full_name", out.Parsed.FullName,
			"team", out.Parsed.Team,
			"error", err,
		)
		return out
	}
	if ok {
		out.PlayerID = match.PlayerID
		out.Resolved = true
		return out
	}

	s.logger.DebugContext(ctx, "row unresolved",
		"row", index,
		"full_name", out.Parsed.FullName,
		"team", out.Parsed.Team,
	)
	return out
}
