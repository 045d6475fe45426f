// Package app wires the ingest pipeline: fetch the FootyWire prices
// page, decompose and resolve every row against player_details, then
// replace the supercoach_prices snapshot and write the CSV export.
package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/afl-project/supercoach-ingest/external/footywire"
	"github.com/afl-project/supercoach-ingest/internal/config"
	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
	"github.com/afl-project/supercoach-ingest/internal/export"
	"github.com/afl-project/supercoach-ingest/internal/infrastructure/repository/postgres"
	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
	"github.com/afl-project/supercoach-ingest/internal/usecase"
)

// RunReport summarizes one ingest run for the operator.
type RunReport struct {
	Rows           int      `json:"rows"`
	Resolved       int      `json:"resolved"`
	Unresolved     int      `json:"unresolved"`
	Failed         int      `json:"failed"`
	Snapshots      int      `json:"snapshots"`
	CSVPath        string   `json:"csv_path"`
	UnmatchedNames []string `json:"unmatched_names,omitempty"`
	DurationMS     int64    `json:"duration_ms"`
}

// Run executes one full ingest and returns its report.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger) (RunReport, error) {
	if logger == nil {
		logger = logging.Default()
	}
	started := time.Now()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return RunReport{}, err
	}
	defer func() { _ = db.Close() }()

	client := footywire.NewClient(footywire.ClientConfig{
		BaseURL:             cfg.FootyWireBaseURL,
		Timeout:             cfg.FootyWireTimeout,
		MaxRetries:          cfg.FootyWireMaxRetries,
		CircuitFailureCount: cfg.FootyWireCircuitFailureCount,
		CircuitOpenTimeout:  cfg.FootyWireCircuitOpenTimeout,
		Logger:              logger,
	})

	table, err := client.FetchPrices(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("fetch prices: %w", err)
	}

	resolver := usecase.NewResolverService(postgres.NewRosterRepository(db), cfg.QueryTimeout)
	ingest := usecase.NewIngestService(resolver, logger, cfg.WorkerCount)

	batch, err := ingest.ProcessRows(ctx, table.Rows)
	if err != nil {
		return RunReport{}, fmt.Errorf("process rows: %w", err)
	}

	snapshots := usecase.BuildSnapshots(table.Headers, batch.Rows, time.Now().UTC())
	if err := postgres.NewPriceRepository(db).ReplaceSnapshot(ctx, snapshots); err != nil {
		return RunReport{}, fmt.Errorf("store snapshot: %w", err)
	}

	if err := export.WriteCSV(cfg.CSVPath, snapshots); err != nil {
		return RunReport{}, fmt.Errorf("export csv: %w", err)
	}

	report := RunReport{
		Rows:           len(batch.Rows),
		Resolved:       batch.Resolved,
		Unresolved:     batch.Unresolved,
		Failed:         batch.Failed,
		Snapshots:      len(snapshots),
		CSVPath:        cfg.CSVPath,
		UnmatchedNames: unmatchedSample(batch, cfg.UnmatchedLimit),
		DurationMS:     time.Since(started).Milliseconds(),
	}

	logger.InfoContext(ctx, "ingest run finished",
		"rows", report.Rows,
		"resolved", report.Resolved,
		"unresolved", report.Unresolved,
		"failed", report.Failed,
		"snapshots", report.Snapshots,
		"duration_ms", report.DurationMS,
	)
	return report, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(cfg.WorkerCount + 2)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// unmatchedSample lists up to limit unresolved player names so the
// mapping tables can be extended without digging through logs.
func unmatchedSample(batch supercoach.BatchResult, limit int) []string {
	if limit <= 0 {
		return nil
	}

	out := make([]string, 0, limit)
	for _, row := range batch.Rows {
		if row.Resolved || row.Err != nil || row.Parsed.FullName == "" {
			continue
		}
		out = append(out, row.Parsed.FullName+" ("+row.Parsed.Team+")")
		if len(out) == limit {
			break
		}
	}
	return out
}

const maxTracedQueryLength = 512

func formatQueryForTrace(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}

func dbNameFromURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
}
