package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/afl-project/supercoach-ingest/internal/domain/roster"
	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
	"github.com/afl-project/supercoach-ingest/internal/platform/logging"
)

type resolverFunc func(ctx context.Context, fullName, team string) (roster.Match, bool, error)

func (f resolverFunc) Resolve(ctx context.Context, fullName, team string) (roster.Match, bool, error) {
	return f(ctx, fullName, team)
}

func TestIngestService_ProcessRows(t *testing.T) {
	t.Parallel()

	resolver := resolverFunc(func(_ context.Context, fullName, _ string) (roster.Match, bool, error) {
		switch fullName {
		case "Tristan Xerri":
			return roster.Match{PlayerID: 11, Season: 2025}, true, nil
		case "Unknown Player":
			return roster.Match{}, false, nil
		default:
			return roster.Match{}, false, errors.New("connection reset")
		}
	})
	svc := NewIngestService(resolver, logging.NewNop(), 1)

	rows := []supercoach.RawRow{
		{Player: "TristanXerriTXerriKangaroos"},
		{Player: "UnknownPlayerUPlayerBlues"},
		{Player: "BrokenRowBRowTigers"},
	}

	out, err := svc.ProcessRows(context.Background(), rows)
	if err != nil {
		t.Fatalf("process rows: %v", err)
	}

	if len(out.Rows) != 3 {
		t.Fatalf("expected 3 row results, got %d", len(out.Rows))
	}
	if out.Resolved != 1 || out.Unresolved != 1 || out.Failed != 1 {
		t.Fatalf("unexpected tallies: %+v", out)
	}

	if !out.Rows[0].Resolved || out.Rows[0].PlayerID != 11 {
		t.Fatalf("expected row 0 resolved to player 11, got %+v", out.Rows[0])
	}
	if out.Rows[1].Resolved || out.Rows[1].Err != nil {
		t.Fatalf("expected row 1 unresolved without error, got %+v", out.Rows[1])
	}
	if out.Rows[2].Err == nil {
		t.Fatalf("expected row 2 to carry its error, got %+v", out.Rows[2])
	}

	for i, row := range out.Rows {
		if row.Index != i {
			t.Fatalf("expected row %d at position %d, got index %d", i, i, row.Index)
		}
	}
}

func TestIngestService_RowFailureDoesNotStopBatch(t *testing.T) {
	t.Parallel()

	resolver := resolverFunc(func(_ context.Context, fullName, _ string) (roster.Match, bool, error) {
		if fullName == "Broken Row" {
			return roster.Match{}, false, errors.New("timeout")
		}
		return roster.Match{PlayerID: 1, Season: 2025}, true, nil
	})
	svc := NewIngestService(resolver, logging.NewNop(), 1)

	out, err := svc.ProcessRows(context.Background(), []supercoach.RawRow{
		{Player: "BrokenRowBRowTigers"},
		{Player: "TristanXerriTXerriKangaroos"},
	})
	if err != nil {
		t.Fatalf("process rows: %v", err)
	}
	if out.Rows[0].Err == nil {
		t.Fatal("expected first row to record its failure")
	}
	if !out.Rows[1].Resolved {
		t.Fatal("expected second row to resolve despite earlier failure")
	}
}

func TestIngestService_ParallelKeepsOrder(t *testing.T) {
	t.Parallel()

	resolver := resolverFunc(func(_ context.Context, fullName, _ string) (roster.Match, bool, error) {
		id := int64(len(fullName))
		return roster.Match{PlayerID: id, Season: 2025}, true, nil
	})
	svc := NewIngestService(resolver, logging.NewNop(), 4)

	words := []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}
	rows := make([]supercoach.RawRow, len(words))
	for i, w := range words {
		rows[i] = supercoach.RawRow{Player: fmt.Sprintf("Player%sP%sBlues", w, w)}
	}

	out, err := svc.ProcessRows(context.Background(), rows)
	if err != nil {
		t.Fatalf("process rows: %v", err)
	}
	if out.Resolved != len(words) {
		t.Fatalf("expected all %d rows resolved, got %d", len(words), out.Resolved)
	}
	for i, row := range out.Rows {
		want := "Player " + words[i]
		if row.Parsed.FullName != want {
			t.Fatalf("row %d: expected %q in place, got %q", i, want, row.Parsed.FullName)
		}
		if row.Index != i {
			t.Fatalf("row %d: index %d out of order", i, row.Index)
		}
		if row.PlayerID != int64(len(want)) {
			t.Fatalf("row %d: expected player id %d, got %d", i, len(want), row.PlayerID)
		}
	}
}

func TestIngestService_EmptyBatch(t *testing.T) {
	t.Parallel()

	svc := NewIngestService(resolverFunc(func(context.Context, string, string) (roster.Match, bool, error) {
		return roster.Match{}, false, nil
	}), logging.NewNop(), 1)

	out, err := svc.ProcessRows(context.Background(), nil)
	if err != nil {
		t.Fatalf("process rows: %v", err)
	}
	if len(out.Rows) != 0 || out.Resolved != 0 || out.Unresolved != 0 || out.Failed != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}
}
