package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/afl-project/supercoach-ingest/internal/domain/roster"
)

// RosterRepository is an in-memory roster.Repository with the same
// matching semantics as the postgres implementation: case-insensitive
// comparisons, ties broken by the most recent season. It backs tests
// and offline runs.
type RosterRepository struct {
	records []roster.PlayerRecord
}

func NewRosterRepository(records []roster.PlayerRecord) *RosterRepository {
	sorted := append([]roster.PlayerRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Season > sorted[j].Season
	})
	return &RosterRepository{records: sorted}
}

func (r *RosterRepository) FindByName(_ context.Context, q roster.NameQuery) (roster.Match, bool, error) {
	for _, rec := range r.records {
		if !strings.EqualFold(rec.Team, q.Team) {
			continue
		}
		if !termMatches(q.FirstName, rec.FirstName) {
			continue
		}
		if !termMatches(q.Surname, rec.Surname) {
			continue
		}
		return roster.Match{PlayerID: rec.ID, Season: rec.Season}, true, nil
	}
	return roster.Match{}, false, nil
}

func (r *RosterRepository) FindByFirstName(_ context.Context, firstName, team string) (roster.Match, bool, error) {
	for _, rec := range r.records {
		if !strings.EqualFold(rec.Team, team) {
			continue
		}
		if !strings.EqualFold(rec.FirstName, firstName) {
			continue
		}
		return roster.Match{PlayerID: rec.ID, Season: rec.Season}, true, nil
	}
	return roster.Match{}, false, nil
}

func termMatches(t roster.Term, value string) bool {
	if t.Contains {
		return strings.Contains(strings.ToLower(value), strings.ToLower(t.Value))
	}
	return strings.EqualFold(t.Value, value)
}
