package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/afl-project/supercoach-ingest/internal/domain/roster"
	qb "github.com/afl-project/supercoach-ingest/internal/platform/querybuilder"
)

// RosterRepository reads the player_details reference table. All name
// and team comparisons are case-insensitive; every lookup is bounded
// to one row with ties broken by the most recent season.
type RosterRepository struct {
	db *sqlx.DB
}

// firstName is camelCased in the legacy schema and needs quoting.
const firstNameColumn = `"firstName"`

var rosterSelectColumns = []string{"id", "season"}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) FindByName(ctx context.Context, q roster.NameQuery) (roster.Match, bool, error) {
	query, args, err := qb.Select(rosterSelectColumns...).From("player_details").
		Where(
			nameCondition(firstNameColumn, q.FirstName),
			nameCondition("surname", q.Surname),
			qb.EqFold("team", q.Team),
		).
		OrderBy("season DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return roster.Match{}, false, fmt.Errorf("build find by name query: %w", err)
	}

	return r.get(ctx, query, args)
}

func (r *RosterRepository) FindByFirstName(ctx context.Context, firstName, team string) (roster.Match, bool, error) {
	query, args, err := qb.Select(rosterSelectColumns...).From("player_details").
		Where(
			qb.EqFold(firstNameColumn, firstName),
			qb.EqFold("team", team),
		).
		OrderBy("season DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return roster.Match{}, false, fmt.Errorf("build find by first name query: %w", err)
	}

	return r.get(ctx, query, args)
}

func (r *RosterRepository) get(ctx context.Context, query string, args []any) (roster.Match, bool, error) {
	var row rosterMatchModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Match{}, false, nil
		}
		return roster.Match{}, false, fmt.Errorf("select player_details: %w", err)
	}

	return roster.Match{PlayerID: row.ID, Season: row.Season}, true, nil
}

func nameCondition(column string, t roster.Term) qb.Condition {
	if t.Contains {
		return qb.ILike(column, "%"+t.Value+"%")
	}
	return qb.EqFold(column, t.Value)
}
