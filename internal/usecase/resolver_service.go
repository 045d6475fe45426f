package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/afl-project/supercoach-ingest/internal/domain/roster"
	"github.com/afl-project/supercoach-ingest/internal/parse"
)

// FootyWire rows carry this literal where the team could not be
// parsed; such rows can never be matched.
const missingPlaceholder = "None"

// ResolverService matches a scraped (full name, team) pair to a
// canonical player_details record. Strategies run in order from exact
// to progressively fuzzier, stopping at the first hit, so an earlier
// (higher-precision) match is never displaced by a later one. No match
// is reported as ok=false with a nil error; errors mean the query
// channel itself failed.
type ResolverService struct {
	rosterRepo   roster.Repository
	queryTimeout time.Duration
}

func NewResolverService(rosterRepo roster.Repository, queryTimeout time.Duration) *ResolverService {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &ResolverService{
		rosterRepo:   rosterRepo,
		queryTimeout: queryTimeout,
	}
}

// matchAttempt is one strategy in the cascade.
type matchAttempt struct {
	name string
	run  func(ctx context.Context) (roster.Match, bool, error)
}

func (s *ResolverService) Resolve(ctx context.Context, fullName, team string) (roster.Match, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.Resolve")
	defer span.End()

	fullName = strings.TrimSpace(fullName)
	team = strings.TrimSpace(team)
	if fullName == "" || fullName == missingPlaceholder {
		return roster.Match{}, false, nil
	}
	if team == "" || team == missingPlaceholder {
		return roster.Match{}, false, nil
	}

	for _, attempt := range s.cascade(strings.Fields(fullName), team) {
		match, ok, err := attempt.run(ctx)
		if err != nil {
			return roster.Match{}, false, fmt.Errorf("%s: %w", attempt.name, err)
		}
		if ok {
			return match, true, nil
		}
	}

	return roster.Match{}, false, nil
}

// cascade builds the ordered strategy list for one input. Token
// normalization happens once here; the closures only differ in which
// spelling combination they query.
func (s *ResolverService) cascade(tokens []string, team string) []matchAttempt {
	if len(tokens) == 1 {
		return []matchAttempt{
			s.firstNameAttempt("first name only", tokens[0], team),
		}
	}

	first := tokens[0]
	normFirst := parse.NormalizeName(first)
	rawSurname := strings.Join(tokens[1:], " ")
	normSurname := parse.NormalizeName(rawSurname)

	attempts := []matchAttempt{
		s.exactAttempt("exact normalized", normFirst, normSurname, team),
	}
	if normFirst != first {
		attempts = append(attempts, s.exactAttempt("exact original first name", first, normSurname, team))
	}
	if normSurname != rawSurname {
		attempts = append(attempts, s.exactAttempt("exact original surname", normFirst, rawSurname, team))
	}
	if normFirst != first && normSurname != rawSurname {
		attempts = append(attempts, s.exactAttempt("exact both original", first, rawSurname, team))
	}

	for _, variant := range parse.NameVariants(first) {
		attempts = append(attempts, s.exactAttempt("variant "+variant, variant, normSurname, team))
		if normSurname != rawSurname {
			attempts = append(attempts, s.exactAttempt("variant "+variant+" original surname", variant, rawSurname, team))
		}
	}

	attempts = append(attempts,
		s.nameAttempt("fuzzy first name", roster.Partial(normFirst), roster.Exact(normSurname), team),
		s.nameAttempt("fuzzy surname", roster.Exact(normFirst), roster.Partial(normSurname), team),
		s.nameAttempt("fuzzy both", roster.Partial(normFirst), roster.Partial(normSurname), team),
	)

	for _, surname := range complexSurnames(tokens) {
		attempts = append(attempts, s.exactAttempt("complex surname "+surname, first, surname, team))
	}

	// Last resort: first name and team alone. Known trade-off: two
	// players sharing a first name at one club collapse onto whichever
	// record carries the higher season.
	attempts = append(attempts, s.firstNameAttempt("first name last resort", first, team))

	return attempts
}

func (s *ResolverService) exactAttempt(name, firstName, surname, team string) matchAttempt {
	return s.nameAttempt(name, roster.Exact(firstName), roster.Exact(surname), team)
}

func (s *ResolverService) nameAttempt(name string, firstName, surname roster.Term, team string) matchAttempt {
	return matchAttempt{
		name: name,
		run: func(ctx context.Context) (roster.Match, bool, error) {
			qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
			defer cancel()
			return s.rosterRepo.FindByName(qctx, roster.NameQuery{
				FirstName: firstName,
				Surname:   surname,
				Team:      team,
			})
		},
	}
}

func (s *ResolverService) firstNameAttempt(name, firstName, team string) matchAttempt {
	return matchAttempt{
		name: name,
		run: func(ctx context.Context) (roster.Match, bool, error) {
			qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
			defer cancel()
			return s.rosterRepo.FindByFirstName(qctx, firstName, team)
		},
	}
}

// complexSurnames builds alternative surname spellings for names of
// three or more words: the plain join, a hyphenated three-word form,
// and fused/spaced Mc/Mac forms.
func complexSurnames(tokens []string) []string {
	if len(tokens) < 3 {
		return nil
	}

	out := []string{strings.Join(tokens[1:], " ")}
	if len(tokens) == 3 {
		out = append(out, tokens[1]+"-"+tokens[2])
	}
	if second := strings.ToLower(tokens[1]); second == "mc" || second == "mac" {
		out = append(out, tokens[1]+tokens[2], tokens[1]+" "+tokens[2])
	}
	return out
}
