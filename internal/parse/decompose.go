package parse

import (
	"regexp"
	"strings"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
)

// FootyWire renders the player cell as one concatenated blob: full
// name, abbreviated name and team with no separators, e.g.
// "Tristan XerriT XerriKangaroos". Decompose recovers the pieces by
// re-splitting on capital-letter boundaries and searching for the
// split point between the full and abbreviated name.

const noResultsSentinel = "No results found."

// Accepting a best split below this score risks cutting inside the
// full name, so anything weaker falls back to the first-initial rule.
const minSplitScore = 3

var capitalRuns = regexp.MustCompile(`[A-Z][a-z]*`)

// Decompose splits one scraped player blob into full name, abbreviated
// name and canonical team. Malformed input degrades to a partial
// result rather than failing: fewer than three capital-run tokens
// leaves the whole string as the full name with no abbreviation or
// team.
func Decompose(raw string) supercoach.ParsedPlayer {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == noResultsSentinel {
		return supercoach.ParsedPlayer{}
	}

	tokens := capitalRuns.FindAllString(trimmed, -1)
	if len(tokens) < 3 {
		return supercoach.ParsedPlayer{FullName: trimmed}
	}

	team := ""
	if last := tokens[len(tokens)-1]; KnownTeamToken(last) {
		team = CanonicalTeam(last)
		tokens = tokens[:len(tokens)-1]
	}

	fullTokens, abbrevTokens := splitNameTokens(tokens)

	return supercoach.ParsedPlayer{
		FullName:        strings.Join(fullTokens, " "),
		AbbreviatedName: strings.Join(abbrevTokens, " "),
		Team:            team,
	}
}

func splitNameTokens(tokens []string) (full, abbrev []string) {
	if idx, score := bestSplit(tokens); idx > 0 && score >= minSplitScore {
		return tokens[:idx], tokens[idx:]
	}

	// Fallback: split at the first single-letter token after the first
	// word. No initial anywhere means the whole sequence is the full
	// name.
	for i := 1; i < len(tokens); i++ {
		if len(tokens[i]) == 1 {
			return tokens[:i], tokens[i:]
		}
	}
	return tokens, nil
}

// bestSplit scores every interior single-letter token as a candidate
// boundary between full and abbreviated name. Concatenation is
// boundary-free, but the abbreviated name repeats the surname; the
// scoring rewards exactly that redundancy so the true boundary wins.
func bestSplit(tokens []string) (idx, score int) {
	best := -1
	bestScore := 0

	for i := 1; i < len(tokens)-1; i++ {
		if len(tokens[i]) != 1 {
			continue
		}

		left, right := tokens[:i], tokens[i:]
		s := 0
		if len(left) >= 2 {
			s++
		}
		if len(right[0]) == 1 {
			s += 2
		}
		if len(left) >= 2 && len(right) >= 2 {
			s += 3 * sharedTokens(left[1:], right[1:])
		}

		if s > bestScore {
			bestScore = s
			best = i
		}
	}

	return best, bestScore
}

// sharedTokens counts distinct tokens appearing in both surname tails.
func sharedTokens(a, b []string) int {
	inA := make(map[string]struct{}, len(a))
	for _, t := range a {
		inA[t] = struct{}{}
	}
	count := 0
	seen := make(map[string]struct{}, len(b))
	for _, t := range b {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := inA[t]; ok {
			count++
		}
	}
	return count
}
