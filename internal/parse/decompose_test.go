package parse

import (
	"testing"

	"github.com/afl-project/supercoach-ingest/internal/domain/supercoach"
)

func TestDecompose_InitialSurnameTeam(t *testing.T) {
	t.Parallel()

	got := Decompose("TristanXerriTXerriKangaroos")

	want := supercoach.ParsedPlayer{
		FullName:        "Tristan Xerri",
		AbbreviatedName: "T Xerri",
		Team:            "North Melbourne",
	}
	if got != want {
		t.Fatalf("unexpected decomposition: got=%+v want=%+v", got, want)
	}
}

func TestDecompose_RepeatedSurnameSignal(t *testing.T) {
	t.Parallel()

	// Tokenizes to [Massimo D Ambrosio M D Ambrosio Hawks]; the shared
	// D/Ambrosio tail must pull the split to the second initial, not
	// the first.
	got := Decompose("MassimoDAmbrosioMDAmbrosioHawks")

	want := supercoach.ParsedPlayer{
		FullName:        "Massimo D Ambrosio",
		AbbreviatedName: "M D Ambrosio",
		Team:            "Hawthorn",
	}
	if got != want {
		t.Fatalf("unexpected decomposition: got=%+v want=%+v", got, want)
	}
}

func TestDecompose_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"TristanXerriTXerriKangaroos",
		"MassimoDAmbrosioMDAmbrosioHawks",
		"NasiahWanganeenMileraNWanganeenMileraCrows",
		"Xavier",
		"",
	}
	for _, in := range inputs {
		first := Decompose(in)
		for i := 0; i < 5; i++ {
			if again := Decompose(in); again != first {
				t.Fatalf("non-deterministic decomposition for %q: %+v vs %+v", in, first, again)
			}
		}
	}
}

func TestDecompose_SentinelAndEmpty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "No results found."} {
		if got := Decompose(in); got != (supercoach.ParsedPlayer{}) {
			t.Fatalf("expected empty result for %q, got %+v", in, got)
		}
	}
}

func TestDecompose_TooFewTokensKeepsRawAsFullName(t *testing.T) {
	t.Parallel()

	got := Decompose("JoeDaniher")
	if got.FullName != "JoeDaniher" {
		t.Fatalf("unexpected full name: %q", got.FullName)
	}
	if got.AbbreviatedName != "" || got.Team != "" {
		t.Fatalf("expected no abbreviation or team, got %+v", got)
	}
}

func TestDecompose_UnknownTrailingTokenStaysInName(t *testing.T) {
	t.Parallel()

	// "Wombats" is not a SuperCoach team token, so it must not be
	// popped off as the team.
	got := Decompose("TristanXerriTXerriWombats")
	if got.Team != "" {
		t.Fatalf("expected no team, got %q", got.Team)
	}
	if got.AbbreviatedName != "T Xerri Wombats" {
		t.Fatalf("unexpected abbreviated name: %q", got.AbbreviatedName)
	}
	if got.FullName != "Tristan Xerri" {
		t.Fatalf("unexpected full name: %q", got.FullName)
	}
}

func TestDecompose_FallbackFirstInitial(t *testing.T) {
	t.Parallel()

	// No shared surname tokens and only one name word on the left, so
	// the scored search stays under threshold and the first interior
	// initial wins.
	got := Decompose("XavierXDuursmaBombers")
	if got.FullName != "Xavier" {
		t.Fatalf("unexpected full name: %q", got.FullName)
	}
	if got.AbbreviatedName != "X Duursma" {
		t.Fatalf("unexpected abbreviated name: %q", got.AbbreviatedName)
	}
	if got.Team != "Essendon" {
		t.Fatalf("unexpected team: %q", got.Team)
	}
}

func TestDecompose_NoInitialAnywhere(t *testing.T) {
	t.Parallel()

	got := Decompose("HarrySheezelMcKenzieKangaroos")
	if got.Team != "North Melbourne" {
		t.Fatalf("unexpected team: %q", got.Team)
	}
	if got.FullName != "Harry Sheezel Mc Kenzie" {
		t.Fatalf("unexpected full name: %q", got.FullName)
	}
	if got.AbbreviatedName != "" {
		t.Fatalf("expected no abbreviated name, got %q", got.AbbreviatedName)
	}
}
