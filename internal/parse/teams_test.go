package parse

import "testing"

func TestCanonicalTeam_KnownTokens(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Blues":     "Carlton",
		"Giants":    "GWS GIANTS",
		"Hawks":     "Hawthorn",
		"Kangaroos": "North Melbourne",
		"Suns":      "Gold Coast SUNS",
	}
	for token, want := range cases {
		if got := CanonicalTeam(token); got != want {
			t.Fatalf("CanonicalTeam(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestCanonicalTeam_Idempotent(t *testing.T) {
	t.Parallel()

	for token := range teamNames {
		once := CanonicalTeam(token)
		if twice := CanonicalTeam(once); twice != once {
			t.Fatalf("CanonicalTeam not idempotent for %q: %q then %q", token, once, twice)
		}
	}
}

func TestCanonicalTeam_UnknownAndEmpty(t *testing.T) {
	t.Parallel()

	if got := CanonicalTeam("Wombats"); got != "Wombats" {
		t.Fatalf("unknown token should pass through, got %q", got)
	}
	if got := CanonicalTeam(""); got != "" {
		t.Fatalf("empty token should stay empty, got %q", got)
	}
}

func TestKnownTeamToken(t *testing.T) {
	t.Parallel()

	if !KnownTeamToken("Tigers") {
		t.Fatal("Tigers should be a known token")
	}
	if KnownTeamToken("Richmond") {
		t.Fatal("official names are not short tokens")
	}
}
