package parse

// teamNames maps the SuperCoach short team tokens FootyWire uses to
// the official team names in player_details. Loaded once, read-only.
var teamNames = map[string]string{
	"Blues":     "Carlton",
	"Bombers":   "Essendon",
	"Bulldogs":  "Western Bulldogs",
	"Cats":      "Geelong Cats",
	"Crows":     "Adelaide Crows",
	"Demons":    "Melbourne",
	"Dockers":   "Fremantle",
	"Eagles":    "West Coast Eagles",
	"Giants":    "GWS GIANTS",
	"Hawks":     "Hawthorn",
	"Kangaroos": "North Melbourne",
	"Lions":     "Brisbane Lions",
	"Magpies":   "Collingwood",
	"Power":     "Port Adelaide",
	"Saints":    "St Kilda",
	"Suns":      "Gold Coast SUNS",
	"Swans":     "Sydney Swans",
	"Tigers":    "Richmond",
}

// CanonicalTeam converts a SuperCoach team token to the official team
// name. Unknown tokens pass through unchanged; empty in, empty out.
// Exact token match only, no fuzzy behaviour.
func CanonicalTeam(token string) string {
	if token == "" {
		return ""
	}
	if official, ok := teamNames[token]; ok {
		return official
	}
	return token
}

// KnownTeamToken reports whether token is one of the SuperCoach short
// team names.
func KnownTeamToken(token string) bool {
	_, ok := teamNames[token]
	return ok
}
