package roster

// PlayerRecord is one row of the player_details reference table: a
// player/season pairing with the club the player was listed at that
// year. The same (first name, surname, team) may appear across many
// seasons.
type PlayerRecord struct {
	ID        int64
	FirstName string
	Surname   string
	Team      string
	Season    int
}

// Match identifies the canonical record a scraped name resolved to.
type Match struct {
	PlayerID int64
	Season   int
}

// Term is one name comparison in a lookup. Equality is always
// case-insensitive; Contains switches to case-insensitive substring
// matching instead.
type Term struct {
	Value    string
	Contains bool
}

func Exact(value string) Term {
	return Term{Value: value}
}

func Partial(value string) Term {
	return Term{Value: value, Contains: true}
}

// NameQuery is a full-name lookup: first name and surname terms plus
// an exact team constraint.
type NameQuery struct {
	FirstName Term
	Surname   Term
	Team      string
}
