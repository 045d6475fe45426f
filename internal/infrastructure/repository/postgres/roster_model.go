package postgres

type rosterMatchModel struct {
	ID     int64 `db:"id"`
	Season int   `db:"season"`
}
