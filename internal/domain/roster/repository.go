package roster

import "context"

// Repository describes the read-only reference-dataset lookups the
// resolver needs. Implementations return ok=false when no row matches;
// errors are reserved for query-channel failures. When more than one
// row satisfies a query, the highest season wins.
type Repository interface {
	FindByName(ctx context.Context, q NameQuery) (Match, bool, error)
	FindByFirstName(ctx context.Context, firstName, team string) (Match, bool, error)
}
