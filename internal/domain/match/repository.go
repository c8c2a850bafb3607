package match

import "context"

// Repository describes match reads needed by use cases.
type Repository interface {
	ListMatches(ctx context.Context, competitionID int64, filter ListFilter) ([]Match, error)
	GetMatch(ctx context.Context, matchID int64) (Match, error)
}
