package competition

import "context"

// Repository describes competition reads needed by use cases.
type Repository interface {
	ListCompetitions(ctx context.Context) (Listing, error)
	GetCompetition(ctx context.Context, competitionID int64) (Competition, error)
}
