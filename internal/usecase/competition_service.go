package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-center/internal/domain/competition"
	"go.opentelemetry.io/otel/attribute"
)

type CompetitionService struct {
	repo competition.Repository
}

func NewCompetitionService(repo competition.Repository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

// ListPopular returns the allow-listed competitions, or the first entries of
// the full list when none match. A payload without a competitions array is
// reported as ErrUnexpectedShape.
func (s *CompetitionService) ListPopular(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListPopular")
	defer span.End()

	listing, err := s.repo.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	if !listing.Found {
		return []competition.Competition{}, fmt.Errorf("%w: competitions array is missing", ErrUnexpectedShape)
	}

	items := competition.FilterPopular(listing.Competitions)
	span.SetAttributes(
		attribute.Int("competitions.source", len(listing.Competitions)),
		attribute.Int("competitions.shown", len(items)),
	)
	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID int64) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get", attrCompetitionID.Int64(competitionID))
	defer span.End()

	if competitionID <= 0 {
		return competition.Competition{}, fmt.Errorf("%w: competition id must be positive", ErrInvalidInput)
	}

	item, err := s.repo.GetCompetition(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition id=%d: %w", competitionID, err)
	}
	return item, nil
}
