package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/football-center/internal/domain/match"
)

const filterDateLayout = "2006-01-02"

type MatchService struct {
	repo match.Repository
}

func NewMatchService(repo match.Repository) *MatchService {
	return &MatchService{repo: repo}
}

// ListByCompetition returns the competition's matches grouped by status.
func (s *MatchService) ListByCompetition(ctx context.Context, competitionID int64, filter match.ListFilter) (match.Buckets, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByCompetition", attrCompetitionID.Int64(competitionID))
	defer span.End()

	if competitionID <= 0 {
		return match.Buckets{}, fmt.Errorf("%w: competition id must be positive", ErrInvalidInput)
	}
	filter, err := normalizeListFilter(filter)
	if err != nil {
		return match.Buckets{}, err
	}

	items, err := s.repo.ListMatches(ctx, competitionID, filter)
	if err != nil {
		return match.Buckets{}, fmt.Errorf("list matches competition_id=%d: %w", competitionID, err)
	}
	return match.BucketByStatus(items), nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get", attrMatchID.Int64(matchID))
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	item, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match id=%d: %w", matchID, err)
	}
	return item, nil
}

func normalizeListFilter(filter match.ListFilter) (match.ListFilter, error) {
	filter.DateFrom = strings.TrimSpace(filter.DateFrom)
	filter.DateTo = strings.TrimSpace(filter.DateTo)
	filter.Status = match.NormalizeStatus(string(filter.Status))

	var from, to time.Time
	var err error
	if filter.DateFrom != "" {
		if from, err = time.Parse(filterDateLayout, filter.DateFrom); err != nil {
			return match.ListFilter{}, fmt.Errorf("%w: dateFrom must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if filter.DateTo != "" {
		if to, err = time.Parse(filterDateLayout, filter.DateTo); err != nil {
			return match.ListFilter{}, fmt.Errorf("%w: dateTo must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return match.ListFilter{}, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}
	if filter.Status != "" && !slices.Contains(match.FilterStatuses, filter.Status) {
		return match.ListFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
	}

	return filter, nil
}
