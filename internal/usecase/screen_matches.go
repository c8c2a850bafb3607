package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/presentation"
)

type matchesParams struct {
	competitionID int64
	title         string
	filter        match.ListFilter
}

// MatchesScreen lists a competition's matches grouped by status.
type MatchesScreen struct {
	matches *MatchService
	views   ViewBuilder
	logger  *logging.Logger
	state   *viewstate.Machine[MatchesView]

	mu     sync.Mutex
	params matchesParams
}

func newMatchesScreen(matches *MatchService, views ViewBuilder, logger *logging.Logger) *MatchesScreen {
	return &MatchesScreen{
		matches: matches,
		views:   views,
		logger:  logger,
		state:   viewstate.New[MatchesView](),
	}
}

// Open points the screen at a competition and loads it. Calling Open again
// with other parameters supersedes the earlier fetch.
func (s *MatchesScreen) Open(ctx context.Context, competitionID int64, title string, filter match.ListFilter) viewstate.State[MatchesView] {
	s.mu.Lock()
	s.params = matchesParams{competitionID: competitionID, title: title, filter: filter}
	s.mu.Unlock()

	return s.Load(ctx)
}

func (s *MatchesScreen) Load(ctx context.Context) (state viewstate.State[MatchesView]) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchesScreen.Load")
	defer func() {
		recordScreenOutcome(span, state)
		span.End()
	}()

	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	span.SetAttributes(attrCompetitionID.Int64(params.competitionID))

	ticket := s.state.Begin()
	buckets, err := s.matches.ListByCompetition(ctx, params.competitionID, params.filter)
	if !alive(ctx) {
		return s.state.Snapshot()
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "load matches failed", "competition_id", params.competitionID, "error", err)
		s.state.Fail(ticket, s.views.Catalog().Text(presentation.MsgMatchesFailed), err, MatchesView{})
		return s.state.Snapshot()
	}

	s.state.Succeed(ticket, s.views.MatchesView(params.competitionID, params.title, buckets))
	return s.state.Snapshot()
}

func (s *MatchesScreen) Retry(ctx context.Context) viewstate.State[MatchesView] {
	return s.Load(ctx)
}

func (s *MatchesScreen) State() viewstate.State[MatchesView] {
	return s.state.Snapshot()
}

func (s *MatchesScreen) Close() {
	s.state.Reset()
}
