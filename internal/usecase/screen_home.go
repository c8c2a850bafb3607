package usecase

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/presentation"
)

// HomeScreen lists the popular competitions.
type HomeScreen struct {
	competitions *CompetitionService
	views        ViewBuilder
	logger       *logging.Logger
	state        *viewstate.Machine[HomeView]
}

func newHomeScreen(competitions *CompetitionService, views ViewBuilder, logger *logging.Logger) *HomeScreen {
	return &HomeScreen{
		competitions: competitions,
		views:        views,
		logger:       logger,
		state:        viewstate.New[HomeView](),
	}
}

// Load fetches the competition list. A payload without a competitions array
// ends in the error state with an empty list.
func (s *HomeScreen) Load(ctx context.Context) (state viewstate.State[HomeView]) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeScreen.Load")
	defer func() {
		recordScreenOutcome(span, state)
		span.End()
	}()

	ticket := s.state.Begin()
	items, err := s.competitions.ListPopular(ctx)
	if !alive(ctx) {
		return s.state.Snapshot()
	}

	catalog := s.views.Catalog()
	switch {
	case errors.Is(err, ErrUnexpectedShape):
		s.logger.WarnContext(ctx, "competitions response has unexpected shape", "error", err)
		s.state.Fail(ticket, catalog.Text(presentation.MsgUnexpectedFormat), err, s.views.HomeView(nil))
	case err != nil:
		s.logger.ErrorContext(ctx, "load competitions failed", "error", err)
		s.state.Fail(ticket, apiErrorMessage(catalog, err, presentation.MsgCompetitionsFailed), err, s.views.HomeView(nil))
	default:
		s.state.Succeed(ticket, s.views.HomeView(items))
	}
	return s.state.Snapshot()
}

// Retry re-runs the last fetch.
func (s *HomeScreen) Retry(ctx context.Context) viewstate.State[HomeView] {
	return s.Load(ctx)
}

func (s *HomeScreen) State() viewstate.State[HomeView] {
	return s.state.Snapshot()
}

// Close discards any fetch still in flight.
func (s *HomeScreen) Close() {
	s.state.Reset()
}
