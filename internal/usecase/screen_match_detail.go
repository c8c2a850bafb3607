package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/sourcegraph/conc"
)

// MatchDetailScreen shows one match with both squads.
type MatchDetailScreen struct {
	matches *MatchService
	teams   *TeamService
	views   ViewBuilder
	logger  *logging.Logger
	state   *viewstate.Machine[MatchDetailView]

	mu      sync.Mutex
	matchID int64
}

func newMatchDetailScreen(matches *MatchService, teams *TeamService, views ViewBuilder, logger *logging.Logger) *MatchDetailScreen {
	return &MatchDetailScreen{
		matches: matches,
		teams:   teams,
		views:   views,
		logger:  logger,
		state:   viewstate.New[MatchDetailView](),
	}
}

func (s *MatchDetailScreen) Open(ctx context.Context, matchID int64) viewstate.State[MatchDetailView] {
	s.mu.Lock()
	s.matchID = matchID
	s.mu.Unlock()

	return s.load(ctx)
}

func (s *MatchDetailScreen) Retry(ctx context.Context) viewstate.State[MatchDetailView] {
	return s.load(ctx)
}

func (s *MatchDetailScreen) State() viewstate.State[MatchDetailView] {
	return s.state.Snapshot()
}

func (s *MatchDetailScreen) Close() {
	s.state.Reset()
}

// load fetches the match, then both squads side by side. A squad that fails
// to load is shown empty; only the match fetch can fail the screen.
func (s *MatchDetailScreen) load(ctx context.Context) (state viewstate.State[MatchDetailView]) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDetailScreen.Load")
	defer func() {
		recordScreenOutcome(span, state)
		span.End()
	}()

	s.mu.Lock()
	matchID := s.matchID
	s.mu.Unlock()
	span.SetAttributes(attrMatchID.Int64(matchID))

	ticket := s.state.Begin()
	item, err := s.matches.Get(ctx, matchID)
	if !alive(ctx) {
		return s.state.Snapshot()
	}
	if err != nil {
		key := presentation.MsgMatchDetailFailed
		if errors.Is(err, ErrNotFound) {
			key = presentation.MsgMatchNotFound
		}
		s.logger.ErrorContext(ctx, "load match failed", "match_id", matchID, "error", err)
		s.state.Fail(ticket, s.views.Catalog().Text(key), err, MatchDetailView{})
		return s.state.Snapshot()
	}
	if !s.state.Current(ticket) {
		return s.state.Snapshot()
	}

	var homePlayers, awayPlayers []team.Player
	var wg conc.WaitGroup
	if item.HomeTeam.HasID() {
		wg.Go(func() { homePlayers = s.loadSquad(ctx, item.HomeTeam, "home") })
	}
	if item.AwayTeam.HasID() {
		wg.Go(func() { awayPlayers = s.loadSquad(ctx, item.AwayTeam, "away") })
	}
	wg.Wait()

	if !alive(ctx) {
		return s.state.Snapshot()
	}
	s.state.Succeed(ticket, s.views.MatchDetailView(item, homePlayers, awayPlayers))
	return s.state.Snapshot()
}

func (s *MatchDetailScreen) loadSquad(ctx context.Context, ref match.TeamRef, side string) []team.Player {
	players, err := s.teams.Players(ctx, ref.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "squad unavailable, showing empty roster",
			"side", side,
			"team_id", ref.ID,
			"error", err,
		)
		return nil
	}
	return players
}
