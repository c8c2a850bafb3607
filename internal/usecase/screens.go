package usecase

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/presentation"
)

// Screens builds screen controllers that share services and display settings.
type Screens struct {
	competitions *CompetitionService
	matches      *MatchService
	teams        *TeamService
	views        ViewBuilder
	logger       *logging.Logger
}

func NewScreens(
	competitions *CompetitionService,
	matches *MatchService,
	teams *TeamService,
	views ViewBuilder,
	logger *logging.Logger,
) *Screens {
	if logger == nil {
		logger = logging.Default()
	}
	return &Screens{
		competitions: competitions,
		matches:      matches,
		teams:        teams,
		views:        views,
		logger:       logger,
	}
}

func (s *Screens) Views() ViewBuilder {
	return s.views
}

func (s *Screens) Competitions() *CompetitionService {
	return s.competitions
}

func (s *Screens) Teams() *TeamService {
	return s.teams
}

func (s *Screens) NewHome() *HomeScreen {
	return newHomeScreen(s.competitions, s.views, s.logger.Named("home"))
}

func (s *Screens) NewMatches() *MatchesScreen {
	return newMatchesScreen(s.matches, s.views, s.logger.Named("matches"))
}

func (s *Screens) NewMatchDetail() *MatchDetailScreen {
	return newMatchDetailScreen(s.matches, s.teams, s.views, s.logger.Named("match_detail"))
}

type statusLiner interface {
	StatusLine() string
}

// apiErrorMessage is "API error: <status line>" when the provider answered,
// fallback otherwise.
func apiErrorMessage(catalog *presentation.Catalog, err error, fallback presentation.MessageKey) string {
	var liner statusLiner
	if errors.As(err, &liner) {
		if line := liner.StatusLine(); line != "" {
			return catalog.Text(presentation.MsgAPIError, line)
		}
	}
	return catalog.Text(fallback)
}

// alive is false once ctx is cancelled; results fetched under a dead
// context are dropped like stale ones.
func alive(ctx context.Context) bool {
	return ctx.Err() == nil
}
