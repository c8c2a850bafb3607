package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-center/internal/domain/team"
)

type TeamService struct {
	repo team.Repository
}

func NewTeamService(repo team.Repository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get", attrTeamID.Int64(teamID))
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team id=%d: %w", teamID, err)
	}
	return item, nil
}

// Players returns the team's squad as listed by the provider.
func (s *TeamService) Players(ctx context.Context, teamID int64) ([]team.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Players", attrTeamID.Int64(teamID))
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	players, err := s.repo.GetTeamPlayers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team players id=%d: %w", teamID, err)
	}
	return players, nil
}
