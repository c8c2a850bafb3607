package team

import "context"

// Repository describes team reads needed by use cases.
type Repository interface {
	GetTeam(ctx context.Context, teamID int64) (Team, error)
	GetTeamPlayers(ctx context.Context, teamID int64) ([]Player, error)
}
