package footballdata

import (
	"github.com/riskibarqy/football-center/internal/domain/competition"
	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
)

type competitionsEnvelope struct {
	Count        int                   `json:"count"`
	Competitions *[]competitionPayload `json:"competitions"`
}

type competitionPayload struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Code          string         `json:"code"`
	Type          string         `json:"type"`
	Emblem        string         `json:"emblem"`
	Area          *areaPayload   `json:"area"`
	CurrentSeason *seasonPayload `json:"currentSeason"`
}

type areaPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type seasonPayload struct {
	ID              int64  `json:"id"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CurrentMatchday *int   `json:"currentMatchday"`
}

type matchesEnvelope struct {
	Matches []matchPayload `json:"matches"`
}

type matchPayload struct {
	ID          int64                  `json:"id"`
	UTCDate     string                 `json:"utcDate"`
	Status      string                 `json:"status"`
	Matchday    *int                   `json:"matchday"`
	Stage       string                 `json:"stage"`
	Venue       string                 `json:"venue"`
	HomeTeam    *teamRefPayload        `json:"homeTeam"`
	AwayTeam    *teamRefPayload        `json:"awayTeam"`
	Score       *scorePayload          `json:"score"`
	Competition *competitionRefPayload `json:"competition"`
}

type teamRefPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type scorePayload struct {
	Winner    string            `json:"winner"`
	Duration  string            `json:"duration"`
	FullTime  *scoreLinePayload `json:"fullTime"`
	HalfTime  *scoreLinePayload `json:"halfTime"`
	ExtraTime *scoreLinePayload `json:"extraTime"`
	Penalties *scoreLinePayload `json:"penalties"`
}

type scoreLinePayload struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type competitionRefPayload struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Emblem string `json:"emblem"`
}

type teamPayload struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ShortName string          `json:"shortName"`
	TLA       string          `json:"tla"`
	Crest     string          `json:"crest"`
	Venue     string          `json:"venue"`
	Founded   *int            `json:"founded"`
	Squad     []playerPayload `json:"squad"`
}

type playerPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
}

func (p competitionPayload) toDomain() competition.Competition {
	out := competition.Competition{
		ID:     p.ID,
		Name:   p.Name,
		Code:   p.Code,
		Type:   competition.Type(p.Type),
		Emblem: p.Emblem,
	}
	if p.Area != nil {
		out.Area = &competition.Area{ID: p.Area.ID, Name: p.Area.Name, Code: p.Area.Code, Flag: p.Area.Flag}
	}
	if p.CurrentSeason != nil {
		out.CurrentSeason = &competition.Season{
			ID:              p.CurrentSeason.ID,
			StartDate:       p.CurrentSeason.StartDate,
			EndDate:         p.CurrentSeason.EndDate,
			CurrentMatchday: p.CurrentSeason.CurrentMatchday,
		}
	}
	return out
}

func (p matchPayload) toDomain() match.Match {
	out := match.Match{
		ID:       p.ID,
		UTCDate:  p.UTCDate,
		Status:   match.Status(p.Status),
		Matchday: p.Matchday,
		Stage:    p.Stage,
		Venue:    p.Venue,
		HomeTeam: p.HomeTeam.toDomain(),
		AwayTeam: p.AwayTeam.toDomain(),
	}
	if p.Score != nil {
		out.Score = &match.Score{
			Winner:    p.Score.Winner,
			Duration:  p.Score.Duration,
			FullTime:  p.Score.FullTime.toDomain(),
			HalfTime:  p.Score.HalfTime.toDomain(),
			ExtraTime: p.Score.ExtraTime.toDomain(),
			Penalties: p.Score.Penalties.toDomain(),
		}
	}
	if p.Competition != nil {
		out.Competition = &match.CompetitionRef{
			ID:     p.Competition.ID,
			Name:   p.Competition.Name,
			Code:   p.Competition.Code,
			Emblem: p.Competition.Emblem,
		}
	}
	return out
}

func (p *teamRefPayload) toDomain() match.TeamRef {
	if p == nil {
		return match.TeamRef{}
	}
	return match.TeamRef{ID: p.ID, Name: p.Name, ShortName: p.ShortName, TLA: p.TLA, Crest: p.Crest}
}

func (p *scoreLinePayload) toDomain() *match.ScoreLine {
	if p == nil {
		return nil
	}
	return &match.ScoreLine{Home: p.Home, Away: p.Away}
}

func (p teamPayload) toDomain() team.Team {
	squad := make([]team.Player, 0, len(p.Squad))
	for _, item := range p.Squad {
		squad = append(squad, team.Player{
			ID:          item.ID,
			Name:        item.Name,
			Position:    item.Position,
			DateOfBirth: item.DateOfBirth,
			Nationality: item.Nationality,
		})
	}
	return team.Team{
		ID:        p.ID,
		Name:      p.Name,
		ShortName: p.ShortName,
		TLA:       p.TLA,
		Crest:     p.Crest,
		Venue:     p.Venue,
		Founded:   p.Founded,
		Squad:     squad,
	}
}
