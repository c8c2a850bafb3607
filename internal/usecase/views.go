package usecase

import (
	"fmt"
	"strconv"

	"github.com/riskibarqy/football-center/internal/domain/competition"
	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
	"github.com/riskibarqy/football-center/internal/presentation"
)

type CompetitionCard struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Icon      string `json:"icon"`
	Area      string `json:"area,omitempty"`
	TypeLabel string `json:"typeLabel"`
	Season    string `json:"season,omitempty"`
	Emblem    string `json:"emblem,omitempty"`
}

type HomeView struct {
	Title        string            `json:"title"`
	Competitions []CompetitionCard `json:"competitions"`
	Total        int               `json:"total"`
	EmptyText    string            `json:"emptyText,omitempty"`
}

type MatchCard struct {
	ID        int64                   `json:"id"`
	Date      string                  `json:"date"`
	Time      string                  `json:"time"`
	Status    presentation.StatusInfo `json:"status"`
	Live      bool                    `json:"live"`
	HomeTeam  string                  `json:"homeTeam"`
	AwayTeam  string                  `json:"awayTeam"`
	HomeScore *int                    `json:"homeScore,omitempty"`
	AwayScore *int                    `json:"awayScore,omitempty"`
	Matchday  string                  `json:"matchday,omitempty"`
}

type MatchSection struct {
	Bucket  match.Bucket `json:"bucket"`
	Icon    string       `json:"icon"`
	Title   string       `json:"title"`
	Count   int          `json:"count"`
	Matches []MatchCard  `json:"matches"`
}

type MatchesView struct {
	CompetitionID int64          `json:"competitionId"`
	Title         string         `json:"title"`
	Total         int            `json:"total"`
	LiveCount     int            `json:"liveCount"`
	FinishedCount int            `json:"finishedCount"`
	Sections      []MatchSection `json:"sections"`
	EmptyText     string         `json:"emptyText,omitempty"`
}

type TeamSide struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Side string `json:"side"`
	Icon string `json:"icon"`
}

type ScoreView struct {
	Shown bool   `json:"shown"`
	Home  *int   `json:"home,omitempty"`
	Away  *int   `json:"away,omitempty"`
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

type ScoreDetailRow struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type PlayerCard struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Nationality string `json:"nationality,omitempty"`
}

type RosterGroup struct {
	Group   team.PositionGroup `json:"group"`
	Label   string             `json:"label"`
	Players []PlayerCard       `json:"players"`
}

type RosterView struct {
	Title     string        `json:"title"`
	Groups    []RosterGroup `json:"groups"`
	EmptyText string        `json:"emptyText,omitempty"`
}

func (r RosterView) Empty() bool {
	return len(r.Groups) == 0
}

type MatchDetailView struct {
	ID           int64                   `json:"id"`
	Competition  string                  `json:"competition,omitempty"`
	Status       presentation.StatusInfo `json:"status"`
	Live         bool                    `json:"live"`
	Date         string                  `json:"date"`
	Time         string                  `json:"time"`
	HomeTeam     TeamSide                `json:"homeTeam"`
	AwayTeam     TeamSide                `json:"awayTeam"`
	Score        ScoreView               `json:"score"`
	ScoreDetails []ScoreDetailRow        `json:"scoreDetails,omitempty"`
	Matchday     string                  `json:"matchday,omitempty"`
	Venue        string                  `json:"venue,omitempty"`
	HomeRoster   RosterView              `json:"homeRoster"`
	AwayRoster   RosterView              `json:"awayRoster"`
}

type TeamView struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	ShortName string        `json:"shortName,omitempty"`
	TLA       string        `json:"tla,omitempty"`
	Crest     string        `json:"crest,omitempty"`
	Venue     string        `json:"venue,omitempty"`
	Founded   *int          `json:"founded,omitempty"`
	Squad     int           `json:"squadSize"`
	Groups    []RosterGroup `json:"groups"`
	EmptyText string        `json:"emptyText,omitempty"`
}

// ViewBuilder turns domain values into localized views.
type ViewBuilder struct {
	catalog   *presentation.Catalog
	formatter *presentation.Formatter
}

func NewViewBuilder(catalog *presentation.Catalog, formatter *presentation.Formatter) ViewBuilder {
	return ViewBuilder{catalog: catalog, formatter: formatter}
}

func (b ViewBuilder) Catalog() *presentation.Catalog {
	return b.catalog
}

func (b ViewBuilder) CompetitionCard(item competition.Competition) CompetitionCard {
	card := CompetitionCard{
		ID:        item.ID,
		Name:      item.Name,
		Code:      item.Code,
		Icon:      presentation.LeagueIcon(item.Code),
		Area:      item.AreaName(),
		TypeLabel: b.catalog.TypeLabel(string(item.Type)),
		Emblem:    item.Emblem,
	}
	if item.CurrentSeason != nil {
		card.Season = item.CurrentSeason.StartYear() + " - " + item.CurrentSeason.EndYear()
	}
	return card
}

func (b ViewBuilder) HomeView(items []competition.Competition) HomeView {
	cards := make([]CompetitionCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, b.CompetitionCard(item))
	}
	view := HomeView{
		Title:        b.catalog.Text(presentation.MsgPopularCompetitions),
		Competitions: cards,
		Total:        len(cards),
	}
	if len(cards) == 0 {
		view.EmptyText = b.catalog.Text(presentation.MsgNoCompetitions)
	}
	return view
}

func (b ViewBuilder) MatchCard(item match.Match) MatchCard {
	card := MatchCard{
		ID:       item.ID,
		Date:     b.formatter.Date(item.UTCDate),
		Time:     b.formatter.Time(item.UTCDate),
		Status:   b.catalog.StatusInfo(item.Status),
		Live:     item.Status.IsLive(),
		HomeTeam: b.catalog.TeamName(item.HomeTeam.Name),
		AwayTeam: b.catalog.TeamName(item.AwayTeam.Name),
	}
	if home, away, ok := item.FullTimeScore(); ok {
		card.HomeScore = &home
		if item.Score.FullTime.Away != nil {
			card.AwayScore = &away
		}
	}
	if item.Matchday != nil {
		card.Matchday = b.catalog.Matchday(*item.Matchday)
	}
	return card
}

func (b ViewBuilder) MatchesView(competitionID int64, title string, buckets match.Buckets) MatchesView {
	view := MatchesView{
		CompetitionID: competitionID,
		Title:         title,
		Total:         buckets.Total(),
		LiveCount:     len(buckets.Live),
		FinishedCount: len(buckets.Finished),
		Sections:      make([]MatchSection, 0, len(match.DisplayOrder)),
	}
	for _, section := range buckets.Sections() {
		icon, sectionTitle := b.catalog.SectionTitle(section.Bucket)
		cards := make([]MatchCard, 0, len(section.Matches))
		for _, item := range section.Matches {
			cards = append(cards, b.MatchCard(item))
		}
		view.Sections = append(view.Sections, MatchSection{
			Bucket:  section.Bucket,
			Icon:    icon,
			Title:   sectionTitle,
			Count:   len(cards),
			Matches: cards,
		})
	}
	if view.Total == 0 {
		view.EmptyText = b.catalog.Text(presentation.MsgNoMatches)
	}
	return view
}

func (b ViewBuilder) RosterGroups(groups []team.PositionBucket) []RosterGroup {
	out := make([]RosterGroup, 0, len(groups))
	for _, group := range groups {
		players := make([]PlayerCard, 0, len(group.Players))
		for _, p := range group.Players {
			players = append(players, PlayerCard{
				ID:          p.ID,
				Name:        p.Name,
				Icon:        presentation.PositionIcon(p.Position),
				Nationality: p.Nationality,
			})
		}
		out = append(out, RosterGroup{
			Group:   group.Group,
			Label:   b.catalog.GroupLabel(group.Group),
			Players: players,
		})
	}
	return out
}

// RosterView renders a squad section; an empty squad shows the no-players text.
func (b ViewBuilder) RosterView(teamName string, players []team.Player) RosterView {
	view := RosterView{
		Title:  b.catalog.Text(presentation.MsgSquadTitle, teamName),
		Groups: b.RosterGroups(team.GroupByPosition(players)),
	}
	if view.Empty() {
		view.EmptyText = b.catalog.Text(presentation.MsgNoPlayers)
	}
	return view
}

func (b ViewBuilder) TeamView(item team.Team) TeamView {
	view := TeamView{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		TLA:       item.TLA,
		Crest:     item.Crest,
		Venue:     item.Venue,
		Founded:   item.Founded,
		Squad:     len(item.Squad),
		Groups:    b.RosterGroups(team.GroupByPosition(item.Squad)),
	}
	if len(view.Groups) == 0 {
		view.EmptyText = b.catalog.Text(presentation.MsgNoPlayers)
	}
	return view
}

func (b ViewBuilder) MatchDetailView(item match.Match, homePlayers, awayPlayers []team.Player) MatchDetailView {
	homeName := b.catalog.TeamName(item.HomeTeam.Name)
	awayName := b.catalog.TeamName(item.AwayTeam.Name)

	view := MatchDetailView{
		ID:     item.ID,
		Status: b.catalog.StatusInfo(item.Status),
		Live:   item.Status.IsLive(),
		Date:   b.formatter.LongDate(item.UTCDate),
		Time:   b.formatter.Time(item.UTCDate),
		HomeTeam: TeamSide{
			ID:   item.HomeTeam.ID,
			Name: homeName,
			Side: b.catalog.Text(presentation.MsgHomeSide),
			Icon: presentation.HomeIcon,
		},
		AwayTeam: TeamSide{
			ID:   item.AwayTeam.ID,
			Name: awayName,
			Side: b.catalog.Text(presentation.MsgAwaySide),
			Icon: presentation.AwayIcon,
		},
		Score:        b.scoreView(item),
		ScoreDetails: b.scoreDetails(item.Score),
		Venue:        item.Venue,
	}
	if item.Competition != nil {
		view.Competition = item.Competition.Name
	}
	if item.Matchday != nil {
		view.Matchday = b.catalog.Matchday(*item.Matchday)
	}

	// Unknown teams keep the side label as the roster title.
	homeTitle, awayTitle := item.HomeTeam.Name, item.AwayTeam.Name
	if homeTitle == "" {
		homeTitle = view.HomeTeam.Side
	}
	if awayTitle == "" {
		awayTitle = view.AwayTeam.Side
	}
	view.HomeRoster = b.RosterView(homeTitle, homePlayers)
	view.AwayRoster = b.RosterView(awayTitle, awayPlayers)
	return view
}

func (b ViewBuilder) scoreView(item match.Match) ScoreView {
	home, away, ok := item.FullTimeScore()
	if !ok {
		return ScoreView{Text: b.catalog.Text(presentation.MsgVersus)}
	}
	out := ScoreView{
		Shown: true,
		Home:  &home,
		Text:  formatScoreLine(item.Score.FullTime),
		Label: b.catalog.Text(presentation.MsgScoreFullTime),
	}
	if item.Score.FullTime.Away != nil {
		out.Away = &away
	}
	return out
}

// scoreDetails lists the score lines that carry a value. The section only
// exists when something beyond the full-time result is known.
func (b ViewBuilder) scoreDetails(score *match.Score) []ScoreDetailRow {
	if score == nil {
		return nil
	}
	if !score.HalfTime.Present() && !score.ExtraTime.Present() && !score.Penalties.Present() {
		return nil
	}

	lines := []struct {
		icon string
		key  presentation.MessageKey
		line *match.ScoreLine
	}{
		{"⏱️", presentation.MsgScoreHalfTime, score.HalfTime},
		{"⚽", presentation.MsgScoreFullTime, score.FullTime},
		{"⏰", presentation.MsgScoreExtraTime, score.ExtraTime},
		{"🥅", presentation.MsgScorePenalties, score.Penalties},
	}

	out := make([]ScoreDetailRow, 0, len(lines))
	for _, l := range lines {
		if !l.line.Present() {
			continue
		}
		out = append(out, ScoreDetailRow{
			Icon:  l.icon,
			Label: b.catalog.Text(l.key),
			Value: formatScoreLine(l.line),
		})
	}
	return out
}

func formatScoreLine(line *match.ScoreLine) string {
	return fmt.Sprintf("%s - %s", scoreValue(line.Home), scoreValue(line.Away))
}

func scoreValue(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
