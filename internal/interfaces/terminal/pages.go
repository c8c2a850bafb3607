package terminal

import (
	"context"

	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/riskibarqy/football-center/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type page interface {
	name() string
	loadingKey() presentation.MessageKey
	load(ctx context.Context)
	failed() bool
	selectable() bool
	// open returns the page behind a 1-based row number.
	open(row int) (page, bool)
	render(buf *bytebufferpool.ByteBuffer, catalog *presentation.Catalog)
	close()
}

type homePage struct {
	screens *usecase.Screens
	screen  *usecase.HomeScreen
	state   viewstate.State[usecase.HomeView]
}

func newHomePage(screens *usecase.Screens) *homePage {
	return &homePage{screens: screens, screen: screens.NewHome()}
}

func (p *homePage) name() string { return "home" }

func (p *homePage) loadingKey() presentation.MessageKey {
	return presentation.MsgLoadingCompetitions
}

func (p *homePage) load(ctx context.Context) {
	p.state = p.screen.Load(ctx)
}

func (p *homePage) failed() bool     { return p.state.Failed() }
func (p *homePage) selectable() bool { return len(p.state.Data.Competitions) > 0 }

func (p *homePage) open(row int) (page, bool) {
	items := p.state.Data.Competitions
	if row < 1 || row > len(items) {
		return nil, false
	}
	card := items[row-1]
	return newMatchesPage(p.screens, card.ID, card.Name), true
}

func (p *homePage) render(buf *bytebufferpool.ByteBuffer, catalog *presentation.Catalog) {
	renderHome(buf, catalog, p.state)
}

func (p *homePage) close() { p.screen.Close() }

type matchesPage struct {
	screens       *usecase.Screens
	screen        *usecase.MatchesScreen
	competitionID int64
	title         string
	state         viewstate.State[usecase.MatchesView]
	rows          []usecase.MatchCard
}

func newMatchesPage(screens *usecase.Screens, competitionID int64, title string) *matchesPage {
	return &matchesPage{
		screens:       screens,
		screen:        screens.NewMatches(),
		competitionID: competitionID,
		title:         title,
	}
}

func (p *matchesPage) name() string { return "matches" }

func (p *matchesPage) loadingKey() presentation.MessageKey {
	return presentation.MsgLoadingMatches
}

// load numbers matches across sections in display order.
func (p *matchesPage) load(ctx context.Context) {
	p.state = p.screen.Open(ctx, p.competitionID, p.title, match.ListFilter{})
	p.rows = p.rows[:0]
	for _, section := range p.state.Data.Sections {
		p.rows = append(p.rows, section.Matches...)
	}
}

func (p *matchesPage) failed() bool     { return p.state.Failed() }
func (p *matchesPage) selectable() bool { return len(p.rows) > 0 }

func (p *matchesPage) open(row int) (page, bool) {
	if row < 1 || row > len(p.rows) {
		return nil, false
	}
	return newDetailPage(p.screens, p.rows[row-1].ID), true
}

func (p *matchesPage) render(buf *bytebufferpool.ByteBuffer, catalog *presentation.Catalog) {
	renderMatches(buf, catalog, p.state)
}

func (p *matchesPage) close() { p.screen.Close() }

type detailPage struct {
	screen  *usecase.MatchDetailScreen
	matchID int64
	state   viewstate.State[usecase.MatchDetailView]
}

func newDetailPage(screens *usecase.Screens, matchID int64) *detailPage {
	return &detailPage{screen: screens.NewMatchDetail(), matchID: matchID}
}

func (p *detailPage) name() string { return "match_detail" }

func (p *detailPage) loadingKey() presentation.MessageKey {
	return presentation.MsgLoadingMatch
}

func (p *detailPage) load(ctx context.Context) {
	p.state = p.screen.Open(ctx, p.matchID)
}

func (p *detailPage) failed() bool          { return p.state.Failed() }
func (p *detailPage) selectable() bool      { return false }
func (p *detailPage) open(int) (page, bool) { return nil, false }

func (p *detailPage) render(buf *bytebufferpool.ByteBuffer, catalog *presentation.Catalog) {
	renderDetail(buf, catalog, p.state)
}

func (p *detailPage) close() { p.screen.Close() }
