package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-center/internal/domain/competition"
	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
	competitionmock "github.com/riskibarqy/football-center/internal/mocks/domain/competition"
	matchmock "github.com/riskibarqy/football-center/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/football-center/internal/mocks/domain/team"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/riskibarqy/football-center/internal/usecase"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"
)

type browserFixture struct {
	competitions *competitionmock.Repository
	matches      *matchmock.Repository
	teams        *teammock.Repository
	screens      *usecase.Screens
}

func newBrowserFixture(t *testing.T) browserFixture {
	t.Helper()

	f := browserFixture{
		competitions: competitionmock.NewRepository(t),
		matches:      matchmock.NewRepository(t),
		teams:        teammock.NewRepository(t),
	}
	tag := language.BritishEnglish
	f.screens = usecase.NewScreens(
		usecase.NewCompetitionService(f.competitions),
		usecase.NewMatchService(f.matches),
		usecase.NewTeamService(f.teams),
		usecase.NewViewBuilder(presentation.NewCatalog(tag), presentation.NewFormatter(tag, time.UTC)),
		nil,
	)
	return f
}

func (f browserFixture) run(t *testing.T, ctx context.Context, input io.Reader) string {
	t.Helper()

	var out bytes.Buffer
	if err := NewBrowser(f.screens, input, &out, nil).Run(ctx); err != nil {
		t.Fatalf("run browser: %v", err)
	}
	return out.String()
}

func intPtr(v int) *int { return &v }

func popularListing() competition.Listing {
	return competition.Listing{
		Found: true,
		Competitions: []competition.Competition{
			{ID: 2021, Name: "Premier League", Code: "PL", Type: competition.TypeLeague,
				Area: &competition.Area{Name: "England"}},
		},
	}
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestBrowser_NavigatesDownAndBack(t *testing.T) {
	f := newBrowserFixture(t)
	// Going back reloads the page underneath.
	f.competitions.On("ListCompetitions", mock.Anything).Return(popularListing(), nil).Twice()
	f.matches.On("ListMatches", mock.Anything, int64(2021), match.ListFilter{}).Return([]match.Match{
		{ID: 10, Status: match.StatusInPlay, UTCDate: "2024-08-16T19:00:00Z",
			HomeTeam: match.TeamRef{ID: 64, Name: "Liverpool FC"},
			AwayTeam: match.TeamRef{Name: "Ipswich Town FC"},
			Score:    &match.Score{FullTime: &match.ScoreLine{Home: intPtr(1), Away: intPtr(0)}}},
		{ID: 11, Status: match.StatusScheduled, UTCDate: "2024-08-24T14:00:00Z",
			HomeTeam: match.TeamRef{Name: "Arsenal FC"}},
	}, nil).Twice()
	f.matches.On("GetMatch", mock.Anything, int64(10)).Return(match.Match{
		ID: 10, Status: match.StatusInPlay, UTCDate: "2024-08-16T19:00:00Z",
		HomeTeam: match.TeamRef{ID: 64, Name: "Liverpool FC"},
		AwayTeam: match.TeamRef{Name: "Ipswich Town FC"},
		Score:    &match.Score{FullTime: &match.ScoreLine{Home: intPtr(1), Away: intPtr(0)}},
		Matchday: intPtr(1),
		Venue:    "Anfield",
	}, nil).Once()
	f.teams.On("GetTeamPlayers", mock.Anything, int64(64)).Return([]team.Player{
		{ID: 1, Name: "Alisson", Position: "Goalkeeper", Nationality: "Brazil"},
		{ID: 2, Name: "Mohamed Salah", Position: "Right Winger", Nationality: "Egypt"},
	}, nil).Once()

	out := f.run(t, context.Background(), strings.NewReader("1\n1\nb\nb\nq\n"))

	assertContains(t, out,
		"Loading leagues...",
		"Popular Leagues (Total: 1)",
		"Premier League",
		"Loading matches...",
		"Total: 2  Live: 1  Finished: 0",
		"Live Matches (1)",
		"1 - 0",
		"Scheduled Matches (1)",
		"VS",
		"Loading match details...",
		"Liverpool FC (Home)",
		"Matchday 1",
		"Venue: Anfield",
		"Liverpool FC Squad",
		"Alisson (Brazil)",
		"Ipswich Town FC Squad",
		"No players found",
		"[number: open, b: back, q: quit] > ",
		"[b: back, q: quit] > ",
	)
}

func TestBrowser_RetryAfterFailure(t *testing.T) {
	f := newBrowserFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).
		Return(competition.Listing{}, errors.New("connection refused")).Once()
	f.competitions.On("ListCompetitions", mock.Anything).Return(popularListing(), nil).Once()

	out := f.run(t, context.Background(), strings.NewReader("x\n9\nr\nr\nq\n"))

	assertContains(t, out,
		"❌ Could not load leagues.",
		"[r: retry, b: back, q: quit] > ",
		"Unknown command: x",
		"No such row: 9",
		"Premier League",
		// r on a loaded page is not a command.
		"Unknown command: r",
	)
}

func TestBrowser_BackOnFirstPageQuits(t *testing.T) {
	f := newBrowserFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(popularListing(), nil).Once()

	out := f.run(t, context.Background(), strings.NewReader("b\n1\n"))

	if strings.Contains(out, "Loading matches...") {
		t.Fatalf("expected browser to stop after b on the first page, got:\n%s", out)
	}
}

func TestBrowser_EndOfInputStops(t *testing.T) {
	f := newBrowserFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(competition.Listing{Found: true}, nil).Once()

	out := f.run(t, context.Background(), strings.NewReader(""))

	assertContains(t, out, "No leagues found", "[b: back, q: quit] > ")
}

func TestBrowser_StopsWhenContextIsDone(t *testing.T) {
	f := newBrowserFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(popularListing(), nil).Maybe()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- NewBrowser(f.screens, reader, io.Discard, nil).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on cancel, got=%v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("browser did not stop after context cancel")
	}
}
