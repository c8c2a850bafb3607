package terminal

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/presentation"
	"github.com/riskibarqy/football-center/internal/usecase"
)

const rule = "────────────────────────────────────────"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// renderFailure prints the error banner. It reports whether the page
// stopped there.
func renderFailure[T any](w io.Writer, state viewstate.State[T]) bool {
	if !state.Failed() {
		return false
	}
	fmt.Fprintf(w, "\n❌ %s\n\n", state.Message)
	return true
}

func renderHome(w io.Writer, catalog *presentation.Catalog, state viewstate.State[usecase.HomeView]) {
	fmt.Fprintf(w, "\n⚽ %s\n%s\n", catalog.Text(presentation.MsgAppTitle), rule)
	if renderFailure(w, state) {
		return
	}

	view := state.Data
	fmt.Fprintf(w, "%s (%s: %d)\n\n", view.Title, catalog.Text(presentation.MsgTotal), view.Total)
	if view.EmptyText != "" {
		fmt.Fprintf(w, "%s\n\n", view.EmptyText)
		return
	}

	tw := newTable(w)
	for i, card := range view.Competitions {
		fmt.Fprintf(tw, "%3d\t%s %s\t%s\t%s\t%s\n", i+1, card.Icon, card.Name, card.Area, card.TypeLabel, card.Season)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
}

func renderMatches(w io.Writer, catalog *presentation.Catalog, state viewstate.State[usecase.MatchesView]) {
	view := state.Data
	fmt.Fprintf(w, "\n%s\n%s\n", view.Title, rule)
	if renderFailure(w, state) {
		return
	}

	fmt.Fprintf(w, "%s: %d  %s: %d  %s: %d\n",
		catalog.Text(presentation.MsgTotal), view.Total,
		catalog.Text(presentation.MsgLive), view.LiveCount,
		catalog.Text(presentation.MsgFinished), view.FinishedCount,
	)
	if view.EmptyText != "" {
		fmt.Fprintf(w, "\n%s\n\n", view.EmptyText)
		return
	}

	row := 0
	for _, section := range view.Sections {
		fmt.Fprintf(w, "\n%s %s (%d)\n", section.Icon, section.Title, section.Count)
		tw := newTable(w)
		for _, card := range section.Matches {
			row++
			fmt.Fprintf(tw, "%3d\t%s\t%s\t%s\t%s\t%s\t%s %s\t%s\n",
				row, card.Date, card.Time,
				card.HomeTeam, cardScore(catalog, card), card.AwayTeam,
				card.Status.Icon, card.Status.Label, card.Matchday,
			)
		}
		_ = tw.Flush()
	}
	fmt.Fprintln(w)
}

func renderDetail(w io.Writer, catalog *presentation.Catalog, state viewstate.State[usecase.MatchDetailView]) {
	view := state.Data
	fmt.Fprintf(w, "\n%s\n", rule)
	if renderFailure(w, state) {
		return
	}

	if view.Competition != "" {
		fmt.Fprintf(w, "%s\n", view.Competition)
	}
	fmt.Fprintf(w, "%s %s\n", view.Status.Icon, view.Status.Label)
	fmt.Fprintf(w, "%s  %s\n\n", view.Date, view.Time)

	fmt.Fprintf(w, "%s %s (%s)\n", view.HomeTeam.Icon, view.HomeTeam.Name, view.HomeTeam.Side)
	fmt.Fprintf(w, "    %s", view.Score.Text)
	if view.Score.Label != "" {
		fmt.Fprintf(w, "  %s", view.Score.Label)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s (%s)\n", view.AwayTeam.Icon, view.AwayTeam.Name, view.AwayTeam.Side)

	if len(view.ScoreDetails) > 0 {
		fmt.Fprintf(w, "\n%s\n", catalog.Text(presentation.MsgScoreDetails))
		tw := newTable(w)
		for _, detail := range view.ScoreDetails {
			fmt.Fprintf(tw, "  %s %s\t%s\n", detail.Icon, detail.Label, detail.Value)
		}
		_ = tw.Flush()
	}

	if view.Matchday != "" || view.Venue != "" {
		fmt.Fprintln(w)
	}
	if view.Matchday != "" {
		fmt.Fprintf(w, "%s\n", view.Matchday)
	}
	if view.Venue != "" {
		fmt.Fprintf(w, "%s: %s\n", catalog.Text(presentation.MsgVenue), view.Venue)
	}

	renderRoster(w, view.HomeRoster)
	renderRoster(w, view.AwayRoster)
	fmt.Fprintln(w)
}

func renderRoster(w io.Writer, roster usecase.RosterView) {
	fmt.Fprintf(w, "\n%s\n", roster.Title)
	if roster.Empty() {
		fmt.Fprintf(w, "  %s\n", roster.EmptyText)
		return
	}
	for _, group := range roster.Groups {
		fmt.Fprintf(w, "  %s (%d)\n", group.Label, len(group.Players))
		for _, p := range group.Players {
			if p.Nationality != "" {
				fmt.Fprintf(w, "    %s %s (%s)\n", p.Icon, p.Name, p.Nationality)
				continue
			}
			fmt.Fprintf(w, "    %s %s\n", p.Icon, p.Name)
		}
	}
}

func cardScore(catalog *presentation.Catalog, card usecase.MatchCard) string {
	if card.HomeScore == nil {
		return catalog.Text(presentation.MsgVersus)
	}
	away := "-"
	if card.AwayScore != nil {
		away = strconv.Itoa(*card.AwayScore)
	}
	return strconv.Itoa(*card.HomeScore) + " - " + away
}
