package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/v4/",
		Token:      "secret-token",
	})
}

func TestListCompetitions_SendsTokenAndMapsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v4/competitions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get(TokenHeader); got != "secret-token" {
			t.Errorf("unexpected token header: %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected accept header: %q", got)
		}
		_, _ = w.Write([]byte(`{"count":2,"competitions":[
			{"id":2021,"name":"Premier League","code":"PL","type":"LEAGUE","area":{"id":2072,"name":"England"},"currentSeason":{"startDate":"2024-08-16","endDate":"2025-05-25","currentMatchday":12}},
			{"id":2001,"name":"UEFA Champions League","code":"CL","type":"CUP"}
		]}`))
	})

	listing, err := client.ListCompetitions(context.Background())
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if !listing.Found || len(listing.Competitions) != 2 {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	pl := listing.Competitions[0]
	if pl.ID != 2021 || pl.Code != "PL" || pl.AreaName() != "England" {
		t.Fatalf("unexpected competition: %+v", pl)
	}
	if pl.CurrentSeason == nil || pl.CurrentSeason.StartYear() != "2024" || *pl.CurrentSeason.CurrentMatchday != 12 {
		t.Fatalf("unexpected season: %+v", pl.CurrentSeason)
	}
	if cl := listing.Competitions[1]; cl.Area != nil || cl.CurrentSeason != nil {
		t.Fatalf("expected absent area and season to stay nil: %+v", cl)
	}
}

func TestListCompetitions_MissingArrayIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"weird"}`))
	})

	listing, err := client.ListCompetitions(context.Background())
	if err != nil {
		t.Fatalf("expected no error for shape problem, got=%v", err)
	}
	if listing.Found {
		t.Fatalf("expected Found=false when competitions array is absent")
	}
	if listing.Competitions == nil || len(listing.Competitions) != 0 {
		t.Fatalf("expected empty competitions, got=%v", listing.Competitions)
	}
}

func TestListCompetitions_EmptyArrayIsFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count":0,"competitions":[]}`))
	})

	listing, err := client.ListCompetitions(context.Background())
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if !listing.Found || len(listing.Competitions) != 0 {
		t.Fatalf("expected found empty listing, got=%+v", listing)
	}
}

func TestListMatches_ForwardsFiltersAsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/competitions/2021/matches" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("dateFrom") != "2024-08-01" || q.Get("dateTo") != "2024-08-31" || q.Get("status") != "FINISHED" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		// Out-of-range rows must still come back untouched.
		_, _ = w.Write([]byte(`{"matches":[
			{"id":1,"utcDate":"2024-09-20T19:00:00Z","status":"FINISHED","matchday":5,"venue":"Anfield",
			 "homeTeam":{"id":64,"name":"Liverpool FC"},"awayTeam":{"id":65,"name":"Manchester City FC"},
			 "score":{"winner":"HOME_TEAM","fullTime":{"home":2,"away":1},"halfTime":{"home":null,"away":null}}},
			{"id":2,"utcDate":"2024-08-10T19:00:00Z","status":"SCHEDULED","homeTeam":{"id":null,"name":null},"awayTeam":{"id":66,"name":"Manchester United FC"},
			 "score":{"fullTime":{"home":null,"away":null}}}
		]}`))
	})

	items, err := client.ListMatches(context.Background(), 2021, match.ListFilter{
		DateFrom: "2024-08-01",
		DateTo:   "2024-08-31",
		Status:   match.StatusFinished,
	})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected provider rows untouched, got=%d", len(items))
	}

	if home, away, ok := items[0].FullTimeScore(); !ok || home != 2 || away != 1 {
		t.Fatalf("unexpected full-time score: %d-%d ok=%v", home, away, ok)
	}
	if items[0].Score.HalfTime.Present() {
		t.Fatalf("null half-time values must not be present")
	}
	if _, _, ok := items[1].FullTimeScore(); ok {
		t.Fatalf("null full-time score must not read as 0-0")
	}
	if items[1].HomeTeam.HasID() {
		t.Fatalf("expected undecided home team to have no id")
	}
}

func TestListMatches_OmitsEmptyFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got=%q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{}`))
	})

	items, err := client.ListMatches(context.Background(), 2021, match.ListFilter{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil matches, got=%v", items)
	}
}

func TestGetTeamPlayers_ReturnsSquad(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/teams/64" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":64,"name":"Liverpool FC","squad":[
			{"id":1,"name":"Alisson","position":"Goalkeeper","nationality":"Brazil"},
			{"id":2,"name":"Virgil van Dijk","position":"Defence","nationality":"Netherlands"}
		]}`))
	})

	players, err := client.GetTeamPlayers(context.Background(), 64)
	if err != nil {
		t.Fatalf("get team players: %v", err)
	}
	if len(players) != 2 || players[1].Position != "Defence" {
		t.Fatalf("unexpected squad: %+v", players)
	}
}

func TestGetTeam_MissingSquadIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":64,"name":"Liverpool FC"}`))
	})

	item, err := client.GetTeam(context.Background(), 64)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if item.Squad == nil || len(item.Squad) != 0 {
		t.Fatalf("expected empty squad, got=%v", item.Squad)
	}
}

func TestGetMatch_NotFoundIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The resource you are looking for does not exist."}`))
	})

	_, err := client.GetMatch(context.Background(), 999)
	if err == nil {
		t.Fatalf("expected error")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got=%T", err)
	}
	if transportErr.StatusLine() != "404 - Not Found" {
		t.Fatalf("unexpected status line: %q", transportErr.StatusLine())
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestTransportError_StatusMapping(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, usecase.ErrInvalidInput},
		{http.StatusUnauthorized, usecase.ErrUnauthorized},
		{http.StatusForbidden, usecase.ErrUnauthorized},
		{http.StatusNotFound, usecase.ErrNotFound},
		{http.StatusTooManyRequests, usecase.ErrDependencyUnavailable},
		{http.StatusInternalServerError, usecase.ErrDependencyUnavailable},
		{0, usecase.ErrDependencyUnavailable},
	}

	for _, tt := range tests {
		err := &TransportError{StatusCode: tt.code, Status: http.StatusText(tt.code), Err: errors.New("x")}
		if !errors.Is(err, tt.want) {
			t.Fatalf("status=%d: expected %v", tt.code, tt.want)
		}
	}
}

func TestTransportError_NetworkFailureRedactsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(ClientConfig{BaseURL: baseURL + "/secret-token", Token: "secret-token", Timeout: time.Second})
	_, err := client.ListCompetitions(context.Background())
	if err == nil {
		t.Fatalf("expected network error")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.StatusCode != 0 || transportErr.StatusLine() != "" {
		t.Fatalf("expected status-less TransportError, got=%v", err)
	}
	if strings.Contains(err.Error(), "secret-token") {
		t.Fatalf("token leaked into error: %v", err)
	}
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
}

func TestDoJSON_MalformedPayloadIsShapeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.GetCompetition(context.Background(), 2021)
	if !errors.Is(err, usecase.ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got=%v", err)
	}
}

func TestDoJSON_CoalescesConcurrentRequests(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"id":64,"name":"Liverpool FC","squad":[]}`))
	})

	const workers = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			if _, err := client.GetTeam(context.Background(), 64); err != nil {
				t.Errorf("get team: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected one upstream request, got=%d", got)
	}
}


func TestDoJSON_CancelledCallerDoesNotFailSharedRequest(t *testing.T) {
	var hits int32
	received := make(chan struct{}, 1)
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		received <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"competitions":[{"id":2021,"name":"Premier League","code":"PL"}]}`))
	})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.ListCompetitions(firstCtx)
		firstErr <- err
	}()
	<-received

	type result struct {
		count int
		err   error
	}
	second := make(chan result, 1)
	go func() {
		listing, err := client.ListCompetitions(context.Background())
		second <- result{count: len(listing.Competitions), err: err}
	}()
	// Let the second caller join the in-flight request.
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to get context.Canceled, got=%v", err)
	}

	close(release)
	got := <-second
	if got.err != nil {
		t.Fatalf("expected live caller to get the shared result, got=%v", got.err)
	}
	if got.count != 1 {
		t.Fatalf("unexpected competitions: %d", got.count)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected one upstream request, got=%d", n)
	}
}

func TestGetMatch_KeepsRawStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"status":"Awarded","homeTeam":{"id":1,"name":"A"},"awayTeam":{"id":2,"name":"B"}}`))
	})

	item, err := client.GetMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if item.Status != "Awarded" {
		t.Fatalf("expected provider status to be kept as sent, got=%q", item.Status)
	}
}
