package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/riskibarqy/football-center/external/footballdata"
	"github.com/riskibarqy/football-center/internal/platform/logging"
)

func TestFootballDataProxy_RewritesAndInjectsToken(t *testing.T) {
	var gotPath, gotQuery, gotToken, gotHost, gotCookie string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotToken = r.Header.Get(footballdata.TokenHeader)
		gotHost = r.Host
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"competitions":[]}`))
	}))
	t.Cleanup(upstream.Close)

	proxy, err := NewFootballDataProxy(upstream.URL+"/v4/", "secret-token", logging.NewNop())
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8080/api/competitions/2021/matches?status=FINISHED", nil)
	req.Header.Set("Cookie", "session=abc")
	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if gotPath != "/v4/competitions/2021/matches" {
		t.Fatalf("unexpected upstream path: %s", gotPath)
	}
	if gotQuery != "status=FINISHED" {
		t.Fatalf("unexpected upstream query: %s", gotQuery)
	}
	if gotToken != "secret-token" {
		t.Fatalf("expected injected token, got %q", gotToken)
	}
	upstreamURL, _ := url.Parse(upstream.URL)
	if gotHost != upstreamURL.Host {
		t.Fatalf("expected host %s, got %s", upstreamURL.Host, gotHost)
	}
	if gotCookie != "" {
		t.Fatalf("expected cookies to be dropped, got %q", gotCookie)
	}
}

func TestFootballDataProxy_UpstreamDownIsUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target := upstream.URL
	upstream.Close()

	proxy, err := NewFootballDataProxy(target, "secret-token", logging.NewNop())
	if err != nil {
		t.Fatalf("new proxy: %v", err)
	}

	rec := httptest.NewRecorder()
	proxy.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competitions", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestFootballDataProxy_RejectsRelativeTarget(t *testing.T) {
	if _, err := NewFootballDataProxy("/v4", "token", nil); err == nil {
		t.Fatalf("expected error for relative target")
	}
}
