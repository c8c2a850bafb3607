package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetMatch", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteParamKey(t *testing.T) {
	tests := map[string]string{
		"competitionID": "competition_id",
		"matchID":       "match_id",
		"teamID":        "team_id",
	}
	for in, want := range tests {
		if got := routeParamKey(in); got != want {
			t.Fatalf("routeParamKey(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestTagRouteID_RecordsOnHandlerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	ctx, span := provider.Tracer("test").Start(context.Background(), "httpapi.Handler.GetMatch")
	req := httptest.NewRequest(http.MethodGet, "/v1/matches/42", nil)
	req.Pattern = "GET /v1/matches/{matchID}"
	tagRouteID(ctx, req, "matchID", 42)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected one ended span, got=%d", len(ended))
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if attrs["football.match_id"].AsInt64() != 42 {
		t.Fatalf("unexpected match id attribute: %v", attrs)
	}
	if attrs["http.route"].AsString() != "GET /v1/matches/{matchID}" {
		t.Fatalf("unexpected route attribute: %v", attrs)
	}
}

func TestStartSpan_NoParentIsNotRecording(t *testing.T) {
	_, span := startSpan(context.Background(), "httpapi.Handler.GetMatch")
	if span.IsRecording() {
		t.Fatalf("expected no span without a traced request")
	}
}
