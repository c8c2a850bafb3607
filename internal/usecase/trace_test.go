package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func endedScreenSpan(t *testing.T, state viewstate.State[HomeView]) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "usecase.HomeScreen.Load")
	recordScreenOutcome(span, state)
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected one ended span, got=%d", len(ended))
	}
	return ended[0]
}

func phaseAttribute(span sdktrace.ReadOnlySpan) string {
	for _, kv := range span.Attributes() {
		if kv.Key == attrScreenPhase {
			return kv.Value.AsString()
		}
	}
	return ""
}

func TestRecordScreenOutcome(t *testing.T) {
	tests := []struct {
		name       string
		state      viewstate.State[HomeView]
		wantPhase  string
		wantStatus codes.Code
		wantEvents int
	}{
		{
			name:       "success",
			state:      viewstate.State[HomeView]{Phase: viewstate.PhaseSuccess},
			wantPhase:  "success",
			wantStatus: codes.Unset,
		},
		{
			name: "upstream failure",
			state: viewstate.State[HomeView]{
				Phase:   viewstate.PhaseError,
				Message: "Could not load leagues.",
				Err:     fmt.Errorf("list competitions: %w", ErrDependencyUnavailable),
			},
			wantPhase:  "error",
			wantStatus: codes.Error,
			wantEvents: 1,
		},
		{
			name: "not found stays unset",
			state: viewstate.State[HomeView]{
				Phase:   viewstate.PhaseError,
				Message: "Match not found",
				Err:     fmt.Errorf("get match id=9: %w", ErrNotFound),
			},
			wantPhase:  "error",
			wantStatus: codes.Unset,
			wantEvents: 1,
		},
		{
			name:       "dropped fetch",
			state:      viewstate.State[HomeView]{Phase: viewstate.PhaseLoading},
			wantPhase:  "loading",
			wantStatus: codes.Unset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := endedScreenSpan(t, tt.state)
			if got := phaseAttribute(span); got != tt.wantPhase {
				t.Fatalf("phase attribute=%q want=%q", got, tt.wantPhase)
			}
			if got := span.Status().Code; got != tt.wantStatus {
				t.Fatalf("status=%v want=%v", got, tt.wantStatus)
			}
			if got := len(span.Events()); got != tt.wantEvents {
				t.Fatalf("events=%d want=%d", got, tt.wantEvents)
			}
		})
	}
}

func TestStartUsecaseSpan_NoParentIsNotRecording(t *testing.T) {
	_, span := startUsecaseSpan(context.Background(), "usecase.MatchService.Get", attrMatchID.Int64(1))
	if span.IsRecording() {
		t.Fatalf("expected no span outside a trace")
	}
}
