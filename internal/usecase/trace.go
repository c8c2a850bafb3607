package usecase

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attributes for the football-data resource a use case works on.
const (
	attrCompetitionID = attribute.Key("football.competition_id")
	attrMatchID       = attribute.Key("football.match_id")
	attrTeamID        = attribute.Key("football.team_id")
	attrScreenPhase   = attribute.Key("screen.phase")
)

var usecaseTracer = otel.Tracer("football-center/internal/usecase")

// startUsecaseSpan only opens a child span under an existing trace. The
// terminal client and tests run without one and get a non-recording span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// recordScreenOutcome tags a screen load with the phase it settled in. Not
// found and invalid ids are expected outcomes and keep the span status unset.
func recordScreenOutcome[T any](span trace.Span, state viewstate.State[T]) {
	span.SetAttributes(attrScreenPhase.String(string(state.Phase)))
	if !state.Failed() || state.Err == nil {
		return
	}
	span.RecordError(state.Err)
	if errors.Is(state.Err, ErrNotFound) || errors.Is(state.Err, ErrInvalidInput) {
		return
	}
	span.SetStatus(codes.Error, state.Message)
}
