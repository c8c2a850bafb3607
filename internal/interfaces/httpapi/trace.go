package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("football-center/internal/interfaces/httpapi")

// startSpan opens spans for handlers only, and only inside a traced
// request. Middleware and response helpers share the handler's span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// tagRouteID records the matched route and a parsed id such as
// competitionID on the current span.
func tagRouteID(ctx context.Context, r *http.Request, name string, id int64) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("http.route", r.Pattern),
		attribute.Int64("football."+routeParamKey(name), id),
	)
}

// routeParamKey turns competitionID into competition_id.
func routeParamKey(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "ID")) + "_id"
}
