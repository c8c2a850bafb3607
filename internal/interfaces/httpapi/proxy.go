package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/riskibarqy/football-center/external/footballdata"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ProxyPrefix is the same-origin path that forwards to football-data.
const ProxyPrefix = "/api"

// NewFootballDataProxy forwards /api/* to target with the prefix removed,
// the Host rewritten to the target host, and the access token injected so
// browser clients never see it.
func NewFootballDataProxy(target, token string, logger *logging.Logger) (http.Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	targetURL, err := url.Parse(strings.TrimRight(strings.TrimSpace(target), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse proxy target: %w", err)
	}
	if targetURL.Scheme == "" || targetURL.Host == "" {
		return nil, fmt.Errorf("proxy target %q must be an absolute url", target)
	}
	token = strings.TrimSpace(token)
	logger = logger.Named("proxy")

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(targetURL)
			pr.Out.Header.Del("Cookie")
			if token != "" {
				pr.Out.Header.Set(footballdata.TokenHeader, token)
			}
		},
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			ctx := r.Context()
			logger.WarnContext(ctx, "proxy request failed", "path", r.URL.Path, "error", err)
			writeError(ctx, w, fmt.Errorf("%w: football-data proxy: upstream unreachable", usecase.ErrDependencyUnavailable))
		},
	}

	return http.StripPrefix(ProxyPrefix, proxy), nil
}
