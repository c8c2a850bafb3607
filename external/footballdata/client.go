package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-center/internal/domain/competition"
	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/platform/resilience"
	"github.com/riskibarqy/football-center/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"
	// TokenHeader carries the access token on every request.
	TokenHeader = "X-Auth-Token"

	maxBodyBytes = 6 << 20
)

var (
	_ competition.Repository = (*Client)(nil)
	_ match.Repository       = (*Client)(nil)
	_ team.Repository        = (*Client)(nil)
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client reads competitions, matches and teams from football-data.org v4,
// either directly or through a proxy that adds the token itself.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logging.Logger
	flight     resilience.Flight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		logger:     logger.Named("footballdata"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}


// ListCompetitions returns every competition the token can see. Listing.Found
// is false when the payload has no competitions array.
func (c *Client) ListCompetitions(ctx context.Context) (competition.Listing, error) {
	var payload competitionsEnvelope
	if err := c.doJSON(ctx, "/competitions", nil, &payload); err != nil {
		return competition.Listing{}, err
	}
	if payload.Competitions == nil {
		c.logger.WarnContext(ctx, "competitions payload has no competitions array")
		return competition.Listing{Competitions: []competition.Competition{}}, nil
	}

	items := make([]competition.Competition, 0, len(*payload.Competitions))
	for _, item := range *payload.Competitions {
		items = append(items, item.toDomain())
	}
	return competition.Listing{Competitions: items, Found: true}, nil
}

func (c *Client) GetCompetition(ctx context.Context, competitionID int64) (competition.Competition, error) {
	var payload competitionPayload
	if err := c.doJSON(ctx, "/competitions/"+formatID(competitionID), nil, &payload); err != nil {
		return competition.Competition{}, err
	}
	return payload.toDomain(), nil
}

// ListMatches forwards filter as query parameters. The response is not
// filtered again on this side.
func (c *Client) ListMatches(ctx context.Context, competitionID int64, filter match.ListFilter) ([]match.Match, error) {
	query := make(map[string]string, 3)
	if filter.DateFrom != "" {
		query["dateFrom"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		query["dateTo"] = filter.DateTo
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	var payload matchesEnvelope
	path := "/competitions/" + formatID(competitionID) + "/matches"
	if err := c.doJSON(ctx, path, query, &payload); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	var payload matchPayload
	if err := c.doJSON(ctx, "/matches/"+formatID(matchID), nil, &payload); err != nil {
		return match.Match{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	var payload teamPayload
	if err := c.doJSON(ctx, "/teams/"+formatID(teamID), nil, &payload); err != nil {
		return team.Team{}, err
	}
	return payload.toDomain(), nil
}

// GetTeamPlayers returns the squad of a team, empty when the team has none.
func (c *Client) GetTeamPlayers(ctx context.Context, teamID int64) ([]team.Player, error) {
	item, err := c.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return item.Squad, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	encoded := values.Encode()
	if encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, shared := c.flight.Do(ctx, path+"?"+encoded, func(fetchCtx context.Context) ([]byte, error) {
		return c.executeRequest(fetchCtx, path, fullURL)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && crerr.Is(err, ctxErr) {
			return &TransportError{Path: path, Err: crerr.Wrap(ctxErr, "send request")}
		}
		return err
	}
	if shared {
		c.logger.DebugContext(ctx, "football-data request coalesced", "path", path)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.logger.WarnContext(ctx, "football-data payload decode failed", "path", path, "error", err)
		return crerr.Wrapf(usecase.ErrUnexpectedShape, "decode %s payload: %v", path, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(TokenHeader, c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &TransportError{Path: path, Err: crerr.Wrap(ctxErr, "send request")}
		}
		transportErr := &TransportError{Path: path, Err: fmt.Errorf("send request: %s", sanitizeSensitiveText(err.Error(), c.token))}
		c.logger.WarnContext(ctx, "football-data request failed", "path", path, "error", transportErr)
		return nil, transportErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		transportErr := &TransportError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("read response body: %w", err),
		}
		c.logger.WarnContext(ctx, "football-data read failed", "path", path, "error", transportErr)
		return nil, transportErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		transportErr := &TransportError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       sanitizeSensitiveText(abbreviateBody(raw), c.token),
		}
		c.logger.WarnContext(ctx, "football-data non-2xx response",
			"path", path,
			"status", resp.StatusCode,
			"duration_ms", time.Since(started).Milliseconds(),
		)
		return nil, transportErr
	}

	c.logger.DebugContext(ctx, "football-data request done",
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return raw, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
