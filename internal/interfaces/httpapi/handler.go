package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"github.com/riskibarqy/football-center/internal/platform/viewstate"
	"github.com/riskibarqy/football-center/internal/usecase"
)

type Handler struct {
	screens   *usecase.Screens
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(screens *usecase.Screens, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		screens:   screens,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCompetitions serves the home screen.
func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	screen := h.screens.NewHome()
	defer screen.Close()

	writeScreen(ctx, w, screen.Load(ctx))
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	competitionID, err := parsePathID(ctx, r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.screens.Competitions().Get(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.screens.Views().CompetitionCard(item))
}

type listMatchesQuery struct {
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
	Status   string `validate:"omitempty,oneof=SCHEDULED TIMED LIVE IN_PLAY PAUSED FINISHED POSTPONED SUSPENDED CANCELED"`
	Name     string `validate:"omitempty,max=120"`
}

// ListMatches serves the matches screen. name is the title the client
// already knows from the competition list.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	competitionID, err := parsePathID(ctx, r, "competitionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	query := listMatchesQuery{
		DateFrom: strings.TrimSpace(values.Get("dateFrom")),
		DateTo:   strings.TrimSpace(values.Get("dateTo")),
		Status:   string(match.NormalizeStatus(values.Get("status"))),
		Name:     strings.TrimSpace(values.Get("name")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	screen := h.screens.NewMatches()
	defer screen.Close()

	state := screen.Open(ctx, competitionID, query.Name, match.ListFilter{
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Status:   match.Status(query.Status),
	})
	writeScreen(ctx, w, state)
}

// GetMatch serves the match detail screen with both squads.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parsePathID(ctx, r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	screen := h.screens.NewMatchDetail()
	defer screen.Close()

	writeScreen(ctx, w, screen.Open(ctx, matchID))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parsePathID(ctx, r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.screens.Teams().Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.screens.Views().TeamView(item))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// writeScreen renders a settled screen state. A state that never settled
// means the client went away, so nothing is written.
func writeScreen[T any](ctx context.Context, w http.ResponseWriter, state viewstate.State[T]) {
	switch state.Phase {
	case viewstate.PhaseSuccess:
		writeSuccess(ctx, w, http.StatusOK, state.Data)
	case viewstate.PhaseError:
		err := state.Err
		if err == nil {
			err = errors.New(state.Message)
		}
		writeErrorMessage(ctx, w, err, state.Message)
	}
}

func parsePathID(ctx context.Context, r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	tagRouteID(ctx, r, name, v)
	return v, nil
}
