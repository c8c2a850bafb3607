package footballdata

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-center/internal/usecase"
)

// TransportError reports a request that failed on the wire or came back
// with a non-2xx status. StatusCode is 0 when no response was received.
type TransportError struct {
	Path       string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("football-data %s: %v", e.Path, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("football-data %s: status=%s", e.Path, e.Status)
	}
	return fmt.Sprintf("football-data %s: status=%s body=%s", e.Path, e.Status, e.Body)
}

// StatusLine is "<code> - <reason>", or "" when no response was received.
func (e *TransportError) StatusLine() string {
	if e.StatusCode == 0 {
		return ""
	}
	reason := strings.TrimSpace(strings.TrimPrefix(e.Status, strconv.Itoa(e.StatusCode)))
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%d - %s", e.StatusCode, reason)
}

func (e *TransportError) Unwrap() []error {
	out := []error{e.sentinel()}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func (e *TransportError) sentinel() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return usecase.ErrNotFound
	case http.StatusBadRequest:
		return usecase.ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return usecase.ErrUnauthorized
	default:
		return usecase.ErrDependencyUnavailable
	}
}

