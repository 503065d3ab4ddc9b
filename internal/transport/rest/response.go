package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// Envelope statuses.
const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Envelope is the response body of every discussion endpoint.
type Envelope struct {
	ID           string         `json:"id"`
	Params       EnvelopeParams `json:"params"`
	ResponseCode string         `json:"responseCode"`
	Result       map[string]any `json:"result"`
}

// EnvelopeParams carries the outcome of a request.
type EnvelopeParams struct {
	Status string `json:"status"`
	ErrMsg string `json:"errmsg,omitempty"`
}

// responseCode renders an HTTP status as an upper-snake code, e.g. 404 -> NOT_FOUND.
func responseCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func writeEnvelope(w http.ResponseWriter, apiID string, status int, result map[string]any) {
	if result == nil {
		result = map[string]any{}
	}
	writeJSON(w, status, Envelope{
		ID:           apiID,
		Params:       EnvelopeParams{Status: statusSuccess},
		ResponseCode: responseCode(status),
		Result:       result,
	})
}

func writeEnvelopeError(w http.ResponseWriter, apiID string, status int, message string) {
	writeJSON(w, status, Envelope{
		ID:           apiID,
		Params:       EnvelopeParams{Status: statusFailed, ErrMsg: message},
		ResponseCode: responseCode(status),
		Result:       map[string]any{},
	})
}

// statusFor maps a service error to its HTTP status and client message.
func statusFor(err error) (int, string) {
	var conflict *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "user id does not exist"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "discussion not found"
	case errors.Is(err, domain.ErrInactive):
		return http.StatusBadRequest, domain.ErrInactive.Error()
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Message
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, "store timeout"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (h *DiscussionHandler) handleError(w http.ResponseWriter, r *http.Request, apiID string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("api", apiID),
			slog.String("error", err.Error()),
		)
	}
	writeEnvelopeError(w, apiID, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
