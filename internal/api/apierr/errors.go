package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/pig/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeGameNotStarted = "GAME_NOT_STARTED"
	CodeGameOver       = "GAME_OVER"
	CodeRollPending    = "ROLL_PENDING"
	CodeStaleRoll      = "STALE_ROLL"
	CodeNothingAtRisk  = "NOTHING_AT_RISK"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Engine usage errors never change state, so they are all conflicts
	switch {
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "No game has been started"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "The game is over; start a new game"}}
	case errors.Is(err, model.ErrRollPending):
		return &httpError{http.StatusConflict, APIError{CodeRollPending, "A roll is still being resolved"}}
	case errors.Is(err, model.ErrStaleRoll), errors.Is(err, model.ErrRollResolved):
		return &httpError{http.StatusConflict, APIError{CodeStaleRoll, "The roll is no longer current"}}
	case errors.Is(err, model.ErrNothingAtRisk):
		return &httpError{http.StatusConflict, APIError{CodeNothingAtRisk, "No points at risk to hold"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
