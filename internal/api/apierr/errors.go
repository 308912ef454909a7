package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardnight/ledger/internal/model"
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
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNameRequired    = "NAME_REQUIRED"
	CodeWinnerRequired  = "WINNER_REQUIRED"
	CodeInvalidGameType = "INVALID_GAME_TYPE"
	CodeInvalidMood     = "INVALID_MOOD"
	CodeInvalidDate     = "INVALID_DATE"
	CodeInvalidTime     = "INVALID_TIME"
	CodeUnknownBadge    = "UNKNOWN_BADGE"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeBadgeNotFound   = "BADGE_NOT_FOUND"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternalError   = "INTERNAL_ERROR"
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

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeNameRequired, "Player name is required"}}
	case errors.Is(err, model.ErrWinnerRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeWinnerRequired, "A winner is required"}}
	case errors.Is(err, model.ErrInvalidGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameType, "Unknown game type"}}
	case errors.Is(err, model.ErrInvalidMood):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMood, "Unknown mood"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be YYYY-MM-DD"}}
	case errors.Is(err, model.ErrInvalidTime):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTime, "Time must be HH:MM"}}
	case errors.Is(err, model.ErrUnknownBadge):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownBadge, "Unknown badge"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewBadgeNotFoundError creates a badge not found error
func NewBadgeNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeBadgeNotFound, "Badge not found"}}
}

// NewNotFoundError creates an error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewRateLimitedError creates a too many requests error
func NewRateLimitedError() error {
	return &httpError{http.StatusTooManyRequests, APIError{CodeRateLimited, "Too many requests"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
