package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidAmount is returned when the wager amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNoMembers is returned when a wager is created without members.
	ErrNoMembers = errors.New("wager must have at least one member")
	// ErrInvalidDateRange is returned when date-order enforcement is on and
	// the start date falls after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	// ErrWagerNotFound is returned when a wager is not found.
	ErrWagerNotFound = errors.New("wager not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case ErrNoMembers:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_MEMBERS")
	case ErrInvalidDateRange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case ErrWagerNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "WAGER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
