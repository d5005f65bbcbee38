package commerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned before any network I/O.
var (
	// ErrNoToken is returned when an authenticated endpoint is called
	// without a persisted token.
	ErrNoToken = errors.New("commerce: no authentication token found")
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Status is the API status marker (e.g. "fail", "error").
	Status string `json:"statusMsg"`
	// Message is the human-readable message from the response body.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("commerce: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("commerce: HTTP %d", e.StatusCode)
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the server rejected the token.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsBadRequest returns true if the server rejected the request shape.
func (e *Error) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// parseError parses an error response body from the API.
// The API reports failures as {"statusMsg": "fail", "message": "..."} and
// validation failures as {"errors": {"msg": "..."}}.
func parseError(statusCode int, body []byte) error {
	var apiError Error
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Message != "" {
		apiError.StatusCode = statusCode
		return &apiError
	}

	var validationError struct {
		Errors struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &validationError); err == nil && validationError.Errors.Msg != "" {
		return &Error{
			StatusCode: statusCode,
			Status:     "fail",
			Message:    validationError.Errors.Msg,
		}
	}

	return &Error{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Message:    string(body),
	}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
