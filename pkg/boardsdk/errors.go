package boardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/guildnet/board/pkg/httpx"
)

// Error codes returned in the "error" field of error responses.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotConfirmed       = "not_confirmed"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeInvalidTransition  = "invalid_transition"
	ErrorCodeAlreadyConfirmed   = "already_confirmed"
	ErrorCodeInvalidCode        = "invalid_code"
	ErrorCodeConflict           = "conflict"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the stable JSON error shape of the board service. It
// implements the error interface and is shared by the server (to write
// responses) and the SDK client (to represent them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "not_confirmed")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned for malformed bodies or missing fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned when login fails. Unknown usernames
	// and wrong passwords are indistinguishable.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrInvalidToken is returned when the session token is missing,
	// malformed or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or missing session token",
	}

	// ErrNotConfirmed is returned when an unconfirmed profile attempts a
	// confirmation-gated operation.
	ErrNotConfirmed = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeNotConfirmed,
		Description: "email address not confirmed",
	}

	// ErrForbidden is returned when the acting profile lacks the required
	// capability, e.g. moderating someone else's post.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "operation not permitted",
	}

	// ErrInvalidTransition is returned when a response is no longer in a
	// state that admits the requested moderation decision.
	ErrInvalidTransition = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeInvalidTransition,
		Description: "response already moderated",
	}

	// ErrAlreadyConfirmed is returned when confirming an already confirmed
	// profile.
	ErrAlreadyConfirmed = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyConfirmed,
		Description: "email address already confirmed",
	}

	// ErrInvalidCode is returned when the submitted confirmation code does
	// not match the currently pending one.
	ErrInvalidCode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCode,
		Description: "invalid confirmation code",
	}

	// ErrConflict is returned for uniqueness conflicts such as a taken
	// username or email.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource already exists",
	}

	// ErrNotFound is returned when the addressed resource does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
