package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadyBound indicates a bind attempt on an OAuth identity that already
// resolves to a live mailbox account.
var ErrAlreadyBound = errors.New("oauth identity already bound to a mailbox")

// ErrDeletedEmail indicates a bind attempt against an email address that
// belongs to a soft-deleted account. Deleted mailboxes are never resurrected
// through the OAuth flow.
var ErrDeletedEmail = errors.New("email belongs to a deleted mailbox")

// ErrUpstreamAuth indicates the provider token endpoint rejected the
// authorization code exchange.
var ErrUpstreamAuth = errors.New("provider token exchange failed")

// ErrUpstreamProfile indicates the provider profile endpoint returned a
// non-success response after a successful token exchange.
var ErrUpstreamProfile = errors.New("provider profile fetch failed")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP status code alongside a message so handlers can
// translate service failures without switching on every sentinel.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewConflictError creates a 409 AppError.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewGatewayTimeoutError creates a 504 AppError, used when an upstream
// provider does not answer in time.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}
