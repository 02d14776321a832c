// Package web holds the response helpers shared by every portal handler.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
)

// Kind classifies a failure by how it is reported to the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindRemote
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindRemote:
		return "remote"
	case KindConfig:
		return "config"
	default:
		return "internal"
	}
}

// Error is a failure with a client-safe message. Err carries the detail that
// is only ever logged.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports missing or malformed input as a 400.
func Validation(message string, err error) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Err: err}
}

// Unauthorized reports a rejected caller as a 401.
func Unauthorized(message string, err error) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: message, Err: err}
}

// Remote reports a failed upstream call as a generic 500.
func Remote(message string, err error) *Error {
	return &Error{Kind: KindRemote, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// Misconfigured reports a missing server-side setting as a 500.
func Misconfigured(message string, err error) *Error {
	return &Error{Kind: KindConfig, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// JSON writes body with the given status.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError logs err and writes its client-safe form. Errors that are not
// *Error become an opaque 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "internal error", Err: err}
	}

	log := logger.FromContext(r.Context())
	fields := []zap.Field{zap.String("kind", appErr.Kind.String()), zap.Int("status", appErr.Status)}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	body := ErrorBody{Error: appErr.Message}
	if appErr.Status >= http.StatusInternalServerError {
		body.RequestID = logger.RequestID(r.Context())
		log.Error(appErr.Message, fields...)
	} else {
		log.Warn(appErr.Message, fields...)
	}
	JSON(w, appErr.Status, body)
}
