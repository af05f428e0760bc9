package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"recruit-kit/internal/calc"
	"recruit-kit/internal/config"
	"recruit-kit/internal/cv"
	"recruit-kit/internal/ocr"
)

// ErrorType is reported in the "type" field of every error response.
type ErrorType string

const (
	ValidationError    ErrorType = "ValidationError"
	ConfigurationError ErrorType = "ConfigurationError"
	ProcessingError    ErrorType = "ProcessingError"
	ExtractionError    ErrorType = "ExtractionError"
)

// ErrorResponse is the JSON error body. Details is only set in development.
type ErrorResponse struct {
	Error   string    `json:"error"`
	Type    ErrorType `json:"type"`
	Details string    `json:"details,omitempty"`
}

// Error is a failure with a response status and a user-facing message.
type Error struct {
	Type    ErrorType
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(t ErrorType, status int, msg string, err error) *Error {
	return &Error{Type: t, Status: status, Message: msg, Err: err}
}

func badRequest(msg string, err error) *Error {
	return newError(ValidationError, http.StatusBadRequest, msg, err)
}

func methodNotAllowed(method string) *Error {
	return newError(ValidationError, http.StatusMethodNotAllowed, "method "+method+" not allowed", nil)
}

func misconfigured(msg string, err error) *Error {
	return newError(ConfigurationError, http.StatusInternalServerError, msg, err)
}

func processingFailed(msg string, err error) *Error {
	return newError(ProcessingError, http.StatusInternalServerError, msg, err)
}

// classify maps any error onto the response taxonomy.
func classify(err error) *Error {
	var e *Error
	switch {
	case errors.Is(err, ocr.ErrUnsupportedFormat):
		return badRequest("unsupported file format", err)
	case errors.As(err, &e):
		return e
	case errors.Is(err, cv.ErrFormatNotRecognized):
		return newError(ExtractionError, http.StatusInternalServerError, "could not recognise any CV sections", err)
	case errors.Is(err, config.ErrMissingCredentials), errors.Is(err, config.ErrAccountManagers):
		return misconfigured("server is not configured", err)
	case errors.Is(err, calc.ErrInvalidInput):
		return badRequest("invalid input", err)
	default:
		return processingFailed("processing failed", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	e := classify(err)
	resp := ErrorResponse{Error: e.Message, Type: e.Type}
	if a.cfg.IsDevelopment() && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	log.Printf("[API] %s (%d): %v", e.Type, e.Status, err)
	writeJSON(w, e.Status, resp)
}
