package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrBadRequest marks a caller-contract violation detected before any rule runs.
var ErrBadRequest = errors.New("bad request")

// BadRequestError describes malformed or incomplete input.
type BadRequestError struct {
	Message string
}

func NewBadRequest(msg string) *BadRequestError {
	return &BadRequestError{Message: msg}
}

// NewMissingFields reports required fields by their human labels.
func NewMissingFields(labels []string) *BadRequestError {
	return &BadRequestError{Message: "Missing: " + strings.Join(labels, ", ")}
}

func (e *BadRequestError) Error() string { return e.Message }

func (e *BadRequestError) Unwrap() error { return ErrBadRequest }

// BlockedError is returned when a trigger is refused because the rules
// reported errors. The full result is attached for the caller.
type BlockedError struct {
	Result ValidationResult
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("configuration has %d validation error(s): %s", len(e.Result.Errors), strings.Join(e.Result.Errors, "; "))
}

// RejectionError is a non-success answer from the dispatch destination.
// It is relayed to the caller as received.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("dispatch rejected with status %d: %s", e.StatusCode, msg)
}
