package ports

import (
	"context"

	"standby-builder/internal/core/domain"
)

// Logger defines the interface for structured logging.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	With(args ...any) Logger
}

// FieldMapSource loads a submitted field map from somewhere other than an
// HTTP request body, such as a file given on the command line.
type FieldMapSource interface {
	LoadFieldMap(ctx context.Context) (domain.FieldMap, error)
}

// PayloadSink stores a built payload for later inspection.
type PayloadSink interface {
	SavePayload(ctx context.Context, payload domain.DispatchPayload) error
}

// Dispatcher hands a payload to the automation system at destination.
// A non-success answer is reported as *domain.RejectionError.
type Dispatcher interface {
	Dispatch(ctx context.Context, destination string, payload domain.DispatchPayload) error
}
