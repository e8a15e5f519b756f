package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
)

// MockDispatcher implements ports.Dispatcher for testing
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, destination string, payload domain.DispatchPayload) error {
	args := m.Called(ctx, destination, payload)
	return args.Error(0)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Info(string, ...any)       {}
func (nopLogger) Warn(string, ...any)       {}
func (nopLogger) Error(string, ...any)      {}
func (nopLogger) Debug(string, ...any)      {}
func (l nopLogger) With(...any) ports.Logger { return l }
