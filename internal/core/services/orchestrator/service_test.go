package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
	"standby-builder/internal/core/services/normalizer"
	"standby-builder/internal/core/services/payload"
	"standby-builder/internal/core/services/rules"
)

const destination = "acme/oracle-standby"

func newTestService(dispatcher ports.Dispatcher) *Service {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC))
	return NewService(
		nopLogger{},
		normalizer.New(),
		rules.NewEngine(),
		payload.NewBuilder(clock),
		dispatcher,
		Settings{
			Destination:     destination,
			RunURL:          RunURL("https://github.com/", destination),
			DispatchTimeout: time.Second,
		},
	)
}

func submission() map[string]any {
	return map[string]any{
		"primary_host":           "h1",
		"primary_sid":            "ORCL",
		"primary_db_unique_name": "PRIMDB",
		"primary_oracle_home":    "/u01/app/oracle/product/19c/dbhome_1",
		"standby_host":           "h2",
		"standby_sid":            "ORCL",
		"standby_db_unique_name": "STBYDB",
		"standby_oracle_home":    "/u01/app/oracle/product/19c/dbhome_1",
		"rman_parallelism":       "8",
	}
}

func TestService_Validate(t *testing.T) {
	svc := newTestService(nil)

	t.Run("Should return rule errors as values", func(t *testing.T) {
		in := submission()
		in["standby_db_unique_name"] = "PRIMDB"
		result, err := svc.Validate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, []string{"DB_UNIQUE_NAME must be different between primary and standby"}, result.Errors)
	})

	t.Run("Should reject a missing field map", func(t *testing.T) {
		_, err := svc.Validate(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("Should validate an empty field map against defaults", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), map[string]any{})
		require.NoError(t, err)
		assert.Empty(t, result.Errors)
		assert.Equal(t, []string{
			"Active duplicate requires network bandwidth: ensure sufficient bandwidth between primary and standby",
		}, result.Warnings)
	})
}

func TestService_Render(t *testing.T) {
	svc := newTestService(nil)
	p, err := svc.Render(context.Background(), submission())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18T08:00:00Z", p.Timestamp)
	assert.Equal(t, 8, p.ClientPayload.RMAN.Parallelism)
	assert.Equal(t, "h2", p.ClientPayload.Standby.Host)

	empty, err := svc.Render(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 4, empty.ClientPayload.RMAN.Parallelism)
}

func TestService_Trigger(t *testing.T) {
	t.Run("Should return the payload in dry-run mode", func(t *testing.T) {
		svc := newTestService(nil)
		require.True(t, svc.DryRun())

		result, err := svc.Trigger(context.Background(), submission())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.DryRun)
		assert.Equal(t, msgDryRun, result.Message)
		assert.Equal(t, "https://github.com/acme/oracle-standby/actions", result.RunURL)
		require.NotNil(t, result.Payload)
		assert.Equal(t, domain.EventTypeCreateStandby, result.Payload.EventType)
		assert.Equal(t, "PRIMDB", result.Payload.ClientPayload.Primary.DBUniqueName)
	})

	t.Run("Should dispatch to the configured destination", func(t *testing.T) {
		dispatcher := &MockDispatcher{}
		dispatcher.On("Dispatch", mock.Anything, destination, mock.MatchedBy(func(p domain.DispatchPayload) bool {
			return p.ClientPayload.Primary.Host == "h1" && p.ClientPayload.RMAN.Parallelism == 8
		})).Return(nil).Once()

		svc := newTestService(dispatcher)
		result, err := svc.Trigger(context.Background(), submission())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.DryRun)
		assert.Equal(t, msgTriggered, result.Message)
		assert.Nil(t, result.Payload)
		dispatcher.AssertExpectations(t)
	})

	t.Run("Should bound the send with the dispatch timeout", func(t *testing.T) {
		dispatcher := &MockDispatcher{}
		dispatcher.On("Dispatch", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), destination, mock.Anything).Return(nil).Once()

		_, err := newTestService(dispatcher).Trigger(context.Background(), submission())
		require.NoError(t, err)
		dispatcher.AssertExpectations(t)
	})

	t.Run("Should relay a rejection unmodified", func(t *testing.T) {
		rejection := &domain.RejectionError{StatusCode: 404, Message: "Not Found"}
		dispatcher := &MockDispatcher{}
		dispatcher.On("Dispatch", mock.Anything, destination, mock.Anything).Return(rejection).Once()

		_, err := newTestService(dispatcher).Trigger(context.Background(), submission())
		require.Error(t, err)
		assert.Same(t, rejection, err)
	})

	t.Run("Should refuse a configuration with rule errors", func(t *testing.T) {
		dispatcher := &MockDispatcher{}
		in := submission()
		in["standby_host"] = "h1"

		_, err := newTestService(dispatcher).Trigger(context.Background(), in)
		var blocked *domain.BlockedError
		require.True(t, errors.As(err, &blocked))
		assert.Equal(t, []string{"Primary and Standby cannot have the same SID on the same host"}, blocked.Result.Errors)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should refuse an empty field map", func(t *testing.T) {
		dispatcher := &MockDispatcher{}
		_, err := newTestService(dispatcher).Trigger(context.Background(), map[string]any{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.Equal(t, domain.MsgNoData, err.Error())
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should report missing required fields as a bad request", func(t *testing.T) {
		in := submission()
		delete(in, "standby_oracle_home")

		_, err := newTestService(nil).Trigger(context.Background(), in)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.Equal(t, "Missing: Standby Oracle Home", err.Error())
	})
}

func TestRunURL(t *testing.T) {
	assert.Equal(t, "https://github.com/acme/repo/actions", RunURL("https://github.com", "acme/repo"))
	assert.Equal(t, "https://ghe.local/acme/repo/actions", RunURL("https://ghe.local/", "acme/repo"))
	assert.Equal(t, "", RunURL("https://github.com", ""))
}
