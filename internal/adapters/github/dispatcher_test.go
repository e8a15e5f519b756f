package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)       {}
func (nopLogger) Warn(string, ...any)       {}
func (nopLogger) Error(string, ...any)      {}
func (nopLogger) Debug(string, ...any)      {}
func (l nopLogger) With(...any) ports.Logger { return l }

func samplePayload() domain.DispatchPayload {
	return domain.DispatchPayload{
		EventType: domain.EventTypeCreateStandby,
		Timestamp: "2026-10-18T08:00:00Z",
		ClientPayload: domain.ClientPayload{
			Primary:   domain.PrimaryPayload{Host: "h1", SID: "ORCL", DBUniqueName: "PRIMDB"},
			Standby:   domain.StandbyPayload{Host: "h2", SID: "ORCL", DBUniqueName: "STBYDB"},
			RMAN:      domain.RMANPayload{Method: "active_duplicate", Parallelism: 4},
			Approvals: domain.ApprovalsPayload{Precheck: true, Primary: true, RMAN: true, GoLive: true},
		},
	}
}

type dispatchRequest struct {
	EventType     string         `json:"event_type"`
	ClientPayload map[string]any `json:"client_payload"`
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("Should post a repository_dispatch event with the bearer token", func(t *testing.T) {
		var got dispatchRequest
		var auth, path, method string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			path = r.URL.Path
			method = r.Method
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		d, err := NewDispatcher(nopLogger{}, "tok-123", srv.URL)
		require.NoError(t, err)

		require.NoError(t, d.Dispatch(context.Background(), "acme/oracle-standby", samplePayload()))
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/repos/acme/oracle-standby/dispatches", path)
		assert.Equal(t, "Bearer tok-123", auth)
		assert.Equal(t, "create-physical-standby", got.EventType)
		assert.Equal(t, "2026-10-18T08:00:00Z", got.ClientPayload["timestamp"])

		primary, ok := got.ClientPayload["primary"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "h1", primary["host"])
		for _, section := range []string{"standby", "rman", "network", "options", "notifications", "approvals"} {
			assert.Contains(t, got.ClientPayload, section)
		}
	})

	t.Run("Should relay a rejection with its status and message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Invalid request.\n\nFor 'properties/client_payload', too many properties."}`))
		}))
		defer srv.Close()

		d, err := NewDispatcher(nopLogger{}, "tok", srv.URL)
		require.NoError(t, err)

		err = d.Dispatch(context.Background(), "acme/oracle-standby", samplePayload())
		var rejection *domain.RejectionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, http.StatusUnprocessableEntity, rejection.StatusCode)
		assert.Contains(t, rejection.Message, "too many properties")
	})

	t.Run("Should report a missing repository as a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}))
		defer srv.Close()

		d, err := NewDispatcher(nopLogger{}, "tok", srv.URL)
		require.NoError(t, err)

		err = d.Dispatch(context.Background(), "acme/missing", samplePayload())
		var rejection *domain.RejectionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, http.StatusNotFound, rejection.StatusCode)
		assert.Equal(t, "Not Found", rejection.Message)
	})

	t.Run("Should wrap transport failures", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		d, err := NewDispatcher(nopLogger{}, "tok", url)
		require.NoError(t, err)

		err = d.Dispatch(context.Background(), "acme/oracle-standby", samplePayload())
		require.Error(t, err)
		var rejection *domain.RejectionError
		assert.False(t, errors.As(err, &rejection))
		assert.Contains(t, err.Error(), "repository dispatch failed")
	})

	t.Run("Should reject a malformed destination before sending", func(t *testing.T) {
		d, err := NewDispatcher(nopLogger{}, "tok", "")
		require.NoError(t, err)
		for _, dest := range []string{"", "acme", "/repo", "acme/", "a/b/c"} {
			err := d.Dispatch(context.Background(), dest, samplePayload())
			assert.Error(t, err, dest)
		}
	})
}

func TestNewDispatcher(t *testing.T) {
	_, err := NewDispatcher(nopLogger{}, "  ", "")
	assert.Error(t, err)

	_, err = NewDispatcher(nopLogger{}, "tok", "://bad")
	assert.Error(t, err)
}
