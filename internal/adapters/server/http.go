package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
	"standby-builder/internal/core/services/orchestrator"
)

const maxBodyBytes = 1 << 20

type HTTPServer struct {
	logger      ports.Logger
	service     *orchestrator.Service
	server      *http.Server
	broadcaster *LogBroadcaster
}

func NewHTTPServer(logger ports.Logger, service *orchestrator.Service, broadcaster *LogBroadcaster, port int) *HTTPServer {
	mux := http.NewServeMux()
	h := &HTTPServer{
		logger:      logger,
		service:     service,
		broadcaster: broadcaster,
	}

	mux.HandleFunc("POST /api/validate", h.withRequestLog(h.handleValidate))
	mux.HandleFunc("POST /api/render", h.withRequestLog(h.handleRender))
	mux.HandleFunc("POST /api/trigger", h.withRequestLog(h.handleTrigger))
	mux.HandleFunc("GET /api/fields", h.withRequestLog(h.handleFields))
	mux.HandleFunc("GET /healthz", h.handleHealth)

	if broadcaster != nil {
		mux.HandleFunc("/logs", broadcaster.HandleWebsocket)
	}

	h.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return h
}

// Handler exposes the routes, mainly for tests.
func (h *HTTPServer) Handler() http.Handler {
	return h.server.Handler
}

func (h *HTTPServer) Start() {
	h.logger.Info("Starting HTTP server", "address", h.server.Addr, "dry_run", h.service.DryRun())
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Error("HTTP server failed", "error", err)
	}
}

func (h *HTTPServer) Stop(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

func (h *HTTPServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result, err := h.service.Validate(r.Context(), raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HTTPServer) handleRender(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	payload, err := h.service.Render(r.Context(), raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *HTTPServer) handleTrigger(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result, err := h.service.Trigger(r.Context(), raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HTTPServer) handleFields(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Fields())
}

func (h *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "dry_run": h.service.DryRun()})
}

// decodeBody reads the request body as an untyped JSON value. An empty body
// decodes to nil and is left for the service to reject.
func (h *HTTPServer) decodeBody(w http.ResponseWriter, r *http.Request) (any, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON"})
		return nil, false
	}
	return raw, true
}

type errorBody struct {
	Error    string   `json:"error"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// writeError translates service errors into HTTP answers. Rejections from
// the dispatch destination keep their status code.
func (h *HTTPServer) writeError(w http.ResponseWriter, err error) {
	var (
		bad       *domain.BadRequestError
		blocked   *domain.BlockedError
		rejection *domain.RejectionError
	)
	switch {
	case errors.As(err, &bad):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: bad.Message})
	case errors.As(err, &blocked):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:    "Configuration has validation errors",
			Errors:   blocked.Result.Errors,
			Warnings: blocked.Result.Warnings,
		})
	case errors.As(err, &rejection):
		status := rejection.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, errorBody{Error: fmt.Sprintf("GitHub API returned %d: %s", rejection.StatusCode, rejection.Message)})
	default:
		h.logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags each API request with an id and logs its outcome.
func (h *HTTPServer) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)

		h.logger.Info("Handled request", "component", "http",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
