package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"standby-builder/internal/core/domain"
	"standby-builder/internal/core/ports"
	"standby-builder/internal/core/services/normalizer"
	"standby-builder/internal/core/services/payload"
	"standby-builder/internal/core/services/rules"
)

const (
	msgTriggered = "Pipeline triggered successfully!"
	msgDryRun    = "Dry run - pipeline payload generated"
)

// Settings are the dispatch-side values the service needs from process config.
type Settings struct {
	// Destination identifies where payloads go, as "owner/repo".
	Destination string
	// RunURL is shown to the operator after a trigger.
	RunURL string
	// DispatchTimeout bounds the external send. Zero means no extra bound.
	DispatchTimeout time.Duration
}

// Service runs a submitted field map through normalization, the rules and
// the payload builder, and hands the result to the dispatcher.
type Service struct {
	logger     ports.Logger
	normalizer *normalizer.Normalizer
	rules      *rules.Engine
	builder    *payload.Builder
	dispatcher ports.Dispatcher
	settings   Settings
}

// NewService creates a new orchestration service. A nil dispatcher puts the
// service in dry-run mode: triggers return the payload instead of sending it.
func NewService(
	logger ports.Logger,
	norm *normalizer.Normalizer,
	engine *rules.Engine,
	builder *payload.Builder,
	dispatcher ports.Dispatcher,
	settings Settings,
) *Service {
	return &Service{
		logger:     logger,
		normalizer: norm,
		rules:      engine,
		builder:    builder,
		dispatcher: dispatcher,
		settings:   settings,
	}
}

// DryRun reports whether triggers skip the dispatcher.
func (s *Service) DryRun() bool {
	return s.dispatcher == nil
}

// Validate runs the cross-field rules. Rule errors are part of the result,
// not a returned error; only malformed input fails.
func (s *Service) Validate(_ context.Context, raw any) (domain.ValidationResult, error) {
	cfg, err := s.normalize(raw)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	result := s.rules.Validate(cfg)
	s.logger.Debug("Validated configuration", "component", "validator",
		"errors", len(result.Errors), "warnings", len(result.Warnings))
	return result, nil
}

// Render builds the payload without validating or dispatching it.
func (s *Service) Render(_ context.Context, raw any) (domain.DispatchPayload, error) {
	cfg, err := s.normalize(raw)
	if err != nil {
		return domain.DispatchPayload{}, err
	}
	return s.builder.Build(cfg), nil
}

// Trigger validates the configuration and, when it is safe, dispatches the
// payload. A rejection from the destination is returned as is.
func (s *Service) Trigger(ctx context.Context, raw any) (*domain.TriggerResult, error) {
	fields, err := domain.ParseFieldMap(raw)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.NewBadRequest(domain.MsgNoData)
	}
	cfg := s.normalizer.Normalize(fields)
	if err := rules.CheckRequired(cfg); err != nil {
		return nil, err
	}

	result := s.rules.Validate(cfg)
	if result.HasErrors() {
		s.logger.Warn("Refusing to dispatch invalid configuration", "component", "trigger", "errors", result.Errors)
		return nil, &domain.BlockedError{Result: result}
	}

	p := s.builder.Build(cfg)
	appLogger := s.logger.With("component", "trigger",
		"primary", cfg.Primary.DBUniqueName, "standby", cfg.Standby.DBUniqueName)

	if s.DryRun() {
		appLogger.Info("No dispatch credential configured, returning payload")
		return &domain.TriggerResult{
			Success: true,
			DryRun:  true,
			Message: msgDryRun,
			RunURL:  s.settings.RunURL,
			Payload: &p,
		}, nil
	}

	sendCtx := ctx
	if s.settings.DispatchTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.settings.DispatchTimeout)
		defer cancel()
	}

	appLogger.Info("Dispatching pipeline event", "destination", s.settings.Destination, "event_type", p.EventType)
	if err := s.dispatcher.Dispatch(sendCtx, s.settings.Destination, p); err != nil {
		appLogger.Error("Dispatch failed", "destination", s.settings.Destination, "error", err)
		return nil, err
	}

	return &domain.TriggerResult{
		Success: true,
		Message: msgTriggered,
		RunURL:  s.settings.RunURL,
	}, nil
}

// Fields lists the input fields with their defaults.
func (s *Service) Fields() []normalizer.Field {
	return normalizer.Fields()
}

func (s *Service) normalize(raw any) (domain.NormalizedConfig, error) {
	fields, err := domain.ParseFieldMap(raw)
	if err != nil {
		return domain.NormalizedConfig{}, err
	}
	return s.normalizer.Normalize(fields), nil
}

// RunURL returns the page where runs triggered on destination show up.
func RunURL(webURL, destination string) string {
	if destination == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/actions", strings.TrimRight(webURL, "/"), destination)
}
