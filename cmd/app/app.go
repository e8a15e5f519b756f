package main

import (
	"io"
	"log/slog"

	"standby-builder/internal/adapters/config"
	"standby-builder/internal/adapters/github"
	logadapter "standby-builder/internal/adapters/logger"
	"standby-builder/internal/core/ports"
	"standby-builder/internal/core/services/normalizer"
	"standby-builder/internal/core/services/orchestrator"
	"standby-builder/internal/core/services/payload"
	"standby-builder/internal/core/services/rules"
)

// app holds what every command needs: process config, logging and the service.
type app struct {
	cfg     config.AppConfig
	slogger *slog.Logger
	logger  ports.Logger
	service *orchestrator.Service
}

func newApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	slogger := logadapter.NewJSONLogger(logOutput, cfg.LogLevel)
	slog.SetDefault(slogger)
	logger := logadapter.NewSlogAdapter(slogger)

	var dispatcher ports.Dispatcher
	if !cfg.DryRun() {
		d, err := github.NewDispatcher(logger, cfg.GitHubToken, cfg.GitHubAPIURL)
		if err != nil {
			return nil, err
		}
		dispatcher = d
	}

	service := orchestrator.NewService(
		logger,
		normalizer.New(),
		rules.NewEngine(),
		payload.NewBuilder(nil),
		dispatcher,
		orchestrator.Settings{
			Destination:     cfg.GitHubRepo,
			RunURL:          orchestrator.RunURL(cfg.GitHubWebURL, cfg.GitHubRepo),
			DispatchTimeout: cfg.DispatchTimeout,
		},
	)

	return &app{cfg: cfg, slogger: slogger, logger: logger, service: service}, nil
}
