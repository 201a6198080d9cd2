package main

import (
	"log/slog"
	"net/http"

	"github.com/hankookn/teamblog/internal/app"
	"github.com/hankookn/teamblog/internal/config"
	"github.com/hankookn/teamblog/internal/logger"
	"github.com/hankookn/teamblog/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, cfg.SentryDSN)

	application, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}

	handler := routes.SetupRoutes(application)
	slog.Info("server starting",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"content", cfg.ContentPath,
	)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
