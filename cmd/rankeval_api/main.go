package main

import (
	"log/slog"
	"os"

	"github.com/rankeval/rankeval/internal/api"
	"github.com/rankeval/rankeval/internal/server"
	"github.com/rankeval/rankeval/pkg/config/env"
	pkgserver "github.com/rankeval/rankeval/pkg/server"
)

func main() {
	_ = env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/rankeval_api/.env")

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg, pkgserver.NewOkHealthChecker())

	router := api.NewAPRouter(s.Echo)
	router.Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
