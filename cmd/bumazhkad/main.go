package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tooloolooz/bumazhka/internal/api"
	"github.com/tooloolooz/bumazhka/pkg/config"
	"github.com/tooloolooz/bumazhka/pkg/httpserver"
	"github.com/tooloolooz/bumazhka/pkg/logger"
)

type appConfig struct {
	Logger logger.Config
	Server httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithAttr(slog.String("service", "bumazhkad")))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	api.New(log).Register(router)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
