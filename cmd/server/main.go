// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/indradhanu/docs" // registers the swagger spec
	"github.com/tomtom215/indradhanu/internal/api"
	"github.com/tomtom215/indradhanu/internal/config"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/supervisor"
	"github.com/tomtom215/indradhanu/internal/supervisor/services"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "2.0.0-dev"
	commit  = "unknown"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.Logger())

	logging.Info().
		Str("version", version).
		Str("commit", commit).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting crop recommendation service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Training happens before the listener exists; a server without
	// models has nothing to serve.
	store, err := initPredictor(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("dataset", cfg.Dataset.Path).Msg("Failed to build models")
	}

	wx, err := initWeather(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize weather integration")
	}
	defer wx.Close()

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if wx.store != nil {
		tree.AddDataService(services.NewStoreGCService(wx.store, services.StoreGCConfig{
			Name:     "weather-store",
			Interval: cfg.Weather.StoreGCInterval,
		}))
	}

	handler := api.NewHandler(store, wx.client, api.WithVersion(version))
	middleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	// The root supervisor only returns once ctx is canceled.
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Service stopped")
}
