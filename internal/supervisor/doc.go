// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

/*
Package supervisor runs the service's long-lived goroutines under suture v4.

# Tree

	indradhanu
	├── data-layer
	│   └── weather-store-gc (only when weather.store_path is set)
	└── api-layer
	    └── http-server

Each layer counts failures on its own, so a store job stuck in backoff never
restarts the listener. Supervisor events go through sutureslog to the slog
adapter in internal/logging and end up in zerolog.

# Usage

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

Service wrappers live in the services subpackage.
*/
package supervisor
