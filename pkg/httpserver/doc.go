// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// The core type is Server, constructed through New or NewFromConfig with
// functional options (WithAddr, WithReadTimeout, WithLogger, ...). Run blocks
// until the context is cancelled or an interrupt/TERM signal arrives, then
// drains in-flight requests within the configured shutdown deadline.
// WithStartHook and WithStopHook let callers run side effects around the
// server life-cycle.
//
// Usage:
//
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown; distinguish them with errors.Is.
package httpserver
