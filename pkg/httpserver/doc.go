// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, the process receives SIGINT or
// SIGTERM, or the listener fails. Shutdown waits for in-flight requests up to
// the configured timeout. Config carries HTTP_* environment settings for
// NewFromConfig.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
