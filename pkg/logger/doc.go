// Package logger builds log/slog loggers for the service.
//
// New returns a *slog.Logger configured through functional options: level,
// format (JSON or text), output, static attributes and context extractors.
// WithEnvironment applies the production or development presets.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "signup form validated", logger.Component("signup_gate"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
