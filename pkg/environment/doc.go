// Package environment carries the application environment (development,
// staging, production) through context.Context and HTTP requests.
//
// Normalize maps APP_ENV values and their short aliases onto an Environment.
// Middleware attaches the environment to every request and LogExtractor adds
// it to slog records:
//
//	env := environment.Normalize(cfg.Env)
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LogExtractor))
package environment
