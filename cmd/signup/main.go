package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/gameon/internal/metrics"
	"github.com/dmitrymomot/gameon/internal/web"
	"github.com/dmitrymomot/gameon/pkg/config"
	"github.com/dmitrymomot/gameon/pkg/environment"
	"github.com/dmitrymomot/gameon/pkg/httpserver"
	"github.com/dmitrymomot/gameon/pkg/logger"
	"github.com/dmitrymomot/gameon/pkg/requestid"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Name           string `env:"APP_NAME" envDefault:"gameon"`
	LogLevel       string `env:"LOG_LEVEL"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	HTTP           httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LogExtractor),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	handlers := web.NewHandlers(web.WithLogger(log), web.WithMetrics(m))
	router := web.NewRouter(handlers, environment.Normalize(cfg.Env))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
