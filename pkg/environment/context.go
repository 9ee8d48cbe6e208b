package environment

import (
	"context"
	"log/slog"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Normalize maps APP_ENV values, short aliases included, onto an Environment.
// Empty and unknown values fall back to Development.
func Normalize(value string) Environment {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

type contextKey struct{}

// WithContext adds environment to context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context, or "" when none is set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}

// LogExtractor adds the request environment to log records under "env".
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if env := FromContext(ctx); env != "" {
		return slog.String("env", string(env)), true
	}
	return slog.Attr{}, false
}
