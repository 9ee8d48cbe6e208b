package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gameon/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("default level hides debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("shown")
		assert.Contains(t, buf.String(), "shown")

		buf.Reset()
		log = logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "signup")))
		log.Info("hello")
		assert.Equal(t, "signup", decode(t, buf)["svc"])
	})

	t.Run("context value extractor", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace", ctxKey{}))
		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "abc", decode(t, buf)["trace"])
	})

	t.Run("extractors survive WithAttrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("from_ctx", "yes"), true
			}),
		).With(logger.Component("gate"))
		log.InfoContext(context.Background(), "hello")

		entry := decode(t, buf)
		assert.Equal(t, "yes", entry["from_ctx"])
		assert.Equal(t, "gate", entry["component"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production logs JSON at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("prod", "gameon"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("visible")
		entry := decode(t, buf)
		assert.Equal(t, "gameon", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development logs text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("", "gameon"))
		log.Debug("shown")
		out := buf.String()
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "env=development")
	})
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.String("request_id", "r1"), logger.RequestID("r1"))
	assert.Equal(t, slog.String("field", "email"), logger.Field("email"))
	assert.Equal(t, slog.String("kind", "empty"), logger.Kind("empty"))
	assert.Equal(t, slog.Int("checked", 3), logger.Checked(3))
	assert.Equal(t, slog.String("panel", "form"), logger.Panel("form"))
	assert.Equal(t, slog.Int("status_code", 404), logger.StatusCode(404))
}
