package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gameon/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"GAMEON_TEST_NAME" envDefault:"gameon"`
	Port    int    `env:"GAMEON_TEST_PORT" envDefault:"8080"`
	Metrics bool   `env:"GAMEON_TEST_METRICS" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"GAMEON_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"GAMEON_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, defaultsConfig{Name: "gameon", Port: 8080, Metrics: true}, cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("GAMEON_TEST_PORT", "9090")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("parsed once per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("GAMEON_TEST_CACHED", "first")

		var a cachedConfig
		require.NoError(t, config.Load(&a))

		t.Setenv("GAMEON_TEST_CACHED", "second")
		var b cachedConfig
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Value)

		config.Reset()
		var c cachedConfig
		require.NoError(t, config.Load(&c))
		assert.Equal(t, "second", c.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
