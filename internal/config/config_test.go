package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehler/cvsite/internal/config"
)

type serverConfig struct {
	Addr  string `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	Debug bool   `env:"TEST_SERVER_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoadDefaults(t *testing.T) {
	config.Reset()

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_SERVER_ADDR", ":9999")
	t.Setenv("TEST_SERVER_DEBUG", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9999", cfg.Addr)
	assert.True(t, cfg.Debug)
}

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_SERVER_ADDR", ":7777")

	var first serverConfig
	require.NoError(t, config.Load(&first))

	// The cached snapshot must win over later environment changes.
	t.Setenv("TEST_SERVER_ADDR", ":1111")
	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadRequiredMissing(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestLoadNilTarget(t *testing.T) {
	config.Reset()

	err := config.Load[serverConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilTarget)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
