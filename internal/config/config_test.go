package config_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/wigner/internal/config"
	"github.com/katalvlaran/wigner/internal/render"
	"github.com/katalvlaran/wigner/racah"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"WIGNER_EPS", "WIGNER_METHOD", "WIGNER_OUTPUT", "WIGNER_LOG_MODE", "WIGNER_LOG_LEVEL"} {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-9, cfg.Epsilon)
	assert.Equal(t, "exact", cfg.Method)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WIGNER_EPS", "1e-6")
	t.Setenv("WIGNER_METHOD", "loggamma")
	t.Setenv("WIGNER_OUTPUT", "yaml")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.Equal(t, "loggamma", cfg.Method)
	assert.Equal(t, "yaml", cfg.Output)

	opts, err := cfg.Options()
	require.NoError(t, err)
	o := racah.Resolve(opts...)
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.Equal(t, racah.LogGamma, o.Method())
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("WIGNER_EPS", "tiny")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestOptions_Invalid(t *testing.T) {
	_, err := config.Config{Epsilon: -1, Method: "exact"}.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Config{Epsilon: 1e-9, Method: "fast"}.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, racah.ErrUnknownMethod)

	_, err = config.Config{Epsilon: 1e-9, Method: "exact", Output: "xml"}.Options()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
