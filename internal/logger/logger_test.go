package logger_test

import (
	"testing"

	"github.com/katalvlaran/wigner/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := logger.New(mode, "debug")
		require.NoError(t, err, mode)
		assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel), "debug level enabled for %s", mode)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New("dev", "loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := logger.Nop().With("symbol", "3j")
	assert.NotPanics(t, func() {
		l.Debug("evaluating", "j1", 1.0)
		l.Info("done")
		l.Sync()
	})
}
