package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/deeptube/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	defer logger.Sync()

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "xx"

	err := Run(context.Background(), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRun_MissingYtDlp(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	cfg := config.Default()
	cfg.YtDlpPath = "definitely-not-yt-dlp"

	err := Run(context.Background(), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-yt-dlp")
}
