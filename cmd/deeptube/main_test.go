package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/deeptube/internal/config"
)

func runWithArgs(t *testing.T, args ...string) *config.Config {
	t.Helper()
	t.Setenv("DEEPTUBE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	var got *config.Config
	cliApp := newCLIApp(func(cfg *config.Config) error {
		got = cfg
		return nil
	})
	require.NoError(t, cliApp.Run(append([]string{"deeptube"}, args...)))
	require.NotNil(t, got)
	return got
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("DEEPTUBE_LANGUAGE", "ru")

	cfg := runWithArgs(t,
		"--ffmpeg-dir", "/opt/ffmpeg",
		"--yt-dlp", "/opt/yt-dlp",
		"--install-yt-dlp",
		"--progress-interval", "1s",
		"--log-level", "debug",
		"--language", "pt",
		"--project-url", "https://example.com",
	)

	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpegDir)
	assert.Equal(t, "/opt/yt-dlp", cfg.YtDlpPath)
	assert.True(t, cfg.InstallYtDlp)
	assert.Equal(t, time.Second, cfg.ProgressInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, "https://example.com", cfg.ProjectURL)
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	t.Setenv("DEEPTUBE_LANGUAGE", "ru")

	cfg := runWithArgs(t)

	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, config.DefaultProgressInterval, cfg.ProgressInterval)
	assert.Equal(t, config.DefaultProjectURL, cfg.ProjectURL)
}
