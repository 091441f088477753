package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/deeptube/internal/config"
	"github.com/ytget/deeptube/internal/download"
	"github.com/ytget/deeptube/internal/platform"
	"github.com/ytget/deeptube/internal/session"
	"github.com/ytget/deeptube/internal/ui"
)

// Version is set during build via -ldflags "-X github.com/ytget/deeptube/internal/app.Version=X.Y.Z"
var Version = "dev"

const (
	AppID = "com.ytget.deeptube"
)

// NewLogger builds the development logger used by the application
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// Run validates cfg, resolves the external tools, opens the main window and
// blocks until it is closed. Missing tools are reported before any window
// is shown.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.Level()
	logger, err := NewLogger(level)
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	defer logger.Sync()
	zap.RedirectStdLog(logger)
	zap.ReplaceGlobals(logger)

	log := logger.Sugar()
	log.Infow("DeepTube starting",
		"version", Version,
		"language", cfg.Language,
		"progress_interval", cfg.ProgressInterval,
	)

	ytdlpPath, err := download.ResolveExecutable(ctx, cfg.YtDlpPath, cfg.InstallYtDlp)
	if err != nil {
		return err
	}
	ffmpegPath, err := platform.LocateFFmpeg(cfg.FFmpegDir)
	if err != nil {
		return err
	}
	log.Infow("external tools resolved", "yt-dlp", ytdlpPath, "ffmpeg", ffmpegPath)

	if downloadsDir, err := platform.GetHomeDownloadsDir(); err != nil {
		log.Warnw("downloads directory unknown", "error", err)
	} else if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warnw("failed to ensure downloads directory", "path", downloadsDir, "error", err)
	}

	engine := download.NewYtDlpEngine(ytdlpPath, cfg.ProgressInterval, log)
	service := download.NewService(engine, log)

	fyneApp := fyneapp.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow("")
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	root := ui.NewRootUI(window, fyneApp, ui.Options{
		Language:   cfg.Language,
		ProjectURL: cfg.ProjectURL,
	}, log)
	controller := session.NewController(root, service, ffmpegPath, log)
	root.SetController(controller)

	window.ShowAndRun()

	if active := service.ActiveCount(); active > 0 {
		log.Warnw("window closed during a download; partial files may remain", "active", active)
	}
	log.Info("DeepTube shutdown")
	return nil
}
