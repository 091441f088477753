package download

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/deeptube/internal/model"
)

// Engine defaults
const (
	DefaultExecutable       = "yt-dlp"
	DefaultProgressInterval = 250 * time.Millisecond
)

// YtDlpEngine fetches media by running yt-dlp through go-ytdlp
type YtDlpEngine struct {
	executable string
	interval   time.Duration
	log        *zap.SugaredLogger
}

// NewYtDlpEngine creates an engine running the given yt-dlp executable.
// An empty executable means yt-dlp is looked up on the search path.
func NewYtDlpEngine(executable string, interval time.Duration, log *zap.SugaredLogger) *YtDlpEngine {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	if log == nil {
		log = zap.S()
	}
	return &YtDlpEngine{
		executable: executable,
		interval:   interval,
		log:        log.Named("ytdlp"),
	}
}

// Fetch implements Engine
func (e *YtDlpEngine) Fetch(ctx context.Context, url string, cfg FetchConfig, onProgress ProgressFunc) (string, error) {
	dl := e.command(cfg)

	var (
		filenameMutex sync.Mutex
		filename      string
	)

	dl.ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
		if update.Filename != "" {
			filenameMutex.Lock()
			filename = update.Filename
			filenameMutex.Unlock()
		}
		if update.Status != ytdlp.ProgressStatusDownloading {
			return
		}
		if onProgress != nil {
			onProgress(sampleFromUpdate(&update))
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", err
	}

	// Progress reports name intermediate per-stream files when streams are
	// merged, so they are only consulted when the extension was left open
	if !strings.Contains(cfg.OutputTemplate, model.ExtensionTemplate) {
		return cfg.OutputTemplate, nil
	}
	if path := extractedFilename(result); path != "" {
		return path, nil
	}

	filenameMutex.Lock()
	defer filenameMutex.Unlock()
	return filename, nil
}

// extractedFilename returns the file yt-dlp reported in its extracted info, if any
func extractedFilename(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 || info[0].Filename == nil {
		return ""
	}
	return *info[0].Filename
}

// command configures yt-dlp from the fetch configuration
func (e *YtDlpEngine) command(cfg FetchConfig) *ytdlp.Command {
	dl := ytdlp.New().
		Format(cfg.Format).
		Output(cfg.OutputTemplate).
		NoPlaylist().
		ForceOverwrites()

	if cfg.MergeOutputFormat != "" {
		dl.MergeOutputFormat(cfg.MergeOutputFormat)
	}
	if cfg.FFmpegLocation != "" {
		dl.FFmpegLocation(cfg.FFmpegLocation)
	}
	if e.executable != "" {
		dl.SetExecutable(e.executable)
	}

	e.log.Debugw("yt-dlp configured",
		"format", cfg.Format,
		"output", cfg.OutputTemplate,
		"merge_output_format", cfg.MergeOutputFormat,
		"ffmpeg_location", cfg.FFmpegLocation,
	)
	return dl
}

// sampleFromUpdate prefers the byte ratio and falls back to yt-dlp's own
// rendered percentage when the total size is unknown
func sampleFromUpdate(update *ytdlp.ProgressUpdate) Sample {
	if update.TotalBytes > 0 {
		return RatioSample(float64(update.DownloadedBytes) / float64(update.TotalBytes))
	}
	return TextSample(update.PercentString())
}

// ResolveExecutable finds the yt-dlp executable: the configured path, the
// search path, or (when install is set) a copy fetched by go-ytdlp.
// It fails when none is available.
func ResolveExecutable(ctx context.Context, configured string, install bool) (string, error) {
	if configured != "" {
		path, err := exec.LookPath(configured)
		if err != nil {
			return "", fmt.Errorf("yt-dlp executable %q not usable: %w", configured, err)
		}
		return path, nil
	}

	if path, err := exec.LookPath(DefaultExecutable); err == nil {
		return path, nil
	}

	if !install {
		return "", fmt.Errorf("%s not found on the search path; install it or enable automatic installation", DefaultExecutable)
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to install %s: %w", DefaultExecutable, err)
	}
	return resolved.Executable, nil
}
