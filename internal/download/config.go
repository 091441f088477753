package download

import (
	"fmt"

	"github.com/ytget/deeptube/internal/model"
)

// Format expression templates understood by yt-dlp
const (
	VideoFormatTemplate = "bestvideo[height<=%s]+bestaudio/best"
	VideoFormatBest     = "bestvideo+bestaudio/best"
	VideoFormatWorst    = "worstvideo+worstaudio/worst"
	AudioFormatTemplate = "bestaudio[ext=%s]/bestaudio"
	AudioFormatAny      = "bestaudio/best"
)

// FetchConfig is the option set handed to the engine for one request.
// It is built once and not modified afterwards.
type FetchConfig struct {
	// Format is the yt-dlp format-selection expression
	Format string
	// HeightConstraint is the normalized quality selector ("720p", "best"); video mode only
	HeightConstraint string
	// OutputTemplate is the destination with its extension appended
	OutputTemplate string
	// MergeOutputFormat forces the container of merged video+audio; video mode only
	MergeOutputFormat string
	// FFmpegLocation is the resolved path of the transcoding binary
	FFmpegLocation string
}

// BuildFetchConfig derives the engine configuration from a validated request
func BuildFetchConfig(req model.Request, ffmpegLocation string) (FetchConfig, error) {
	if err := req.Validate(); err != nil {
		return FetchConfig{}, fmt.Errorf("invalid download request: %w", err)
	}

	cfg := FetchConfig{
		OutputTemplate: req.OutputPath(),
		FFmpegLocation: ffmpegLocation,
	}

	switch req.Mode {
	case model.ModeVideo:
		cfg.HeightConstraint = model.NormalizeHeight(req.Quality)
		cfg.Format = videoFormat(cfg.HeightConstraint)
		cfg.MergeOutputFormat = req.VideoFormat
	case model.ModeAudioOnly:
		cfg.Format = audioFormat(req.AudioFormat)
	}

	return cfg, nil
}

func videoFormat(height string) string {
	switch height {
	case model.QualityBest:
		return VideoFormatBest
	case model.QualityWorst:
		return VideoFormatWorst
	default:
		return fmt.Sprintf(VideoFormatTemplate, model.HeightValue(height))
	}
}

func audioFormat(format string) string {
	if format == model.AudioFormatBest {
		return AudioFormatAny
	}
	return fmt.Sprintf(AudioFormatTemplate, format)
}
