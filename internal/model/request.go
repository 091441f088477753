package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Mode selects between a merged video download and an audio-only download
type Mode string

const (
	ModeVideo     Mode = "video"
	ModeAudioOnly Mode = "audio"
)

// Quality selector values accepted by the form
const (
	QualityBest  = "best"
	QualityWorst = "worst"
)

// HeightSuffix is appended to numeric quality selectors
const HeightSuffix = "p"

// AudioFormatBest means "whatever the best audio stream is", no container preference
const AudioFormatBest = "best"

// ExtensionTemplate lets the engine fill in the real extension of the stream it picked
const ExtensionTemplate = "%(ext)s"

// Selector options in the order they are offered to the user
var (
	QualityOptions     = []string{"360p", "480p", "720p", "1080p", "1440p", "2160p", QualityBest, QualityWorst}
	AudioFormatOptions = []string{AudioFormatBest, "aac", "flac", "mp3", "m4a", "opus", "vorbis", "wav"}
	VideoFormatOptions = []string{"mp4", "mkv", "webm"}
)

// Defaults preselected in the form
const (
	DefaultQuality     = "360p"
	DefaultAudioFormat = AudioFormatBest
	DefaultVideoFormat = "mp4"
	DefaultMode        = ModeVideo
)

var (
	ErrEmptyURL         = errors.New("source URL is empty")
	ErrEmptyDestination = errors.New("destination path is empty")
	ErrUnknownSelector  = errors.New("unknown selector value")
	ErrUnknownMode      = errors.New("unknown download mode")
)

// Request is a single download request assembled from the form. It is not
// modified once a fetch task has been started for it.
type Request struct {
	URL         string
	Mode        Mode
	Quality     string
	AudioFormat string
	VideoFormat string
	Destination string // chosen path, without extension
}

// Validate reports every problem with the request at once
func (r Request) Validate() error {
	var result error

	if strings.TrimSpace(r.URL) == "" {
		result = multierror.Append(result, ErrEmptyURL)
	}
	if strings.TrimSpace(r.Destination) == "" {
		result = multierror.Append(result, ErrEmptyDestination)
	}

	switch r.Mode {
	case ModeVideo:
		if !contains(QualityOptions, r.Quality) && !contains(QualityOptions, NormalizeHeight(r.Quality)) {
			result = multierror.Append(result, fmt.Errorf("quality %q: %w", r.Quality, ErrUnknownSelector))
		}
		if !contains(VideoFormatOptions, r.VideoFormat) {
			result = multierror.Append(result, fmt.Errorf("video format %q: %w", r.VideoFormat, ErrUnknownSelector))
		}
	case ModeAudioOnly:
		if !contains(AudioFormatOptions, r.AudioFormat) {
			result = multierror.Append(result, fmt.Errorf("audio format %q: %w", r.AudioFormat, ErrUnknownSelector))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("%q: %w", r.Mode, ErrUnknownMode))
	}

	return result
}

// Extension returns the extension the destination receives for the active mode.
// An audio request without container preference leaves it to the engine.
func (r Request) Extension() string {
	if r.Mode == ModeAudioOnly {
		if r.AudioFormat == AudioFormatBest {
			return ExtensionTemplate
		}
		return r.AudioFormat
	}
	return r.VideoFormat
}

// OutputPath returns the destination with the mode's extension appended.
// A period already present in the destination is kept as is.
func (r Request) OutputPath() string {
	return r.Destination + "." + r.Extension()
}

// NormalizeHeight turns a quality selector into a height constraint.
// "best" and "worst" pass through; anything else gets HeightSuffix exactly once.
func NormalizeHeight(quality string) string {
	if quality == QualityBest || quality == QualityWorst {
		return quality
	}
	if strings.HasSuffix(quality, HeightSuffix) {
		return quality
	}
	return quality + HeightSuffix
}

// HeightValue strips HeightSuffix from a height constraint ("720p" -> "720")
func HeightValue(constraint string) string {
	return strings.TrimSuffix(constraint, HeightSuffix)
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
