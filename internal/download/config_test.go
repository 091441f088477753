package download

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/deeptube/internal/model"
)

const testURL = "https://example.com/watch?v=abc"

func TestBuildFetchConfig_Video(t *testing.T) {
	req := model.Request{
		URL:         testURL,
		Mode:        model.ModeVideo,
		Quality:     "720p",
		AudioFormat: "mp3",
		VideoFormat: "mp4",
		Destination: "/tmp/out",
	}

	cfg, err := BuildFetchConfig(req, "/opt/deeptube/ffmpeg")
	require.NoError(t, err)

	assert.Equal(t, "720p", cfg.HeightConstraint)
	assert.Equal(t, "/tmp/out.mp4", cfg.OutputTemplate)
	assert.Equal(t, "bestvideo[height<=720]+bestaudio/best", cfg.Format)
	assert.Equal(t, "mp4", cfg.MergeOutputFormat)
	assert.Equal(t, "/opt/deeptube/ffmpeg", cfg.FFmpegLocation)
}

func TestBuildFetchConfig_Audio(t *testing.T) {
	req := model.Request{
		URL:         testURL,
		Mode:        model.ModeAudioOnly,
		Quality:     "720p",
		AudioFormat: "mp3",
		VideoFormat: "mp4",
		Destination: "/tmp/song",
	}

	cfg, err := BuildFetchConfig(req, "/usr/bin/ffmpeg")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/song.mp3", cfg.OutputTemplate)
	assert.Equal(t, "bestaudio[ext=mp3]/bestaudio", cfg.Format)
	assert.Empty(t, cfg.MergeOutputFormat)
	assert.Empty(t, cfg.HeightConstraint)
	assert.Equal(t, "/usr/bin/ffmpeg", cfg.FFmpegLocation)
}

func TestBuildFetchConfig_Selectors(t *testing.T) {
	tests := []struct {
		name   string
		req    model.Request
		format string
		output string
	}{
		{
			name:   "best quality",
			req:    model.Request{Mode: model.ModeVideo, Quality: "best", VideoFormat: "mkv"},
			format: VideoFormatBest,
			output: "/d/x.mkv",
		},
		{
			name:   "worst quality",
			req:    model.Request{Mode: model.ModeVideo, Quality: "worst", VideoFormat: "webm"},
			format: VideoFormatWorst,
			output: "/d/x.webm",
		},
		{
			name:   "2160p",
			req:    model.Request{Mode: model.ModeVideo, Quality: "2160p", VideoFormat: "mp4"},
			format: "bestvideo[height<=2160]+bestaudio/best",
			output: "/d/x.mp4",
		},
		{
			name:   "audio best",
			req:    model.Request{Mode: model.ModeAudioOnly, AudioFormat: "best"},
			format: AudioFormatAny,
			output: "/d/x.%(ext)s",
		},
		{
			name:   "audio opus",
			req:    model.Request{Mode: model.ModeAudioOnly, AudioFormat: "opus"},
			format: "bestaudio[ext=opus]/bestaudio",
			output: "/d/x.opus",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := test.req
			req.URL = testURL
			req.Destination = "/d/x"
			cfg, err := BuildFetchConfig(req, "")
			require.NoError(t, err)
			assert.Equal(t, test.format, cfg.Format)
			assert.Equal(t, test.output, cfg.OutputTemplate)
		})
	}
}

func TestBuildFetchConfig_Invalid(t *testing.T) {
	_, err := BuildFetchConfig(model.Request{Mode: model.ModeVideo, Quality: "720p", VideoFormat: "mp4"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrEmptyURL))
	assert.True(t, errors.Is(err, model.ErrEmptyDestination))
}
