package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "DEEPTUBE"
	appName      = "deeptube"
	fileName     = "config.yaml"
)

// Default values
const (
	DefaultProgressInterval = 250 * time.Millisecond
	DefaultLogLevel         = "info"
	DefaultLanguage         = "en"
	DefaultProjectURL       = "https://github.com/59rice/Deeptube"
	DefaultWindowWidth      = 480
	DefaultWindowHeight     = 360
)

// SupportedLanguages lists the languages the interface is translated to
var SupportedLanguages = []string{"en", "ru", "pt"}

// Config is the startup configuration. It is read once and never written back.
type Config struct {
	FFmpegDir        string        `envconfig:"DEEPTUBE_FFMPEG_DIR" yaml:"ffmpegDir"`
	YtDlpPath        string        `envconfig:"DEEPTUBE_YTDLP_PATH" yaml:"ytDlpPath"`
	InstallYtDlp     bool          `envconfig:"DEEPTUBE_INSTALL_YTDLP" yaml:"installYtDlp"`
	ProgressInterval time.Duration `envconfig:"DEEPTUBE_PROGRESS_INTERVAL" yaml:"progressInterval"`
	LogLevel         string        `envconfig:"DEEPTUBE_LOG_LEVEL" yaml:"logLevel"`
	Language         string        `envconfig:"DEEPTUBE_LANGUAGE" yaml:"language"`
	ProjectURL       string        `envconfig:"DEEPTUBE_PROJECT_URL" yaml:"projectURL"`
	WindowWidth      int           `envconfig:"DEEPTUBE_WINDOW_WIDTH" yaml:"windowWidth"`
	WindowHeight     int           `envconfig:"DEEPTUBE_WINDOW_HEIGHT" yaml:"windowHeight"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		ProgressInterval: DefaultProgressInterval,
		LogLevel:         DefaultLogLevel,
		Language:         DefaultLanguage,
		ProjectURL:       DefaultProjectURL,
		WindowWidth:      DefaultWindowWidth,
		WindowHeight:     DefaultWindowHeight,
	}
}

// Load starts from Default, applies the config file if there is one, then
// environment variables prefixed with DEEPTUBE_.
func Load() (*Config, error) {
	c := Default()

	configFile, err := FilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling config file %s: %w", configFile, err)
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

// FilePath returns $DEEPTUBE_CONFIG_FILE or the per-user default location
func FilePath() (string, error) {
	if configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE"); configFile != "" {
		return configFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, appName, fileName), nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var result error

	if c.ProgressInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("progressInterval / %s_PROGRESS_INTERVAL must be positive, got %s", envVarPrefix, c.ProgressInterval))
	}

	if _, err := c.Level(); err != nil {
		result = multierror.Append(result, fmt.Errorf("logLevel / %s_LOG_LEVEL: %w", envVarPrefix, err))
	}

	if !isSupportedLanguage(c.Language) {
		result = multierror.Append(result, fmt.Errorf("language / %s_LANGUAGE: unsupported language %q (supported: %v)", envVarPrefix, c.Language, SupportedLanguages))
	}

	if u, err := url.Parse(c.ProjectURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("projectURL / %s_PROJECT_URL: %q is not an http(s) URL", envVarPrefix, c.ProjectURL))
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		result = multierror.Append(result, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}

	if c.FFmpegDir != "" {
		if info, err := os.Stat(c.FFmpegDir); err != nil {
			result = multierror.Append(result, fmt.Errorf("ffmpegDir / %s_FFMPEG_DIR: %w", envVarPrefix, err))
		} else if !info.IsDir() {
			result = multierror.Append(result, fmt.Errorf("ffmpegDir / %s_FFMPEG_DIR: %s is not a directory", envVarPrefix, c.FFmpegDir))
		}
	}

	return result
}

// Level parses LogLevel
func (c *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, err
	}
	return level, nil
}

func isSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
