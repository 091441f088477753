package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/ytget/deeptube/internal/app"
	"github.com/ytget/deeptube/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cliApp := newCLIApp(func(cfg *config.Config) error {
		return app.Run(ctx, cfg)
	})
	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCLIApp builds the command line. Flags override the config file and the
// environment; run receives the merged configuration.
func newCLIApp(run func(cfg *config.Config) error) *cli.App {
	return &cli.App{
		Name:    "deeptube",
		Usage:   "download YouTube videos and audio with yt-dlp and ffmpeg",
		Version: app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ffmpeg-dir",
				Usage: "look for ffmpeg in `DIR` first",
			},
			&cli.StringFlag{
				Name:  "yt-dlp",
				Usage: "run the yt-dlp executable at `PATH`",
			},
			&cli.BoolFlag{
				Name:  "install-yt-dlp",
				Usage: "download yt-dlp when it is not found",
			},
			&cli.DurationFlag{
				Name:  "progress-interval",
				Usage: "how often the engine reports progress",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "interface language: en, ru or pt",
			},
			&cli.StringFlag{
				Name:  "project-url",
				Usage: "page opened by the link button",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(c, cfg)
			return run(cfg)
		},
		HideHelpCommand: true,
	}
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("ffmpeg-dir") {
		cfg.FFmpegDir = c.String("ffmpeg-dir")
	}
	if c.IsSet("yt-dlp") {
		cfg.YtDlpPath = c.String("yt-dlp")
	}
	if c.IsSet("install-yt-dlp") {
		cfg.InstallYtDlp = c.Bool("install-yt-dlp")
	}
	if c.IsSet("progress-interval") {
		cfg.ProgressInterval = c.Duration("progress-interval")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("project-url") {
		cfg.ProjectURL = c.String("project-url")
	}
}
