package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tubescribe/internal/archive"
	"tubescribe/internal/catalog"
	"tubescribe/internal/config"
	"tubescribe/internal/logging"
	"tubescribe/internal/pipeline"
	"tubescribe/internal/services/whisper"
	"tubescribe/internal/services/ytdlp"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) store() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(cfg.Paths.OutputDir, logger), nil
}

// newPipeline wires the collaborators for a transcription run. The model
// argument overrides the configured whisper model when non-empty; the shell
// uses it for its `model <size>` command.
func (c *commandContext) newPipeline(model string) (*pipeline.Pipeline, *catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	opts := []ytdlp.Option{
		ytdlp.WithBinary(cfg.YtDlpBinary()),
		ytdlp.WithAudioQuality(cfg.Downloader.AudioQuality),
		ytdlp.WithVerbose(strings.EqualFold(cfg.Logging.Level, "debug")),
	}
	if cfg.Downloader.CookiesFromBrowser != "" {
		opts = append(opts, ytdlp.WithCookiesFromBrowser(cfg.Downloader.CookiesFromBrowser))
	}
	if cfg.Downloader.CookiesFile != "" {
		opts = append(opts, ytdlp.WithCookiesFile(cfg.Downloader.CookiesFile))
	}
	downloader := ytdlp.NewCLI(opts...)

	if model == "" {
		model = cfg.Whisper.Model
	}
	whisperCfg := whisper.Config{Model: model}
	if !cfg.AutoDetectLanguage() {
		whisperCfg.Language = cfg.Whisper.Language
	}
	recognizer := whisper.NewService(whisperCfg, cfg.WhisperBinary())

	store := catalog.NewStore(cfg.Paths.OutputDir, logger)
	p := pipeline.New(cfg, logger, downloader, recognizer, archive.New(store, logger))
	return p, store, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
