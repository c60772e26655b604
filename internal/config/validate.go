package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWhisper(); err != nil {
		return err
	}
	if err := c.validateDownloader(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateWhisper() error {
	if !slices.Contains(WhisperModels, c.Whisper.Model) {
		return fmt.Errorf("whisper.model must be one of %s (got %q)",
			strings.Join(WhisperModels, ", "), c.Whisper.Model)
	}
	return nil
}

func (c *Config) validateDownloader() error {
	if c.Downloader.CookiesFromBrowser != "" && c.Downloader.CookiesFile != "" {
		return errors.New("downloader.cookies_from_browser and downloader.cookies_file are mutually exclusive")
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.Limits.MaxVideoDuration <= 0 {
		return errors.New("limits.max_video_duration must be positive")
	}
	if c.Limits.MinFreeDiskGiB < 0 {
		return errors.New("limits.min_free_disk_gib must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
