package config

import (
	"fmt"
	"strconv"
	"strings"
)

// applyEnvOverrides layers the environment surface of the original tool on
// top of whatever the config file provided. All variables are optional.
func (c *Config) applyEnvOverrides(getenv func(string) string) error {
	if v := firstEnv(getenv, "TUBESCRIBE_OUTPUT_DIR", "TRANSCRIPTS_DIR"); v != "" {
		c.Paths.OutputDir = v
	}
	if v := strings.TrimSpace(getenv("TEMP_DIR")); v != "" {
		c.Paths.TempDir = v
	}
	if v := strings.TrimSpace(getenv("WHISPER_MODEL")); v != "" {
		c.Whisper.Model = v
	}
	if v := strings.TrimSpace(getenv("DEFAULT_LANGUAGE")); v != "" {
		c.Whisper.Language = v
	}
	if v := strings.TrimSpace(getenv("AUDIO_QUALITY")); v != "" {
		c.Downloader.AudioQuality = v
	}
	if v := strings.TrimSpace(getenv("COOKIES_FROM_BROWSER")); v != "" {
		c.Downloader.CookiesFromBrowser = v
	}
	if v := strings.TrimSpace(getenv("COOKIES_FILE")); v != "" {
		c.Downloader.CookiesFile = v
	}
	if v := strings.TrimSpace(getenv("MAX_VIDEO_DURATION")); v != "" {
		seconds, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_VIDEO_DURATION: %w", err)
		}
		c.Limits.MaxVideoDuration = seconds
	}
	if v := strings.TrimSpace(getenv("INCLUDE_TIMESTAMPS")); v != "" {
		c.Whisper.IncludeTimestamps = strings.EqualFold(v, "true")
	}
	if v := strings.TrimSpace(getenv("DEBUG_MODE")); strings.EqualFold(v, "true") {
		c.Logging.Level = "debug"
	}
	return nil
}

func firstEnv(getenv func(string) string, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
