package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// OutputDir is the transcript archive root (catalog + run folders).
	OutputDir string `toml:"output_dir"`
	// TempDir receives downloaded audio before transcription. Empty means
	// the system temp directory.
	TempDir string `toml:"temp_dir"`
}

// Downloader contains configuration for the yt-dlp wrapper.
type Downloader struct {
	AudioQuality       string `toml:"audio_quality"`
	CookiesFromBrowser string `toml:"cookies_from_browser"`
	CookiesFile        string `toml:"cookies_file"`
}

// Whisper contains configuration for the speech-recognition wrapper.
type Whisper struct {
	// Model is one of tiny, base, small, medium, large.
	Model string `toml:"model"`
	// Language pins recognition to a language code; "none" enables
	// auto-detection.
	Language string `toml:"language"`
	// IncludeTimestamps controls whether the timestamped artifact is
	// produced alongside the plain transcript.
	IncludeTimestamps bool `toml:"include_timestamps"`
}

// Limits contains guard rails checked before a run starts.
type Limits struct {
	// MaxVideoDuration is the duration in seconds above which a warning is
	// logged before transcription proceeds.
	MaxVideoDuration int64 `toml:"max_video_duration"`
	// MinFreeDiskGiB is the free space required at the output root.
	MinFreeDiskGiB int `toml:"min_free_disk_gib"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for tubescribe.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Downloader Downloader `toml:"downloader"`
	Whisper    Whisper    `toml:"whisper"`
	Limits     Limits     `toml:"limits"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tubescribe/config.toml")
}

// Load locates, parses, and validates a configuration file, then applies
// environment overrides. The returned config has all path fields expanded
// and normalized to absolute paths.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(os.Getenv); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("tubescribe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	outputDir, err := expandPath(c.Paths.OutputDir)
	if err != nil {
		return err
	}
	c.Paths.OutputDir = outputDir

	if strings.TrimSpace(c.Paths.TempDir) == "" {
		c.Paths.TempDir = os.TempDir()
	}
	tempDir, err := expandPath(c.Paths.TempDir)
	if err != nil {
		return err
	}
	c.Paths.TempDir = tempDir

	c.Whisper.Model = strings.ToLower(strings.TrimSpace(c.Whisper.Model))
	c.Whisper.Language = strings.ToLower(strings.TrimSpace(c.Whisper.Language))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.TempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// AutoDetectLanguage reports whether the configured language requests
// whisper auto-detection.
func (c *Config) AutoDetectLanguage() bool {
	return c.Whisper.Language == "" || c.Whisper.Language == "none"
}

// YtDlpBinary returns the downloader executable name.
func (c *Config) YtDlpBinary() string {
	return "yt-dlp"
}

// WhisperBinary returns the speech-recognition executable name.
func (c *Config) WhisperBinary() string {
	return "whisper"
}

// FFmpegBinary returns the audio post-processing executable yt-dlp invokes.
func (c *Config) FFmpegBinary() string {
	return "ffmpeg"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
