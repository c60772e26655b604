package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.applyEnvOverrides(func(string) string { return "" }); err != nil {
		t.Fatalf("applyEnvOverrides: %v", err)
	}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Errorf("output dir not normalized to absolute: %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.TempDir == "" {
		t.Error("temp dir should default to the system temp dir")
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tubescribe.toml")
	content := strings.Join([]string{
		"[paths]",
		`output_dir = "` + filepath.Join(dir, "archive") + `"`,
		"[whisper]",
		`model = "small"`,
		"include_timestamps = false",
		"[limits]",
		"max_video_duration = 60",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved path %q to exist, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("model = %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.IncludeTimestamps {
		t.Error("include_timestamps should be false")
	}
	if cfg.Limits.MaxVideoDuration != 60 {
		t.Errorf("max duration = %d", cfg.Limits.MaxVideoDuration)
	}
	// Untouched sections keep defaults.
	if cfg.Downloader.AudioQuality != "192" {
		t.Errorf("audio quality = %q", cfg.Downloader.AudioQuality)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("absent config reported as existing")
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("model = %q", cfg.Whisper.Model)
	}
}

func TestLoadRejectsInvalidModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tubescribe.toml")
	if err := os.WriteFile(path, []byte("[whisper]\nmodel = \"enormous\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown model")
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"TRANSCRIPTS_DIR":    "/srv/transcripts",
		"WHISPER_MODEL":      "Medium",
		"MAX_VIDEO_DURATION": "120",
		"INCLUDE_TIMESTAMPS": "false",
		"DEBUG_MODE":         "true",
		"AUDIO_QUALITY":      "320",
	}
	cfg := Default()
	if err := cfg.applyEnvOverrides(func(key string) string { return env[key] }); err != nil {
		t.Fatalf("applyEnvOverrides: %v", err)
	}
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if cfg.Paths.OutputDir != "/srv/transcripts" {
		t.Errorf("output dir = %q", cfg.Paths.OutputDir)
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("model = %q (normalize should lowercase)", cfg.Whisper.Model)
	}
	if cfg.Limits.MaxVideoDuration != 120 {
		t.Errorf("max duration = %d", cfg.Limits.MaxVideoDuration)
	}
	if cfg.Whisper.IncludeTimestamps {
		t.Error("INCLUDE_TIMESTAMPS=false should disable timestamps")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("DEBUG_MODE should raise level to debug, got %q", cfg.Logging.Level)
	}
	if cfg.Downloader.AudioQuality != "320" {
		t.Errorf("audio quality = %q", cfg.Downloader.AudioQuality)
	}
}

func TestEnvOverrideRejectsBadDuration(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnvOverrides(func(key string) string {
		if key == "MAX_VIDEO_DURATION" {
			return "three hours"
		}
		return ""
	})
	if err == nil {
		t.Fatal("expected error for unparseable MAX_VIDEO_DURATION")
	}
}

func TestCookieOptionsMutuallyExclusive(t *testing.T) {
	cfg := Default()
	cfg.Downloader.CookiesFromBrowser = "firefox"
	cfg.Downloader.CookiesFile = "/tmp/cookies.txt"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for both cookie options")
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("sample config must parse and validate: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("sample model = %q", cfg.Whisper.Model)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/transcripts")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "transcripts") {
		t.Errorf("ExpandPath = %q", got)
	}
}
