package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tubescribe/internal/media"
)

// DefaultModel is used when no model size is configured.
const DefaultModel = "base"

// Config holds the recognition settings for a Service.
type Config struct {
	// Model is the whisper model size selector (tiny..large).
	Model string
	// Language pins recognition to a language code; empty enables
	// auto-detection.
	Language string
}

// Service wraps the whisper command-line transcriber.
type Service struct {
	cfg           Config
	binary        string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a whisper service with the given configuration.
func NewService(cfg Config, binary string) *Service {
	if binary == "" {
		binary = "whisper"
	}
	return &Service{cfg: cfg, binary: binary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return DefaultModel
}

// RawSegment is one time-aligned span as reported by whisper.
type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the parsed recognition output for one audio file.
type Result struct {
	Text     string       `json:"text"`
	Segments []RawSegment `json:"segments"`
	Language string       `json:"language"`
}

// Transcribe runs whisper over the audio file and parses the JSON result it
// writes into outputDir.
func (s *Service) Transcribe(ctx context.Context, audioPath, outputDir string) (Result, error) {
	var result Result

	if audioPath == "" {
		return result, fmt.Errorf("transcribe: audio path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(audioPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return result, fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	args := []string{
		audioPath,
		"--model", s.Model(),
		"--output_dir", outputDir,
		"--output_format", "json",
		"--fp16", "False",
		"--verbose", "False",
	}
	if s.cfg.Language != "" {
		args = append(args, "--language", s.cfg.Language)
	}

	if err := s.run(ctx, s.binary, args...); err != nil {
		return result, fmt.Errorf("transcribe: %w", err)
	}

	base := filepath.Base(audioPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	resultPath := filepath.Join(outputDir, stem+".json")

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return result, fmt.Errorf("transcribe: read result: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("transcribe: parse result: %w", err)
	}
	return result, nil
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// FormatTranscript shapes a raw recognition result into the record the
// archiver persists. Segments are dropped entirely when timestamps are
// disabled; a missing language code becomes "unknown".
func FormatTranscript(result Result, includeTimestamps bool) media.Transcript {
	transcript := media.Transcript{
		FullText: strings.TrimSpace(result.Text),
		Language: result.Language,
	}
	if transcript.Language == "" {
		transcript.Language = "unknown"
	}
	if !includeTimestamps {
		return transcript
	}
	for _, segment := range result.Segments {
		transcript.Segments = append(transcript.Segments, media.Segment{
			Start: segment.Start,
			End:   segment.End,
			Text:  strings.TrimSpace(segment.Text),
		})
	}
	return transcript
}
