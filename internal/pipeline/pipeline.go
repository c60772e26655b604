package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"tubescribe/internal/archive"
	"tubescribe/internal/config"
	"tubescribe/internal/logging"
	"tubescribe/internal/media"
	"tubescribe/internal/preflight"
	"tubescribe/internal/services/whisper"
	"tubescribe/internal/services/ytdlp"
)

var youtubePattern = regexp.MustCompile(`^(https?://)?(www\.|m\.)?(youtube\.com|youtu\.be)/`)

// IsYouTubeURL reports whether the input looks like a YouTube video URL.
func IsYouTubeURL(input string) bool {
	return youtubePattern.MatchString(strings.TrimSpace(input))
}

// Recognizer is the speech-to-text collaborator.
type Recognizer interface {
	Transcribe(ctx context.Context, audioPath, outputDir string) (whisper.Result, error)
}

// Outcome reports a completed run.
type Outcome struct {
	Info       media.VideoInfo
	Transcript media.Transcript
	Archive    archive.Result
}

// Pipeline executes one URL end to end: preflight, probe, download,
// transcribe, archive. Runs are strictly sequential; the pipeline holds no
// state between calls beyond its collaborators.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	downloader ytdlp.Client
	recognizer Recognizer
	archiver   *archive.Archiver

	preflightFn func(*config.Config) []preflight.Result
}

// New constructs a Pipeline from its collaborators.
func New(cfg *config.Config, logger *slog.Logger, downloader ytdlp.Client, recognizer Recognizer, archiver *archive.Archiver) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		logger:      logging.NewComponentLogger(logger, "pipeline"),
		downloader:  downloader,
		recognizer:  recognizer,
		archiver:    archiver,
		preflightFn: preflight.Run,
	}
}

// Process transcribes and archives a single video URL. Any failure before
// the archive commit leaves the catalog untouched; cancellation mid-run
// behaves like a crash (at worst an orphaned temp file or run folder).
func (p *Pipeline) Process(ctx context.Context, url string) (Outcome, error) {
	var outcome Outcome

	if failed := preflight.Failed(p.preflightFn(p.cfg)); len(failed) > 0 {
		details := make([]string, 0, len(failed))
		for _, result := range failed {
			details = append(details, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
		return outcome, fmt.Errorf("preflight failed: %s", strings.Join(details, "; "))
	}

	p.logger.Info("fetching video information", logging.String(logging.FieldURL, url))
	info, err := p.downloader.Probe(ctx, url)
	if err != nil {
		return outcome, fmt.Errorf("fetch video info: %w", err)
	}
	outcome.Info = info

	if info.Duration > p.cfg.Limits.MaxVideoDuration {
		p.logger.Warn("video exceeds configured duration limit, transcription may take a long time",
			logging.String("title", info.Title),
			logging.Int64("duration_seconds", info.Duration),
			logging.Int64("limit_seconds", p.cfg.Limits.MaxVideoDuration))
	}

	p.logger.Info("downloading audio",
		logging.String("title", info.Title),
		logging.String("uploader", info.Uploader))
	audioPath, err := p.downloader.DownloadAudio(ctx, url, p.cfg.Paths.TempDir)
	if err != nil {
		return outcome, fmt.Errorf("download audio: %w", err)
	}
	defer p.cleanupScratch(audioPath)

	p.logger.Info("transcribing audio",
		logging.String(logging.FieldPath, audioPath))
	raw, err := p.recognizer.Transcribe(ctx, audioPath, p.cfg.Paths.TempDir)
	if err != nil {
		return outcome, fmt.Errorf("transcribe audio: %w", err)
	}

	transcript := whisper.FormatTranscript(raw, p.cfg.Whisper.IncludeTimestamps)
	outcome.Transcript = transcript

	result, err := p.archiver.Archive(info, transcript, url)
	if err != nil {
		return outcome, fmt.Errorf("archive transcript: %w", err)
	}
	outcome.Archive = result

	p.logger.Info("run complete",
		logging.String(logging.FieldRunID, result.RunID),
		logging.String(logging.FieldPath, result.Folder))
	return outcome, nil
}

// cleanupScratch removes the downloaded audio and the whisper result file
// next to it. Best effort: a leftover temp file never fails a finished run.
func (p *Pipeline) cleanupScratch(audioPath string) {
	if audioPath == "" {
		return
	}
	base := filepath.Base(audioPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, path := range []string{audioPath, filepath.Join(filepath.Dir(audioPath), stem+".json")} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.logger.Debug("could not remove scratch file",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
		}
	}
}
