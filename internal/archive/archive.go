package archive

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tubescribe/internal/catalog"
	"tubescribe/internal/logging"
	"tubescribe/internal/media"
	"tubescribe/internal/naming"
)

// Artifact file names inside a run folder.
const (
	TxtFileName         = "transcript.txt"
	TimestampedFileName = "transcript_timestamped.txt"
	JSONFileName        = "transcript.json"
	MetadataFileName    = "metadata.json"
)

// Result reports where an archived run landed.
type Result struct {
	RunID    string
	TxtPath  string
	JSONPath string
	Folder   string
}

// Archiver writes the artifact set for a completed transcription run and
// commits it to the catalog.
type Archiver struct {
	store  *catalog.Store
	logger *slog.Logger
	now    func() time.Time
}

// New constructs an Archiver committing runs to the given store.
func New(store *catalog.Store, logger *slog.Logger) *Archiver {
	return &Archiver{
		store:  store,
		logger: logging.NewComponentLogger(logger, "archive"),
		now:    time.Now,
	}
}

// runRecord is the canonical full-fidelity JSON artifact.
type runRecord struct {
	VideoInfo     media.VideoInfo  `json:"video_info"`
	URL           string           `json:"url"`
	TranscribedAt string           `json:"transcribed_at"`
	Transcript    media.Transcript `json:"transcript"`
}

// runMetadata is the denormalized per-run summary written next to the
// transcript so a run folder stays useful when moved out of the archive.
type runMetadata struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Uploader      string   `json:"uploader"`
	Duration      int64    `json:"duration"`
	TranscribedAt string   `json:"transcribed_at"`
	Language      string   `json:"language"`
	Files         runFiles `json:"files"`
}

type runFiles struct {
	TranscriptTxt         string  `json:"transcript_txt"`
	TranscriptTimestamped *string `json:"transcript_timestamped"`
	TranscriptJSON        string  `json:"transcript_json"`
}

// Archive persists one transcription run: it allocates a run ID, creates a
// fresh run folder, writes the artifact set, and commits the catalog entry
// last so a failed run never appears in listings. A crash mid-archive leaves
// at worst an orphaned folder with no catalog entry.
func (a *Archiver) Archive(info media.VideoInfo, tr media.Transcript, url string) (Result, error) {
	runID := naming.NewRunID()
	folderName := naming.FolderName(runID, naming.SanitizeTitle(info.Title))

	root := a.store.Root()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output root: %w", err)
	}

	folder := filepath.Join(root, folderName)
	// os.Mkdir, not MkdirAll: a name collision means the ID entropy failed
	// us and must surface instead of silently sharing a folder.
	if err := os.Mkdir(folder, 0o755); err != nil {
		return Result{}, fmt.Errorf("create run folder: %w", err)
	}

	txtPath := filepath.Join(folder, TxtFileName)
	jsonPath := filepath.Join(folder, JSONFileName)
	metadataPath := filepath.Join(folder, MetadataFileName)

	if err := os.WriteFile(txtPath, []byte(tr.FullText), 0o644); err != nil {
		return Result{}, fmt.Errorf("write transcript text: %w", err)
	}

	hasSegments := len(tr.Segments) > 0
	if hasSegments {
		var b strings.Builder
		for _, segment := range tr.Segments {
			b.WriteString(segment.Line())
			b.WriteByte('\n')
		}
		timestampedPath := filepath.Join(folder, TimestampedFileName)
		if err := os.WriteFile(timestampedPath, []byte(b.String()), 0o644); err != nil {
			return Result{}, fmt.Errorf("write timestamped transcript: %w", err)
		}
	}

	transcribedAt := a.now().Format(time.RFC3339)

	record := runRecord{
		VideoInfo:     info,
		URL:           url,
		TranscribedAt: transcribedAt,
		Transcript:    tr,
	}
	if err := writeJSON(jsonPath, record); err != nil {
		return Result{}, fmt.Errorf("write transcript json: %w", err)
	}

	language := tr.Language
	if language == "" {
		language = "unknown"
	}
	meta := runMetadata{
		Title:         info.Title,
		URL:           url,
		Uploader:      info.Uploader,
		Duration:      info.Duration,
		TranscribedAt: transcribedAt,
		Language:      language,
		Files: runFiles{
			TranscriptTxt:  TxtFileName,
			TranscriptJSON: JSONFileName,
		},
	}
	if hasSegments {
		name := TimestampedFileName
		meta.Files.TranscriptTimestamped = &name
	}
	if err := writeJSON(metadataPath, meta); err != nil {
		return Result{}, fmt.Errorf("write run metadata: %w", err)
	}

	entry := catalog.Entry{
		Title:         info.Title,
		URL:           url,
		Folder:        folderName,
		TxtFile:       txtPath,
		JSONFile:      jsonPath,
		MetadataFile:  metadataPath,
		TranscribedAt: transcribedAt,
		Duration:      info.Duration,
	}
	if err := a.store.Put(runID, entry); err != nil {
		return Result{}, err
	}

	a.logger.Info("archived transcript",
		logging.String(logging.FieldRunID, runID),
		logging.String("title", info.Title),
		logging.String(logging.FieldPath, folder),
		logging.Int("segments", len(tr.Segments)))

	return Result{RunID: runID, TxtPath: txtPath, JSONPath: jsonPath, Folder: folder}, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
