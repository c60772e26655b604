package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"tubescribe/internal/logging"
)

// FileName is the catalog index file kept at the output root. Run folders
// carry their own metadata.json with a different, per-run schema.
const FileName = "metadata.json"

// backupSuffix is appended to a corrupted catalog file when it is moved
// aside. A single backup slot: a second corruption overwrites the first.
const backupSuffix = ".bak"

// Entry is the catalog record for one archived run. Entries are created
// exactly once when a run is archived and never mutated afterwards.
type Entry struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Folder        string `json:"folder"`
	TxtFile       string `json:"txt_file"`
	JSONFile      string `json:"json_file"`
	MetadataFile  string `json:"metadata_file"`
	TranscribedAt string `json:"transcribed_at"`
	Duration      int64  `json:"duration"`
}

// Summary is the listing row exposed to display code.
type Summary struct {
	ID    string
	Title string
	URL   string
	File  string
	Date  string
}

// Store owns the catalog index: the mapping from run ID to Entry, loaded
// once at construction and rewritten in full after every archived run.
type Store struct {
	root   string
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]Entry
}

// NewStore loads the catalog at <root>/metadata.json. Construction never
// fails on catalog state: a missing file yields an empty catalog, and a
// corrupted or unreadable file is quarantined to a .bak sibling (logged,
// then forgotten) so a damaged index can never block startup. Per-run
// artifact folders are untouched by recovery.
func NewStore(root string, logger *slog.Logger) *Store {
	logger = logging.NewComponentLogger(logger, "catalog")

	s := &Store{
		root:    root,
		path:    filepath.Join(root, FileName),
		logger:  logger,
		entries: make(map[string]Entry),
	}
	s.load()
	return s
}

// Root returns the output root the store was constructed with.
func (s *Store) Root() string { return s.root }

// Path returns the catalog file path.
func (s *Store) Path() string { return s.path }

// Put inserts an entry under the given run ID and persists the full
// catalog. The insert is the final commit of an archived run, so a write
// failure here is surfaced to the caller rather than swallowed.
func (s *Store) Put(id string, entry Entry) error {
	if id == "" {
		return errors.New("run ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry
	if err := s.save(); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	s.logger.Debug("catalog entry committed",
		logging.String(logging.FieldRunID, id),
		logging.String("title", entry.Title),
		logging.Int("entries", len(s.entries)))
	return nil
}

// Save rewrites the catalog file from the in-memory state.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// List returns summaries for every archived run, most recent first. Run IDs
// carry a fixed-width timestamp prefix, so descending lexicographic order is
// reverse chronological order.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.entries))
	for id, entry := range s.entries {
		summaries = append(summaries, Summary{
			ID:    id,
			Title: entry.Title,
			URL:   entry.URL,
			File:  entry.TxtFile,
			Date:  entry.TranscribedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID > summaries[j].ID
	})
	return summaries
}

// Get returns the full entry for a run ID.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, found := s.entries[id]
	return entry, found
}

// TranscriptPath returns the plain-text transcript path for a run ID.
func (s *Store) TranscriptPath(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, found := s.entries[id]
	if !found {
		return "", false
	}
	return entry.TxtFile, true
}

// Folder returns the absolute run folder path for a run ID.
func (s *Store) Folder(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, found := s.entries[id]
	if !found {
		return "", false
	}
	return filepath.Join(s.root, entry.Folder), true
}

// Count returns the number of archived runs.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// load reads the catalog from disk, quarantining anything unusable.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return // fresh start
		}
		s.quarantine(err)
		return
	}

	entries := make(map[string]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		s.quarantine(err)
		return
	}

	s.entries = entries
	s.logger.Debug("loaded catalog",
		logging.Int("entries", len(s.entries)),
		logging.String(logging.FieldPath, s.path))
}

// quarantine moves the unusable catalog file to its backup slot and resets
// the in-memory catalog. The backup rename is best effort: its failure is
// logged and discarded so recovery can never escalate into a startup error.
func (s *Store) quarantine(cause error) {
	backupPath := s.path + backupSuffix
	if err := os.Rename(s.path, backupPath); err != nil {
		s.logger.Warn("failed to back up corrupted catalog file",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err))
	} else {
		s.logger.Warn("corrupted catalog file moved aside, starting with an empty catalog",
			logging.String(logging.FieldPath, s.path),
			logging.String("backup_path", backupPath),
			logging.Error(cause))
	}
	s.entries = make(map[string]Entry)
}

// save writes the catalog to disk atomically via a temp-file rename, so a
// failed write can never leave a half-written index behind.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create output root: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
