package naming

import (
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// runIDTimeLayout is the sortable second-resolution prefix of every run ID.
// Fixed-width, so lexicographic order on IDs equals chronological order.
const runIDTimeLayout = "20060102_150405"

// maxTitleRunes caps the sanitized title fragment used in folder names.
const maxTitleRunes = 100

var nowFunc = time.Now

// NewRunID allocates a catalog key for a new run: a wall-clock timestamp
// prefix plus eight hex characters of random entropy. Two runs started in
// the same second still receive distinct IDs; collisions are treated as
// negligible and not checked.
func NewRunID() string {
	id := uuid.New()
	suffix := hex.EncodeToString(id[:4])
	return nowFunc().Format(runIDTimeLayout) + "_" + suffix
}

// SanitizeTitle reduces a video title to a filesystem-safe fragment.
// Alphanumerics, spaces, hyphens, and underscores are kept; everything else
// is dropped. Trailing whitespace is trimmed and the result is capped at
// 100 runes. An empty result is valid; FolderName falls back to the bare ID.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), " \t")
	runes := []rune(safe)
	if len(runes) > maxTitleRunes {
		safe = string(runes[:maxTitleRunes])
	}
	return safe
}

// FolderName composes the on-disk folder name for a run. The run ID alone
// carries the collision resistance; the title fragment is decoration.
func FolderName(runID, safeTitle string) string {
	if safeTitle == "" {
		return runID
	}
	return runID + "_" + safeTitle
}
