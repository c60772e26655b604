package media

import "fmt"

// VideoInfo holds the source video metadata reported by the downloader.
type VideoInfo struct {
	Title      string `json:"title"`
	Uploader   string `json:"uploader"`
	Duration   int64  `json:"duration"`
	UploadDate string `json:"upload_date"`
}

// Segment is a single time-aligned span of recognized speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Line renders the segment as a timestamped transcript line.
func (s Segment) Line() string {
	return fmt.Sprintf("[%s - %s] %s", FormatTimestamp(s.Start), FormatTimestamp(s.End), s.Text)
}

// Transcript is the formatted speech-recognition output handed to the
// archiver. It is treated as immutable once constructed.
type Transcript struct {
	FullText string    `json:"full_text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
}

// FormatTimestamp renders seconds as MM:SS, or HH:MM:SS for spans of an
// hour or more.
func FormatTimestamp(seconds float64) string {
	total := int64(seconds)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDuration renders a duration in whole seconds as a compact human
// readable string ("1h 2m 3s"). Zero reads as "Unknown" because yt-dlp
// reports zero for live or unavailable durations.
func FormatDuration(seconds int64) string {
	if seconds == 0 {
		return "Unknown"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
