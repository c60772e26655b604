package ytdlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"tubescribe/internal/media"
)

var commandContext = exec.CommandContext

// Client defines the audio acquisition behaviour the pipeline consumes.
type Client interface {
	Probe(ctx context.Context, url string) (media.VideoInfo, error)
	DownloadAudio(ctx context.Context, url, destDir string) (string, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithAudioQuality sets the mp3 bitrate passed to yt-dlp.
func WithAudioQuality(quality string) Option {
	return func(c *CLI) {
		if quality != "" {
			c.audioQuality = quality
		}
	}
}

// WithCookiesFromBrowser pulls cookies from a browser profile for
// age-restricted or members-only videos.
func WithCookiesFromBrowser(browser string) Option {
	return func(c *CLI) { c.cookiesFromBrowser = browser }
}

// WithCookiesFile reads cookies from a Netscape-format cookie jar.
func WithCookiesFile(path string) Option {
	return func(c *CLI) { c.cookiesFile = path }
}

// WithVerbose disables yt-dlp's quiet flags for debugging.
func WithVerbose(verbose bool) Option {
	return func(c *CLI) { c.verbose = verbose }
}

// CLI wraps the yt-dlp command-line downloader.
type CLI struct {
	binary             string
	audioQuality       string
	cookiesFromBrowser string
	cookiesFile        string
	verbose            bool
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "yt-dlp", audioQuality: "192"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// probePayload is the subset of yt-dlp's --dump-json output we keep.
type probePayload struct {
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	Uploader   string  `json:"uploader"`
	UploadDate string  `json:"upload_date"`
}

// Probe fetches video metadata without downloading anything.
func (c *CLI) Probe(ctx context.Context, url string) (media.VideoInfo, error) {
	if strings.TrimSpace(url) == "" {
		return media.VideoInfo{}, errors.New("url required")
	}

	args := c.commonArgs()
	args = append(args, "--dump-json", "--no-download", "--no-playlist", url)

	out, err := c.output(ctx, args)
	if err != nil {
		return media.VideoInfo{}, fmt.Errorf("probe video: %w", err)
	}

	var payload probePayload
	if err := json.Unmarshal(out, &payload); err != nil {
		return media.VideoInfo{}, fmt.Errorf("parse video metadata: %w", err)
	}

	info := media.VideoInfo{
		Title:      payload.Title,
		Duration:   int64(payload.Duration),
		Uploader:   payload.Uploader,
		UploadDate: payload.UploadDate,
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}
	if info.Uploader == "" {
		info.Uploader = "Unknown"
	}
	if info.UploadDate == "" {
		info.UploadDate = "Unknown"
	}
	return info, nil
}

// DownloadAudio extracts the best audio track to an mp3 under destDir and
// returns the downloaded file path.
func (c *CLI) DownloadAudio(ctx context.Context, url, destDir string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", errors.New("url required")
	}
	if strings.TrimSpace(destDir) == "" {
		return "", errors.New("destination directory required")
	}

	template := filepath.Join(destDir, "%(id)s.%(ext)s")
	args := c.commonArgs()
	args = append(args,
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", c.audioQuality,
		"--output", template,
		"--no-playlist",
		"--no-simulate",
		"--print", "after_move:filepath",
		url,
	)

	out, err := c.output(ctx, args)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	path := lastLine(string(out))
	if path == "" {
		return "", errors.New("download audio: yt-dlp reported no output file")
	}
	return path, nil
}

func (c *CLI) commonArgs() []string {
	var args []string
	if !c.verbose {
		args = append(args, "--quiet", "--no-warnings")
	}
	switch {
	case c.cookiesFromBrowser != "":
		args = append(args, "--cookies-from-browser", c.cookiesFromBrowser)
	case c.cookiesFile != "":
		args = append(args, "--cookies", c.cookiesFile)
	}
	return args
}

func (c *CLI) output(ctx context.Context, args []string) ([]byte, error) {
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", c.binary, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", c.binary, err)
	}
	return out, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
