package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"tubescribe/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Requirement defines an external binary tubescribe relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

var lookPath = exec.LookPath

// Requirements returns the external binaries a transcription run needs.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     cfg.YtDlpBinary(),
			Description: "Required for audio download",
		},
		{
			Name:        "ffmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Required for audio extraction (yt-dlp post-processing)",
		},
		{
			Name:        "whisper",
			Command:     cfg.WhisperBinary(),
			Description: "Required for speech recognition",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Result {
	results := make([]Result, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		if cmd == "" {
			results = append(results, Result{Name: req.Name, Detail: "command not configured"})
			continue
		}
		if _, err := lookPath(cmd); err != nil {
			results = append(results, Result{Name: req.Name, Detail: fmt.Sprintf("binary %q not found", cmd)})
			continue
		}
		results = append(results, Result{Name: req.Name, Passed: true, Detail: cmd})
	}
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

var statfs = realStatfs

// CheckDiskSpace verifies that at least minFreeGiB are available at path.
func CheckDiskSpace(name, path string, minFreeGiB int) Result {
	freeBytes, err := statfs(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	freeGiB := float64(freeBytes) / (1 << 30)
	if freeGiB < float64(minFreeGiB) {
		return Result{Name: name, Detail: fmt.Sprintf("%.1f GiB free at %s, need %d GiB", freeGiB, path, minFreeGiB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%.1f GiB free", freeGiB)}
}

func realStatfs(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// Run executes the full preflight suite for a transcription attempt. The
// output directory must already exist (config.EnsureDirectories creates it).
func Run(cfg *config.Config) []Result {
	results := CheckBinaries(Requirements(cfg))
	results = append(results, CheckDirectoryAccess("output directory", cfg.Paths.OutputDir))
	results = append(results, CheckDiskSpace("disk space", cfg.Paths.OutputDir, cfg.Limits.MinFreeDiskGiB))
	return results
}

// Failed filters results down to the checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
