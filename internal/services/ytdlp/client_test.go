package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"testing"
)

func stubCommand(t *testing.T, mode string, captured *[][]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if captured != nil {
			*captured = append(*captured, append([]string(nil), args...))
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "YTDLP_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() { commandContext = original })
}

func TestNewCLIOptions(t *testing.T) {
	cli := NewCLI(WithBinary("/opt/yt-dlp"), WithAudioQuality("320"), WithCookiesFile("/tmp/jar"))
	if cli.binary != "/opt/yt-dlp" {
		t.Errorf("binary = %q", cli.binary)
	}
	if cli.audioQuality != "320" {
		t.Errorf("audioQuality = %q", cli.audioQuality)
	}
	if cli.cookiesFile != "/tmp/jar" {
		t.Errorf("cookiesFile = %q", cli.cookiesFile)
	}
}

func TestProbeRequiresURL(t *testing.T) {
	cli := NewCLI()
	if _, err := cli.Probe(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestProbeParsesMetadata(t *testing.T) {
	var captured [][]string
	stubCommand(t, "probe", &captured)

	cli := NewCLI()
	info, err := cli.Probe(context.Background(), "https://youtu.be/x")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if info.Title != "Test Video" {
		t.Errorf("title = %q", info.Title)
	}
	if info.Duration != 125 {
		t.Errorf("duration = %d", info.Duration)
	}
	if info.Uploader != "Channel" {
		t.Errorf("uploader = %q", info.Uploader)
	}
	if info.UploadDate != "20260105" {
		t.Errorf("upload date = %q", info.UploadDate)
	}

	args := captured[0]
	if !slices.Contains(args, "--dump-json") || !slices.Contains(args, "--no-download") {
		t.Errorf("probe args missing dump flags: %v", args)
	}
}

func TestProbeFillsUnknownFields(t *testing.T) {
	stubCommand(t, "probe-sparse", nil)

	cli := NewCLI()
	info, err := cli.Probe(context.Background(), "https://youtu.be/x")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Title != "Unknown" || info.Uploader != "Unknown" || info.UploadDate != "Unknown" {
		t.Errorf("sparse metadata not defaulted: %+v", info)
	}
	if info.Duration != 0 {
		t.Errorf("duration = %d", info.Duration)
	}
}

func TestDownloadAudioArgsAndResult(t *testing.T) {
	var captured [][]string
	stubCommand(t, "download", &captured)

	cli := NewCLI(WithAudioQuality("320"), WithCookiesFromBrowser("firefox"))
	path, err := cli.DownloadAudio(context.Background(), "https://youtu.be/x", "/tmp/scratch")
	if err != nil {
		t.Fatalf("DownloadAudio: %v", err)
	}
	if path != "/tmp/scratch/abc123.mp3" {
		t.Errorf("path = %q", path)
	}

	args := captured[0]
	for _, want := range []string{"--extract-audio", "--audio-format", "mp3", "--audio-quality", "320", "--cookies-from-browser", "firefox"} {
		if !slices.Contains(args, want) {
			t.Errorf("download args missing %q: %v", want, args)
		}
	}
}

func TestDownloadAudioRequiresDestDir(t *testing.T) {
	cli := NewCLI()
	if _, err := cli.DownloadAudio(context.Background(), "https://youtu.be/x", ""); err == nil {
		t.Fatal("expected error for empty destination")
	}
}

func TestOutputSurfacesStderr(t *testing.T) {
	stubCommand(t, "fail", nil)

	cli := NewCLI()
	_, err := cli.Probe(context.Background(), "https://youtu.be/x")
	if err == nil {
		t.Fatal("expected probe failure")
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	switch os.Getenv("YTDLP_HELPER_MODE") {
	case "probe":
		fmt.Println(`{"title":"Test Video","duration":125.3,"uploader":"Channel","upload_date":"20260105"}`)
	case "probe-sparse":
		fmt.Println(`{}`)
	case "download":
		fmt.Println("/tmp/scratch/abc123.mp3")
	case "fail":
		fmt.Fprintln(os.Stderr, "ERROR: unable to extract video data")
		os.Exit(1)
	}
}
