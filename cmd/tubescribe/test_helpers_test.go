package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tubescribe/internal/catalog"
	"tubescribe/internal/config"
	"tubescribe/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	store      *catalog.Store
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())

	configPath := filepath.Join(homeDir, ".config", "tubescribe", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		store:      testsupport.NewStore(t, cfg),
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\noutput_dir = %q\ntemp_dir = %q\n\n[whisper]\nmodel = %q\nlanguage = %q\n",
		cfg.Paths.OutputDir,
		cfg.Paths.TempDir,
		cfg.Whisper.Model,
		cfg.Whisper.Language,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func seedArchivedRun(t *testing.T, env *cliTestEnv, id, title, text string) catalog.Entry {
	t.Helper()

	folder := id + "_" + title
	runDir := filepath.Join(env.cfg.Paths.OutputDir, folder)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		t.Fatalf("mkdir run dir: %v", err)
	}
	txtPath := filepath.Join(runDir, "transcript.txt")
	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	entry := catalog.Entry{
		Title:         title,
		URL:           "https://youtube.com/watch?v=" + id,
		Folder:        folder,
		TxtFile:       txtPath,
		JSONFile:      filepath.Join(runDir, "transcript.json"),
		MetadataFile:  filepath.Join(runDir, "metadata.json"),
		TranscribedAt: "2024-06-01T12:00:00Z",
		Duration:      90,
	}
	testsupport.SeedEntry(t, env.store, id, entry)
	return entry
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
