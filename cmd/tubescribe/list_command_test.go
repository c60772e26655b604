package main

import (
	"strings"
	"testing"
)

func TestListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No transcripts archived yet")
}

func TestListNewestFirst(t *testing.T) {
	env := setupCLITestEnv(t)
	seedArchivedRun(t, env, "20240601_100000_aaaaaaaa", "Older Video", "older")
	seedArchivedRun(t, env, "20240601_110000_bbbbbbbb", "Newer Video", "newer")

	out, _, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Older Video")
	requireContains(t, out, "Newer Video")
	if strings.Index(out, "Newer Video") > strings.Index(out, "Older Video") {
		t.Fatalf("expected newest entry first:\n%s", out)
	}
	for _, header := range []string{"#", "Transcribed", "Title", "Duration", "Run ID"} {
		requireContains(t, out, header)
	}
	requireContains(t, out, "1m 30s")
}

func TestListLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	seedArchivedRun(t, env, "20240601_100000_aaaaaaaa", "Older Video", "older")
	seedArchivedRun(t, env, "20240601_110000_bbbbbbbb", "Newer Video", "newer")

	out, _, err := runCLI(t, []string{"list", "--limit", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("list --limit: %v", err)
	}
	requireContains(t, out, "Newer Video")
	if strings.Contains(out, "Older Video") {
		t.Fatalf("expected only the newest entry:\n%s", out)
	}
}
