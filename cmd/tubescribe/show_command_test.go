package main

import (
	"testing"
)

func TestShowByRunID(t *testing.T) {
	env := setupCLITestEnv(t)
	seedArchivedRun(t, env, "20240601_100000_aaaaaaaa", "Launch Recap", "we have liftoff")

	out, _, err := runCLI(t, []string{"show", "20240601_100000_aaaaaaaa"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Launch Recap")
	requireContains(t, out, "we have liftoff")
}

func TestShowByListingNumber(t *testing.T) {
	env := setupCLITestEnv(t)
	seedArchivedRun(t, env, "20240601_100000_aaaaaaaa", "Older Video", "older text")
	seedArchivedRun(t, env, "20240601_110000_bbbbbbbb", "Newer Video", "newer text")

	// Listing numbers are 1-based, newest first.
	out, _, err := runCLI(t, []string{"show", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("show 1: %v", err)
	}
	requireContains(t, out, "Newer Video")

	out, _, err = runCLI(t, []string{"show", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("show 2: %v", err)
	}
	requireContains(t, out, "Older Video")
}

func TestShowFullText(t *testing.T) {
	env := setupCLITestEnv(t)
	seedArchivedRun(t, env, "20240601_100000_aaaaaaaa", "Launch Recap", "we have liftoff")

	out, _, err := runCLI(t, []string{"show", "--text", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("show --text: %v", err)
	}
	if out != "we have liftoff\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShowUnknownID(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show", "20990101_000000_ffffffff"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown run ID")
	}

	_, _, err = runCLI(t, []string{"show", "7"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for out-of-range number")
	}
}
