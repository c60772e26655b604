// Package archive persists completed transcription runs: artifact files in
// a fresh per-run folder plus the catalog commit that makes the run visible.
package archive
