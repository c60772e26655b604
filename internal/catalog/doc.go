// Package catalog maintains the crash-resilient index of archived
// transcription runs.
//
// The index is a single JSON object at the output root mapping run IDs to
// entries. It is loaded once at construction and rewritten wholesale after
// each successful archive; a corrupted index is quarantined to a .bak
// sibling and the catalog restarts empty, leaving per-run artifact folders
// intact for manual recovery.
package catalog
