// Package preflight verifies external binaries, directory permissions, and
// disk space before a transcription run starts, so failures surface before
// any download begins.
package preflight
