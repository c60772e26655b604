// Package pipeline orchestrates a full transcription run: environment
// preflight, video probing, audio download, speech recognition, and the
// final archive commit. It also provides the per-archive instance lock
// used by interactive sessions.
package pipeline
