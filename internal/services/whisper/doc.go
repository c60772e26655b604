// Package whisper wraps the whisper command-line transcriber and shapes its
// raw output into the transcript record the archiver persists.
package whisper
