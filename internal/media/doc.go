// Package media defines the typed records exchanged between the downloader,
// the transcriber, and the archiver.
package media
