// Package ytdlp wraps the yt-dlp command-line downloader behind the narrow
// acquisition interface the transcription pipeline consumes.
package ytdlp
