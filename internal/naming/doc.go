// Package naming derives collision-resistant run identifiers and
// filesystem-safe folder names for archived transcripts.
package naming
