// Package language renders detected speech-recognition language codes for
// display.
package language
