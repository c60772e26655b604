package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

const detailLabelWidth = 12

// detailLine renders one "Label: value" row of run or entry details, the
// shape shared by `transcribe` output, `show`, and `config show`.
func detailLine(label, value string, colorize bool) string {
	padded := fmt.Sprintf("%-*s", detailLabelWidth, label+":")
	if colorize {
		padded = ansiCyan + padded + ansiReset
	}
	return "  " + padded + " " + value
}

// checkLine renders one environment check outcome for `status`.
func checkLine(name string, passed bool, detail string, colorize bool) string {
	mark := "ok"
	color := ansiGreen
	if !passed {
		mark = "FAIL"
		color = ansiRed
	}
	if colorize {
		mark = color + mark + ansiReset
	}
	line := fmt.Sprintf("  [%s] %s", mark, name)
	if detail != "" {
		line += " - " + detail
	}
	return line
}

// errorLine renders non-fatal feedback inside the interactive shell.
func errorLine(message string, colorize bool) string {
	prefix := "error:"
	if colorize {
		prefix = ansiRed + prefix + ansiReset
	}
	return "  " + prefix + " " + message
}

// headerLines renders a heading followed by a rule of matching width.
func headerLines(title string, colorize bool) []string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("-", len([]rune(title)))
	if colorize {
		title = ansiCyan + title + ansiReset
	}
	return []string{title, rule}
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
