package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tubescribe/internal/catalog"
	"tubescribe/internal/language"
	"tubescribe/internal/media"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var fullText bool

	cmd := &cobra.Command{
		Use:   "show <run-id|number>",
		Short: "Show an archived transcript",
		Long:  "Show an archived transcript by run ID or by its number in `tubescribe list`.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}

			id, entry, err := resolveEntry(store, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if fullText {
				data, err := os.ReadFile(entry.TxtFile)
				if err != nil {
					return fmt.Errorf("read transcript: %w", err)
				}
				fmt.Fprintln(out, strings.TrimRight(string(data), "\n"))
				return nil
			}

			printEntry(cmd, id, entry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullText, "text", false, "Print the full transcript text instead of run details")
	return cmd
}

// resolveEntry accepts either a run ID or a 1-based listing number.
func resolveEntry(store *catalog.Store, arg string) (string, catalog.Entry, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", catalog.Entry{}, fmt.Errorf("run ID or listing number is required")
	}

	if number, err := strconv.Atoi(arg); err == nil {
		summaries := store.List()
		if number < 1 || number > len(summaries) {
			return "", catalog.Entry{}, fmt.Errorf("entry %d out of range (only %d transcripts archived)", number, len(summaries))
		}
		arg = summaries[number-1].ID
	}

	entry, found := store.Get(arg)
	if !found {
		return "", catalog.Entry{}, fmt.Errorf("no archived transcript with run ID %q", arg)
	}
	return arg, entry, nil
}

func printEntry(cmd *cobra.Command, id string, entry catalog.Entry) {
	out := cmd.OutOrStdout()
	colorize := colorEnabled(out)

	for _, line := range headerLines(entry.Title, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, detailLine("Run ID", id, colorize))
	fmt.Fprintln(out, detailLine("URL", entry.URL, colorize))
	fmt.Fprintln(out, detailLine("Transcribed", formatCatalogDate(entry.TranscribedAt), colorize))
	fmt.Fprintln(out, detailLine("Duration", media.FormatDuration(entry.Duration), colorize))
	if code := metadataLanguage(entry.MetadataFile); code != "" {
		fmt.Fprintln(out, detailLine("Language", language.DisplayName(code), colorize))
	}
	fmt.Fprintln(out, detailLine("Transcript", entry.TxtFile, colorize))
	fmt.Fprintln(out, detailLine("JSON", entry.JSONFile, colorize))
	fmt.Fprintln(out, detailLine("Metadata", entry.MetadataFile, colorize))

	if data, err := os.ReadFile(entry.TxtFile); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, transcriptPreview(string(data)))
	}
}

// metadataLanguage pulls the detected language out of the per-run metadata
// file. Best effort; a missing or unreadable file just drops the line.
func metadataLanguage(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var meta struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return ""
	}
	return meta.Language
}
