package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tubescribe/internal/language"
	"tubescribe/internal/media"
	"tubescribe/internal/pipeline"
)

const previewRunes = 500

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "transcribe <url>",
		Short: "Transcribe a YouTube video and archive the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := strings.TrimSpace(args[0])
			if !pipeline.IsYouTubeURL(url) {
				return fmt.Errorf("not a YouTube URL: %q", url)
			}

			p, _, err := ctx.newPipeline(model)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			outcome, err := p.Process(runCtx, url)
			if err != nil {
				return err
			}

			printOutcome(cmd, outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model to use for this run (tiny, base, small, medium, large)")
	return cmd
}

func printOutcome(cmd *cobra.Command, outcome pipeline.Outcome) {
	out := cmd.OutOrStdout()
	colorize := colorEnabled(out)

	fmt.Fprintln(out, detailLine("Title", outcome.Info.Title, colorize))
	fmt.Fprintln(out, detailLine("Uploader", outcome.Info.Uploader, colorize))
	fmt.Fprintln(out, detailLine("Duration", media.FormatDuration(outcome.Info.Duration), colorize))
	fmt.Fprintln(out, detailLine("Language", language.DisplayName(outcome.Transcript.Language), colorize))
	fmt.Fprintln(out, detailLine("Saved to", outcome.Archive.Folder, colorize))
	fmt.Fprintln(out)
	fmt.Fprintln(out, transcriptPreview(outcome.Transcript.FullText))
}

func transcriptPreview(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= previewRunes {
		return string(runes)
	}
	return string(runes[:previewRunes]) + "..."
}
