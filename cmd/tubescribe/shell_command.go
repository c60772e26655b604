package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tubescribe/internal/config"
	"tubescribe/internal/pipeline"
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive transcription session",
		Long: "Start an interactive session: paste YouTube URLs to transcribe them one\n" +
			"after another, browse the archive, or switch whisper models between runs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lock, err := pipeline.AcquireInstanceLock(cfg.Paths.OutputDir)
			if err != nil {
				return err
			}
			defer func() {
				_ = lock.Release()
			}()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			session := &shellSession{ctx: ctx}
			return session.run(runCtx, cmd)
		},
	}
}

// shellSession holds state that survives between prompt lines, currently
// just the model override picked with `model <size>`.
type shellSession struct {
	ctx   *commandContext
	model string
}

func (s *shellSession) run(runCtx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	colorize := colorEnabled(out)
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "tubescribe interactive session. Paste a YouTube URL to transcribe it.")
	fmt.Fprintln(out, "Type 'help' for commands, 'quit' to exit.")

	for {
		if runCtx.Err() != nil {
			fmt.Fprintln(out)
			return nil
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return nil
		case "help", "h", "?":
			printShellHelp(out)
		case "list", "l":
			s.printList(out)
		case "show":
			if len(fields) != 2 {
				fmt.Fprintln(out, errorLine("usage: show <run-id|number>", colorize))
				continue
			}
			s.printShow(cmd, fields[1], colorize)
		case "model":
			s.switchModel(out, fields[1:], colorize)
		default:
			if !pipeline.IsYouTubeURL(line) {
				fmt.Fprintln(out, errorLine(fmt.Sprintf("not a YouTube URL or command: %q", line), colorize))
				continue
			}
			s.transcribe(runCtx, cmd, line, colorize)
		}
	}
}

func printShellHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  <url>            Transcribe a YouTube video
  list             List archived transcripts
  show <id|n>      Show an archived transcript
  model <size>     Switch whisper model (tiny, base, small, medium, large)
  help             Show this help
  quit             Exit the session
`)
}

func (s *shellSession) printList(out io.Writer) {
	store, err := s.ctx.store()
	if err != nil {
		fmt.Fprintln(out, errorLine(err.Error(), false))
		return
	}
	summaries := store.List()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No transcripts archived yet")
		return
	}
	fmt.Fprintln(out, renderListTable(store, summaries))
}

func (s *shellSession) printShow(cmd *cobra.Command, arg string, colorize bool) {
	out := cmd.OutOrStdout()
	store, err := s.ctx.store()
	if err != nil {
		fmt.Fprintln(out, errorLine(err.Error(), colorize))
		return
	}
	id, entry, err := resolveEntry(store, arg)
	if err != nil {
		fmt.Fprintln(out, errorLine(err.Error(), colorize))
		return
	}
	printEntry(cmd, id, entry)
}

func (s *shellSession) switchModel(out io.Writer, args []string, colorize bool) {
	if len(args) != 1 {
		fmt.Fprintln(out, errorLine("usage: model <size>", colorize))
		return
	}
	model := strings.ToLower(strings.TrimSpace(args[0]))
	if !slices.Contains(config.WhisperModels, model) {
		fmt.Fprintln(out, errorLine(
			fmt.Sprintf("unknown model %q (choose from %s)", model, strings.Join(config.WhisperModels, ", ")), colorize))
		return
	}
	s.model = model
	fmt.Fprintf(out, "Model set to %s\n", model)
}

func (s *shellSession) transcribe(runCtx context.Context, cmd *cobra.Command, url string, colorize bool) {
	out := cmd.OutOrStdout()
	p, _, err := s.ctx.newPipeline(s.model)
	if err != nil {
		fmt.Fprintln(out, errorLine(err.Error(), colorize))
		return
	}
	outcome, err := p.Process(runCtx, url)
	if err != nil {
		fmt.Fprintln(out, errorLine(err.Error(), colorize))
		return
	}
	printOutcome(cmd, outcome)
}
