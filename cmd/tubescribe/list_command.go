package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"tubescribe/internal/catalog"
	"tubescribe/internal/media"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived transcripts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}

			summaries := store.List()
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transcripts archived yet")
				return nil
			}
			if limit > 0 && len(summaries) > limit {
				summaries = summaries[:limit]
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderListTable(store, summaries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many entries (0 shows all)")
	return cmd
}

// renderListTable lays out the catalog listing. Row numbers are 1-based and
// double as the `show <number>` selectors.
func renderListTable(store *catalog.Store, summaries []catalog.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Transcribed", "Title", "Duration", "Run ID"})

	for i, summary := range summaries {
		duration := ""
		if entry, ok := store.Get(summary.ID); ok {
			duration = media.FormatDuration(entry.Duration)
		}
		tw.AppendRow(table.Row{i + 1, formatCatalogDate(summary.Date), summary.Title, duration, summary.ID})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func formatCatalogDate(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Local().Format("2006-01-02 15:04")
}
