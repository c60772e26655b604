package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tubescribe/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check external tools, directories, and disk space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := colorEnabled(out)
			for _, line := range headerLines("Environment", colorize) {
				fmt.Fprintln(out, line)
			}

			results := preflight.Run(cfg)
			for _, result := range results {
				fmt.Fprintln(out, checkLine(result.Name, result.Passed, result.Detail, colorize))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d environment check(s) failed", len(failed))
			}
			return nil
		},
	}
}
