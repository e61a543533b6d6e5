package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rangeshift/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var useSubdir bool

	cmd := &cobra.Command{
		Use:   "convert <full|limited> <file>...",
		Short: "Convert the listed image files to the given range",
		Long: `Convert the listed image files to the given range.

Each destination is written next to its source as <name>_<range><ext>.
Files whose names already end in _full or _limited are skipped, as are
files whose destination already exists.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := convert.ParseTarget(args[0])
			if err != nil {
				return err
			}

			converter, err := ctx.newConverter()
			if err != nil {
				return err
			}

			outcomes := make([]convert.Outcome, 0, len(args)-1)
			failures := 0
			for _, path := range args[1:] {
				outcome, err := converter.ConvertFile(cmd.Context(), path, target, useSubdir)
				if err != nil {
					failures++
				}
				printOutcome(cmd.OutOrStdout(), outcome)
				outcomes = append(outcomes, outcome)
			}
			ctx.recordOutcomes(cmd.Context(), outcomes)

			if failures > 0 {
				return fmt.Errorf("%d of %d files failed", failures, len(args)-1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useSubdir, "subdir", false, "Write outputs to a <range>/ subdirectory next to each source")
	return cmd
}
