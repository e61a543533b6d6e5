package main

import (
	"context"
	"fmt"
	"io"

	"rangeshift/internal/convert"
	"rangeshift/internal/journal"
	"rangeshift/internal/logging"
)

func printOutcome(w io.Writer, outcome convert.Outcome) {
	switch outcome.Kind {
	case convert.OutcomeConverted:
		fmt.Fprintf(w, "Converted %s -> %s\n", outcome.Source, outcome.Destination)
		if outcome.InputOutOfRange > 0 {
			fmt.Fprintf(w, "  warning: %d samples outside the source range were clipped\n", outcome.InputOutOfRange)
		}
		if outcome.OutputClipped > 0 {
			fmt.Fprintf(w, "  warning: %d scaled samples required clipping\n", outcome.OutputClipped)
		}
	case convert.OutcomeSkippedTagged:
		fmt.Fprintf(w, "Skipping %s (name already carries a range suffix)\n", outcome.Source)
	case convert.OutcomeSkippedExists:
		fmt.Fprintf(w, "Skipping %s (destination already exists)\n", outcome.Source)
	case convert.OutcomeFailed:
		fmt.Fprintf(w, "Failed %s: %v\n", outcome.Source, outcome.Err)
	}
}

// recordOutcomes journals each outcome. Journal trouble is reported to the
// logger only; a conversion that already happened must not be failed after
// the fact.
func (c *commandContext) recordOutcomes(ctx context.Context, outcomes []convert.Outcome) {
	if len(outcomes) == 0 {
		return
	}
	store, err := c.openJournal()
	if err != nil {
		c.ensureLogger().Warn("journal unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	for _, outcome := range outcomes {
		entry := journal.Entry{
			RunID:           c.ensureRunID(),
			Source:          outcome.Source,
			Destination:     outcome.Destination,
			Target:          string(outcome.Target),
			Outcome:         string(outcome.Kind),
			InputOutOfRange: outcome.InputOutOfRange,
			OutputClipped:   outcome.OutputClipped,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		if err := store.Record(ctx, entry); err != nil {
			c.ensureLogger().Warn("journal write failed", logging.Error(err))
			return
		}
	}
}
