package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"rangeshift/internal/config"
	"rangeshift/internal/convert"
	"rangeshift/internal/preflight"
)

const scanLockName = ".rangeshift.lock"

func newScanCommand(ctx *commandContext) *cobra.Command {
	var targetFlag string
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Convert every eligible image in a directory",
		Long: `Convert every eligible image in a directory.

Hidden files and unrecognized extensions are ignored. Outputs go to a
<range>/ subdirectory when the configuration enables it (the default).
The scan asks for confirmation before writing anything; pass --yes to
skip the prompt, which is required when stdin is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			target, err := convert.ParseTarget(targetFlag)
			if err != nil {
				return err
			}
			return runScan(ctx, cmd, dir, target, assumeYes)
		},
	}

	cmd.Flags().StringVar(&targetFlag, "target", string(convert.TargetFull), "Destination range (full or limited)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Convert without asking for confirmation")
	return cmd
}

func runScan(ctx *commandContext, cmd *cobra.Command, dir string, target convert.Target, assumeYes bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("inspect directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	results := preflight.CheckBatch(dir, cfg.Scan.MinFreeMiB)
	fmt.Fprintln(out, preflight.Summary(results))
	if blocking := preflight.Blocking(results); len(blocking) > 0 {
		return fmt.Errorf("preflight failed: %s", blocking[0].Detail)
	}

	ok, err := confirmScan(cmd, dir, assumeYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	// One scan per tree at a time; a second invocation fails fast instead of
	// racing on destinations.
	lock := flock.New(filepath.Join(dir, scanLockName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another rangeshift scan is already running in %s", dir)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	converter, err := ctx.newConverter()
	if err != nil {
		return err
	}
	outcomes, err := converter.ScanDirectory(cmd.Context(), dir, target, cfg.Scan.UseSubdirectory)
	if err != nil {
		return err
	}
	for _, outcome := range outcomes {
		printOutcome(out, outcome)
	}
	ctx.recordOutcomes(cmd.Context(), outcomes)

	converted, skipped, failed := tally(outcomes)
	fmt.Fprintf(out, "Done: %d converted, %d skipped, %d failed.\n", converted, skipped, failed)
	return nil
}

func tally(outcomes []convert.Outcome) (converted, skipped, failed int) {
	for _, o := range outcomes {
		switch o.Kind {
		case convert.OutcomeConverted:
			converted++
		case convert.OutcomeFailed:
			failed++
		default:
			skipped++
		}
	}
	return converted, skipped, failed
}

// confirmScan gates batch writes behind a single y/n prompt. Without a
// terminal on stdin the prompt cannot be answered, so --yes is required.
func confirmScan(cmd *cobra.Command, dir string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !stdinIsTerminal(cmd.InOrStdin()) {
		return false, fmt.Errorf("stdin is not a terminal; pass --yes to convert %s", dir)
	}
	return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Convert images in %s?", dir))
}

func stdinIsTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		// Tests swap in a buffer; treat it as interactive so the prompt loop
		// can be exercised.
		return true
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "%s [y/n]: ", question)
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return false, fmt.Errorf("no answer to confirmation prompt")
			}
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, "Invalid selection")
	}
}
