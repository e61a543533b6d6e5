package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rangeshift/internal/convert"
	"rangeshift/internal/volumes"
)

func newVolumesCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Find an IMAGES directory on a mounted volume and convert it to full range",
		Long: `Find an IMAGES directory on a mounted volume and convert it to full range.

Volume roots are probed in order and only the first match is processed.
With --watch (Linux only) the command keeps running and re-probes
whenever a block device is attached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Looking for %s folder...\n", cfg.Scan.ImagesDirName)
			dir, found, err := volumes.Discover(cfg.Scan.VolumeRoots, cfg.Scan.ImagesDirName)
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintf(out, "Found %s folder at %s\n", cfg.Scan.ImagesDirName, dir)
				if err := runScan(ctx, cmd, dir, convert.TargetFull, assumeYes); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, "No images folder found on mounted volumes.")
			}

			if !watch {
				return nil
			}
			return watchVolumes(ctx, cmd, assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Convert without asking for confirmation")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and convert volumes as they are attached (Linux only)")
	return cmd
}

func watchVolumes(ctx *commandContext, cmd *cobra.Command, assumeYes bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	watchCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := volumes.NewWatcher(cfg.Scan.VolumeRoots, cfg.Scan.ImagesDirName, ctx.ensureLogger(),
		func(handlerCtx context.Context, imagesDir string) {
			fmt.Fprintf(out, "Found %s folder at %s\n", cfg.Scan.ImagesDirName, imagesDir)
			if err := runScan(ctx, cmd, imagesDir, convert.TargetFull, assumeYes); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "scan failed: %v\n", err)
			}
		})
	if !watcher.Supported() {
		return fmt.Errorf("--watch is only supported on linux")
	}
	if err := watcher.Start(watchCtx); err != nil {
		return err
	}
	defer watcher.Stop()

	fmt.Fprintln(out, "Watching for attached volumes. Press Ctrl-C to stop.")
	<-watchCtx.Done()
	return nil
}
