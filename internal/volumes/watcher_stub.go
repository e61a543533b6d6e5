//go:build !linux

package volumes

import (
	"context"
	"log/slog"

	"rangeshift/internal/logging"
)

// Watcher is inert on platforms without udev.
type Watcher struct {
	logger *slog.Logger
}

// NewWatcher returns a watcher stub; Start logs that watching is unsupported.
func NewWatcher(roots []string, imagesDirName string, logger *slog.Logger, handler func(ctx context.Context, imagesDir string)) *Watcher {
	return &Watcher{logger: logging.NewComponentLogger(logger, "volume-watcher")}
}

// Supported reports whether volume watching works on this platform.
func (w *Watcher) Supported() bool { return false }

// Start is a no-op outside Linux.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Warn("volume watching is only supported on linux; use discovery instead")
	return nil
}

// Stop is a no-op outside Linux.
func (w *Watcher) Stop() {}
