//go:build linux

package volumes

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pilebones/go-udev/netlink"

	"rangeshift/internal/logging"
)

// settleDelay gives automounters time to mount newly attached media before
// the roots are probed.
const settleDelay = 2 * time.Second

// Watcher listens for udev netlink block-device events and re-probes the
// volume roots when media is attached.
type Watcher struct {
	roots         []string
	imagesDirName string
	logger        *slog.Logger
	handler       func(ctx context.Context, imagesDir string)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewWatcher creates a watcher that invokes handler with each IMAGES
// directory discovered after a block device is attached.
func NewWatcher(roots []string, imagesDirName string, logger *slog.Logger, handler func(ctx context.Context, imagesDir string)) *Watcher {
	return &Watcher{
		roots:         roots,
		imagesDirName: imagesDirName,
		logger:        logging.NewComponentLogger(logger, "volume-watcher"),
		handler:       handler,
	}
}

// Supported reports whether volume watching works on this platform.
func (w *Watcher) Supported() bool { return true }

// Start begins listening for udev netlink events. A failed netlink connect
// is non-fatal: the watcher stays disabled and discovery remains manual.
func (w *Watcher) Start(ctx context.Context) error {
	if w == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		w.logger.Warn("failed to connect to netlink socket; volume watching disabled",
			logging.Error(err))
		return nil
	}

	w.conn = conn
	w.quit = make(chan struct{})
	w.running = true

	quit := w.quit
	go w.watchLoop(ctx, quit)

	w.logger.Info("volume watcher started")
	return nil
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.quit != nil {
		close(w.quit)
		w.quit = nil
	}
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.running = false

	w.logger.Info("volume watcher stopped")
}

func (w *Watcher) watchLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, blockDeviceMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			w.handleEvent(ctx, uevent)
		case err := <-errs:
			w.logger.Warn("netlink monitor error", logging.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, uevent netlink.UEvent) {
	w.logger.Debug("block device event",
		logging.String("action", string(uevent.Action)),
		logging.String("kobj", uevent.KObj))

	select {
	case <-ctx.Done():
		return
	case <-time.After(settleDelay):
	}

	dir, found, err := Discover(w.roots, w.imagesDirName)
	if err != nil {
		w.logger.Warn("volume probe failed", logging.Error(err))
		return
	}
	if !found {
		return
	}

	w.logger.Info("images directory discovered", logging.String("directory", dir))
	if w.handler != nil {
		w.handler(ctx, dir)
	}
}

func blockDeviceMatcher() netlink.Matcher {
	action := "add|change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "block",
		},
	})
	return rules
}
