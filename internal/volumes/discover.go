package volumes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultRoots returns the mount roots probed when none are configured.
func DefaultRoots() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/Volumes"}
	case "linux":
		return []string{"/media", "/run/media", "/mnt"}
	default:
		return nil
	}
}

// Discover probes each root for a volume containing a directory named
// imagesDirName and returns the first match. Hidden entries are skipped.
// The second return value reports whether anything was found.
func Discover(roots []string, imagesDirName string) (string, bool, error) {
	if strings.TrimSpace(imagesDirName) == "" {
		return "", false, fmt.Errorf("images directory name is empty")
	}
	if len(roots) == 0 {
		roots = DefaultRoots()
	}
	if len(roots) == 0 {
		return "", false, fmt.Errorf("no volume roots to probe on %s", runtime.GOOS)
	}

	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", false, fmt.Errorf("read volume root %s: %w", root, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || !entry.IsDir() {
				continue
			}
			candidate := filepath.Join(root, name, imagesDirName)
			info, err := os.Stat(candidate)
			if err != nil || !info.IsDir() {
				continue
			}
			return candidate, true, nil
		}
	}
	return "", false, nil
}
