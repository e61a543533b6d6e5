package preflight

import (
	"fmt"
	"strings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckBatch runs the checks relevant to a directory scan. Only a failed
// directory-access check should block the batch; a low-space result is
// advisory.
func CheckBatch(dir string, minFreeMiB int) []Result {
	return []Result{
		CheckDirectoryAccess("Destination directory", dir),
		CheckFreeSpace("Free space", dir, minFreeMiB),
	}
}

// Blocking returns the failed results that must stop a batch.
func Blocking(results []Result) []Result {
	var blocking []Result
	for _, r := range results {
		if !r.Passed && r.Name == "Destination directory" {
			blocking = append(blocking, r)
		}
	}
	return blocking
}

// Summary renders results as one line per check.
func Summary(results []Result) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		status := "FAIL"
		if r.Passed {
			status = "ok"
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", r.Name, status, r.Detail))
	}
	return strings.Join(lines, "\n")
}
