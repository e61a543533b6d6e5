package preflight

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBatchOnWritableDirectory(t *testing.T) {
	results := CheckBatch(t.TempDir(), 0)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s failed: %s", r.Name, r.Detail)
		}
	}
	if blocking := Blocking(results); len(blocking) != 0 {
		t.Errorf("unexpected blocking results: %v", blocking)
	}
}

func TestCheckBatchMissingDirectory(t *testing.T) {
	results := CheckBatch(filepath.Join(t.TempDir(), "missing"), 0)

	blocking := Blocking(results)
	if len(blocking) != 1 {
		t.Fatalf("blocking = %d, want 1", len(blocking))
	}
	if blocking[0].Name != "Destination directory" {
		t.Errorf("blocking check = %s", blocking[0].Name)
	}
}

func TestSummaryMentionsEveryCheck(t *testing.T) {
	summary := Summary(CheckBatch(t.TempDir(), 1))
	if !strings.Contains(summary, "Destination directory") || !strings.Contains(summary, "Free space") {
		t.Errorf("summary missing checks: %s", summary)
	}
}
