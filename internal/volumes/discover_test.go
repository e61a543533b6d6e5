package volumes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverFindsFirstMatch(t *testing.T) {
	root := t.TempDir()
	// Two volumes with IMAGES; alphabetical directory order means CARD_A wins.
	for _, volume := range []string{"CARD_A", "CARD_B"} {
		if err := os.MkdirAll(filepath.Join(root, volume, "IMAGES"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	dir, found, err := Discover([]string{root}, "IMAGES")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}
	want := filepath.Join(root, "CARD_A", "IMAGES")
	if dir != want {
		t.Errorf("dir = %s, want %s", dir, want)
	}
}

func TestDiscoverSkipsHiddenVolumes(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".Trashes", "IMAGES"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, found, err := Discover([]string{root}, "IMAGES")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if found {
		t.Error("hidden volume should be skipped")
	}
}

func TestDiscoverIgnoresMissingRoots(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "CARD", "IMAGES"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	dir, found, err := Discover([]string{filepath.Join(root, "no-such-root"), root}, "IMAGES")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if !found {
		t.Fatal("expected a match via the second root")
	}
	if dir != filepath.Join(root, "CARD", "IMAGES") {
		t.Errorf("dir = %s", dir)
	}
}

func TestDiscoverRequiresDirectory(t *testing.T) {
	root := t.TempDir()
	volume := filepath.Join(root, "CARD")
	if err := os.MkdirAll(volume, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// IMAGES exists but is a plain file.
	if err := os.WriteFile(filepath.Join(volume, "IMAGES"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, found, err := Discover([]string{root}, "IMAGES")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if found {
		t.Error("plain file should not match")
	}
}

func TestDiscoverRejectsEmptyName(t *testing.T) {
	if _, _, err := Discover([]string{t.TempDir()}, " "); err == nil {
		t.Fatal("expected error for empty images directory name")
	}
}
