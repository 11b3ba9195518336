package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRunFiles(t *testing.T) {
	base := t.TempDir()
	write := func(parts ...string) {
		path := filepath.Join(append([]string{base}, parts...)...)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("1 2\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("run_fine", "flow.dat")
	write("run_coarse", "flow.dat")
	write("run_coarse", "notes.txt")
	write("stray.dat") // directly under base, not in a run dir

	found, err := FindRunFiles(base, "*.dat")
	if err != nil {
		t.Fatalf("FindRunFiles: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("found = %#v", found)
	}
	if found[0].Run != "run_coarse" || found[1].Run != "run_fine" {
		t.Fatalf("order = %#v", found)
	}
	if filepath.Base(found[0].Path) != "flow.dat" {
		t.Fatalf("path = %q", found[0].Path)
	}
}

func TestFindRunFilesMissingBase(t *testing.T) {
	if _, err := FindRunFiles(filepath.Join(t.TempDir(), "nope"), "*.dat"); err == nil {
		t.Fatal("expected error for missing base dir")
	}
}

func TestFindRunFilesNoMatches(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "run1"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindRunFiles(base, "*.dat")
	if err != nil {
		t.Fatalf("FindRunFiles: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("found = %#v", found)
	}
}
