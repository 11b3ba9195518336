package textio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.dat")
	if err := os.WriteFile(path, []byte("a\nb\r\nc\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %#v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesLatin1(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252, invalid as UTF-8.
	raw := []byte("Temp [\xb0C]\n1.0\n")
	path := filepath.Join(t.TempDir(), "latin1.dat")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if lines[0] != "Temp [°C]" {
		t.Fatalf("lines[0] = %q", lines[0])
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodePassthrough(t *testing.T) {
	if got := Decode([]byte("héllo")); got != "héllo" {
		t.Fatalf("Decode = %q", got)
	}
}
