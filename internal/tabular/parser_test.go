package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWithHeader(t *testing.T) {
	lines := []string{
		"# X Y",
		"1.0 2.0",
		"2.0 4.0",
		"3.0 6.0",
	}
	tab, diags := Parse(lines, DefaultOptions())
	if len(diags) != 0 {
		t.Fatalf("diags = %#v", diags)
	}
	if !equalStrings(tab.Names(), []string{"X", "Y"}) {
		t.Fatalf("names = %#v", tab.Names())
	}
	y, ok := tab.Column("Y")
	if !ok || len(y) != 3 || y[0] != 2 || y[2] != 6 {
		t.Fatalf("Y = %#v, ok=%v", y, ok)
	}
	if tab.NumRows() != 3 {
		t.Fatalf("rows = %d", tab.NumRows())
	}
}

func TestParseSyntheticNames(t *testing.T) {
	tab, _ := Parse([]string{"1 2 3", "4 5 6"}, DefaultOptions())
	if !equalStrings(tab.Names(), []string{"Variable_1", "Variable_2", "Variable_3"}) {
		t.Fatalf("names = %#v", tab.Names())
	}
}

func TestParseHeaderLongerThanData(t *testing.T) {
	lines := []string{"# A B C D", "1 2", "3 4"}
	tab, diags := Parse(lines, DefaultOptions())
	if !equalStrings(tab.Names(), []string{"Variable_1", "Variable_2"}) {
		t.Fatalf("names = %#v", tab.Names())
	}
	if len(diags) != 1 || !strings.Contains(diags[0], "synthetic") {
		t.Fatalf("diags = %#v", diags)
	}
}

func TestParseHeaderShorterThanData(t *testing.T) {
	lines := []string{"# A B", "1 2 3", "4 5 6"}
	tab, _ := Parse(lines, DefaultOptions())
	if !equalStrings(tab.Names(), []string{"A", "B", "Variable_3"}) {
		t.Fatalf("names = %#v", tab.Names())
	}
}

func TestParseNeverFails(t *testing.T) {
	tab, diags := Parse([]string{"nothing numeric at all"}, DefaultOptions())
	if !tab.Empty() {
		t.Fatal("table not empty")
	}
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic")
	}
}

func TestParsePipeDelimited(t *testing.T) {
	lines := []string{
		"|  Inner_Iter|          rms_Rho|",
		"|           0|         -3.806392|",
		"|           1|         -3.956686|",
	}
	tab, _ := Parse(lines, DefaultOptions())
	if tab.NumCols() != 2 || tab.NumRows() != 2 {
		t.Fatalf("cols=%d rows=%d", tab.NumCols(), tab.NumRows())
	}
	rho, ok := tab.Column("rms_Rho")
	if !ok || rho[0] != -3.806392 {
		t.Fatalf("rms_Rho = %#v, ok=%v", rho, ok)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.dat")
	content := "Variables = Time, Value\n0.0 1.0\n0.1 1.5\n0.2 2.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tab, diags := ParseFile(path, DefaultOptions())
	if len(diags) != 0 {
		t.Fatalf("diags = %#v", diags)
	}
	if !equalStrings(tab.Names(), []string{"Time", "Value"}) {
		t.Fatalf("names = %#v", tab.Names())
	}
	if tab.NumRows() != 3 {
		t.Fatalf("rows = %d", tab.NumRows())
	}
}

func TestParseFileMissing(t *testing.T) {
	tab, diags := ParseFile(filepath.Join(t.TempDir(), "nope.dat"), DefaultOptions())
	if !tab.Empty() {
		t.Fatal("table not empty")
	}
	if len(diags) != 1 || !strings.Contains(diags[0], "nope.dat") {
		t.Fatalf("diags = %#v", diags)
	}
}

func TestParseRoundTrip(t *testing.T) {
	tab, _ := Parse([]string{"# X Y", "1 10", "2 20", "3 30"}, DefaultOptions())

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", strings.Join(tab.Names(), " "))
	for i := 0; i < tab.NumRows(); i++ {
		var row []string
		for _, name := range tab.Names() {
			col, _ := tab.Column(name)
			row = append(row, fmt.Sprintf("%g", col[i]))
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(row, " "))
	}

	again, _ := Parse(strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n"), DefaultOptions())
	if !equalStrings(again.Names(), tab.Names()) {
		t.Fatalf("names = %#v, want %#v", again.Names(), tab.Names())
	}
	for _, name := range tab.Names() {
		orig, _ := tab.Column(name)
		got, _ := again.Column(name)
		if len(got) != len(orig) {
			t.Fatalf("%s length = %d, want %d", name, len(got), len(orig))
		}
		for i := range orig {
			if got[i] != orig[i] {
				t.Fatalf("%s[%d] = %v, want %v", name, i, got[i], orig[i])
			}
		}
	}
}
