package tabular

import (
	"errors"
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"-2e3", -2000, true},
		{"1.5D+03", 1500, true},
		{"2d-2", 0.02, true},
		{" 7 ", 7, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseValue(c.tok)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("ParseValue(%q) = %v, %v; want %v, %v", c.tok, got, ok, c.want, c.ok)
		}
	}
}

func TestParseRows(t *testing.T) {
	lines := []string{
		"# header",
		"1.0 2.0",
		"3.0 4.0",
		"5.0 6.0 7.0", // width mismatch, discarded
		"",
		"9.0 10.0",
	}
	rows, err := ParseRows(lines, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	want := [][]float64{{1, 2}, {3, 4}, {9, 10}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %#v, want %#v", rows, want)
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Fatalf("rows[%d][%d] = %v, want %v", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestParseRowsFortranExponents(t *testing.T) {
	rows, err := ParseRows([]string{"1.5D+03 2.0d-01"}, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if rows[0][0] != 1500 || rows[0][1] != 0.2 {
		t.Fatalf("row = %#v", rows[0])
	}
}

func TestParseRowsDropsNonFinite(t *testing.T) {
	lines := []string{"1.0 2.0", "NaN 3.0", "4.0 Inf", "5.0 6.0"}
	rows, err := ParseRows(lines, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if len(rows) != 2 || rows[0][0] != 1 || rows[1][0] != 5 {
		t.Fatalf("rows = %#v", rows)
	}
	for _, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value survived: %#v", rows)
			}
		}
	}
}

func TestParseRowsNoData(t *testing.T) {
	_, err := ParseRows([]string{"only", "words", "here"}, 0, DefaultOptions())
	if !errors.Is(err, ErrNoNumericData) {
		t.Fatalf("err = %v, want ErrNoNumericData", err)
	}
}

func TestParseRowsAllNonFinite(t *testing.T) {
	_, err := ParseRows([]string{"NaN NaN", "Inf 1.0"}, 0, DefaultOptions())
	if !errors.Is(err, ErrAllRowsNonFinite) {
		t.Fatalf("err = %v, want ErrAllRowsNonFinite", err)
	}
}
