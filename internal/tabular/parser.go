package tabular

import (
	"fmt"

	"github.com/datprobe/datprobe/internal/textio"
)

// Parse turns raw file lines into named numeric columns. It never fails:
// on any problem the returned table is empty and the reasons are reported
// in the diagnostics slice, so batch callers can treat "nothing parsed"
// uniformly.
func Parse(lines []string, opt Options) (*Table, []string) {
	var diags []string
	names, start := DetectHeader(lines, opt)
	rows, err := ParseRows(lines, start, opt)
	if err != nil {
		return NewTable(), append(diags, err.Error())
	}
	width := len(rows[0])

	// Headers map positionally. A header longer than the matrix is
	// untrustworthy and ignored wholesale; a shorter one is topped up
	// with synthetic names.
	if len(names) > width {
		diags = append(diags, fmt.Sprintf(
			"header has %d names for %d columns; using synthetic names", len(names), width))
		names = nil
	}

	t := NewTable()
	for j := 0; j < width; j++ {
		name := SyntheticName(j + 1)
		if j < len(names) {
			name = names[j]
		}
		col := make([]float64, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		if allNaN(col) {
			diags = append(diags, fmt.Sprintf("dropping column %s: no finite values", name))
			continue
		}
		t.Add(name, col)
	}
	return t, diags
}

// ParseFile reads path through the encoding-fallback reader and parses it.
// I/O failures degrade to an empty table plus a diagnostic, per the same
// contract as Parse.
func ParseFile(path string, opt Options) (*Table, []string) {
	lines, err := textio.ReadLines(path)
	if err != nil {
		return NewTable(), []string{fmt.Sprintf("read %s: %v", path, err)}
	}
	return Parse(lines, opt)
}
