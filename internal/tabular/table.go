package tabular

import (
	"fmt"
	"math"
	"sort"
)

// Table holds named numeric columns of equal length. Column order is
// insertion order; downstream consumers only read it.
type Table struct {
	names []string
	cols  map[string][]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// Add appends a named column. A name collision is disambiguated with the
// 1-based column position, bumped until the name is actually free, so no
// column is silently lost.
func (t *Table) Add(name string, values []float64) {
	if _, taken := t.cols[name]; taken {
		for i := len(t.names) + 1; ; i++ {
			candidate := fmt.Sprintf("%s_%d", name, i)
			if _, taken := t.cols[candidate]; !taken {
				name = candidate
				break
			}
		}
	}
	t.names = append(t.names, name)
	t.cols[name] = values
}

// Names returns the column names in column order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values for name.
func (t *Table) Column(name string) ([]float64, bool) {
	v, ok := t.cols[name]
	return v, ok
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Empty reports whether the table holds no data.
func (t *Table) Empty() bool { return t.NumRows() == 0 }

// SyntheticName generates the fallback name for the 1-based column i.
func SyntheticName(i int) string {
	return fmt.Sprintf("Variable_%d", i)
}

// CollapseDuplicates averages rows that share the same value in the xName
// column and returns a new table sorted by x ascending. Surface exports
// often carry several samples per station; comparisons want one.
func (t *Table) CollapseDuplicates(xName string) (*Table, error) {
	x, ok := t.cols[xName]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", xName)
	}
	order := make([]float64, 0, len(x))
	sums := make(map[float64][]float64)
	counts := make(map[float64]int)
	for i, xv := range x {
		if _, seen := sums[xv]; !seen {
			order = append(order, xv)
			sums[xv] = make([]float64, len(t.names))
		}
		counts[xv]++
		for j, name := range t.names {
			sums[xv][j] += t.cols[name][i]
		}
	}
	sort.Float64s(order)
	out := NewTable()
	for j, name := range t.names {
		col := make([]float64, len(order))
		for i, xv := range order {
			col[i] = sums[xv][j] / float64(counts[xv])
		}
		out.Add(name, col)
	}
	return out, nil
}

// allNaN reports whether every value in the column is NaN.
func allNaN(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
