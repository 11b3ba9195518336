package tabular

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNoNumericData indicates no line ever classified as data.
var ErrNoNumericData = errors.New("no numeric data found")

// ErrAllRowsNonFinite indicates data rows existed but none survived the
// finiteness filter.
var ErrAllRowsNonFinite = errors.New("all data rows contain non-finite values")

// ParseValue parses a single token as a float, retrying with Fortran-style
// exponent letters (1.5D+03 -> 1.5E+03) on failure.
func ParseValue(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, true
	}
	fixed := strings.NewReplacer("D", "E", "d", "e").Replace(tok)
	if v, err := strconv.ParseFloat(fixed, 64); err == nil {
		return v, true
	}
	return 0, false
}

// ParseRows converts lines from start onward into a rectangular matrix.
// Unparseable tokens are dropped from their row; the first successfully
// parsed row fixes the expected column count and rows of any other width
// are discarded outright. Rows containing NaN or Inf are removed last.
func ParseRows(lines []string, start int, opt Options) ([][]float64, error) {
	opt = opt.sane()
	var rows [][]float64
	width := -1
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !IsNumericLine(line, opt.NumericLineThreshold) {
			continue
		}
		var row []float64
		for _, tok := range SplitTokens(line) {
			if v, ok := ParseValue(tok); ok {
				row = append(row, v)
			}
		}
		if len(row) == 0 {
			continue
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			continue
		}
		rows = append(rows, row)
	}
	if width < 0 {
		return nil, ErrNoNumericData
	}
	finite := rows[:0]
	for _, row := range rows {
		if rowFinite(row) {
			finite = append(finite, row)
		}
	}
	if len(finite) == 0 {
		return nil, ErrAllRowsNonFinite
	}
	return finite, nil
}

func rowFinite(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
