package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/datprobe/datprobe/internal/config"
	"github.com/datprobe/datprobe/internal/oscillation"
	"github.com/datprobe/datprobe/internal/profile"
	"github.com/datprobe/datprobe/internal/report"
	"github.com/datprobe/datprobe/internal/tabular"
)

// resolveVariable resolves a selector (a column name or a 1-based
// position) against the parsed table. Unknown names and out-of-range
// positions are rejected without touching the table.
func resolveVariable(t *tabular.Table, sel string) (string, error) {
	if idx, err := strconv.Atoi(sel); err == nil {
		names := t.Names()
		if idx < 1 || idx > len(names) {
			return "", fmt.Errorf("variable index %d out of range 1..%d", idx, len(names))
		}
		return names[idx-1], nil
	}
	if _, ok := t.Column(sel); !ok {
		return "", fmt.Errorf("unknown variable %q (use 'datprobe variables' to list)", sel)
	}
	return sel, nil
}

// samplingRate picks the sampling rate for oscillation analysis: an
// explicit flag wins, then the mean spacing of the x column, then the
// configured default. Unknown or non-positive spacing falls back to 1.0.
func samplingRate(t *tabular.Table, xName string, flagRate float64, c *cfgpkg.Global) float64 {
	if flagRate > 0 {
		return flagRate
	}
	if xName != "" {
		if x, ok := t.Column(xName); ok && len(x) > 1 {
			spacing := (x[len(x)-1] - x[0]) / float64(len(x)-1)
			if spacing > 0 {
				return 1 / spacing
			}
		}
	}
	if c.SamplingRate > 0 {
		return c.SamplingRate
	}
	return 1.0
}

// buildAnalysis profiles every column and runs oscillation detection on
// the targets (nil means all columns).
func buildAnalysis(file string, t *tabular.Table, diags []string, targets []string, rate float64, c *cfgpkg.Global) *report.Analysis {
	want := make(map[string]bool, len(targets))
	for _, name := range targets {
		want[name] = true
	}
	a := &report.Analysis{File: file, Rows: t.NumRows(), Diagnostics: diags}
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		v := report.Variable{
			Name:    name,
			Samples: len(col),
			Profile: profile.Profile(col, c.LogScaleRatio),
		}
		if len(want) == 0 || want[name] {
			r := oscillation.Detect(col, rate, c.DetectorOptions())
			v.Oscillation = &r
		}
		a.Variables = append(a.Variables, v)
	}
	return a
}
