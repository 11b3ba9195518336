package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/datprobe/datprobe/internal/tabular"
	"github.com/datprobe/datprobe/internal/utils"
)

// VariableStats is the per-run aggregate for one variable.
type VariableStats struct {
	Name   string  `yaml:"name" json:"name"`
	Mean   float64 `yaml:"mean" json:"mean"`
	Max    float64 `yaml:"max" json:"max"`
	Points int     `yaml:"points" json:"points"`
}

// RunSummary aggregates one parsed file within a batch.
type RunSummary struct {
	Run   string          `yaml:"run" json:"run"`
	File  string          `yaml:"file" json:"file"`
	Rows  int             `yaml:"rows" json:"rows"`
	Stats []VariableStats `yaml:"stats" json:"stats"`
}

// Batch collects run summaries for a comparison study. Each batch carries
// a unique ID so its artifacts can be traced back to one invocation.
type Batch struct {
	ID      string       `yaml:"id" json:"id"`
	Runs    []RunSummary `yaml:"runs" json:"runs"`
	Skipped []string     `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}

// NewBatch returns an empty batch with a fresh ID.
func NewBatch() *Batch {
	return &Batch{ID: uuid.NewString()}
}

// AddRun summarizes a parsed table under the given run label. Variables
// may restrict the summary to named columns; empty means all.
func (b *Batch) AddRun(run, file string, t *tabular.Table, variables []string) {
	names := t.Names()
	if len(variables) > 0 {
		names = variables
	}
	s := RunSummary{Run: run, File: file, Rows: t.NumRows()}
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok || len(col) == 0 {
			continue
		}
		mean, _ := stats.Mean(col)
		max, _ := stats.Max(col)
		s.Stats = append(s.Stats, VariableStats{Name: name, Mean: mean, Max: max, Points: len(col)})
	}
	b.Runs = append(b.Runs, s)
}

// Skip records a file that produced no data.
func (b *Batch) Skip(file, reason string) {
	b.Skipped = append(b.Skipped, fmt.Sprintf("%s: %s", file, reason))
}

// WriteSummaryCSV writes the batch in long form (one row per run and
// variable), atomically.
func (b *Batch) WriteSummaryCSV(path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"run", "file", "rows", "variable", "mean", "max", "points"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range b.Runs {
		for _, s := range r.Stats {
			rec := []string{
				r.Run, r.File, strconv.Itoa(r.Rows), s.Name,
				strconv.FormatFloat(s.Mean, 'g', -1, 64),
				strconv.FormatFloat(s.Max, 'g', -1, 64),
				strconv.Itoa(s.Points),
			}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// Markdown renders a digest of the batch, runs sorted by label.
func (b *Batch) Markdown() string {
	var sb strings.Builder
	sb.WriteString("[BATCH SUMMARY]\n")
	sb.WriteString(fmt.Sprintf("Run ID: %s\n", b.ID))
	sb.WriteString(fmt.Sprintf("Runs: %d\n", len(b.Runs)))
	runs := make([]RunSummary, len(b.Runs))
	copy(runs, b.Runs)
	sort.Slice(runs, func(i, j int) bool { return runs[i].Run < runs[j].Run })
	for _, r := range runs {
		sb.WriteString(fmt.Sprintf("\n- %s (%s): %d rows\n", r.Run, r.File, r.Rows))
		for _, s := range r.Stats {
			sb.WriteString(fmt.Sprintf("  • %s: mean %.4g, max %.4g (n=%d)\n", s.Name, s.Mean, s.Max, s.Points))
		}
	}
	if len(b.Skipped) > 0 {
		sb.WriteString("\n[SKIPPED]\n")
		for _, s := range b.Skipped {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}
	return sb.String()
}
