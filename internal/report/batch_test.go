package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datprobe/datprobe/internal/tabular"
)

func batchFixture() *Batch {
	b := NewBatch()
	t1 := tabular.NewTable()
	t1.Add("X", []float64{1, 2, 3})
	t1.Add("HeatFlux", []float64{10, 20, 30})
	b.AddRun("coarse", "coarse/flow.dat", t1, nil)

	t2 := tabular.NewTable()
	t2.Add("X", []float64{1, 2})
	t2.Add("HeatFlux", []float64{40, 60})
	b.AddRun("fine", "fine/flow.dat", t2, []string{"HeatFlux"})

	b.Skip("broken/flow.dat", "no numeric data found")
	return b
}

func TestBatchAddRun(t *testing.T) {
	b := batchFixture()
	if b.ID == "" {
		t.Fatal("batch has no ID")
	}
	if len(b.Runs) != 2 {
		t.Fatalf("runs = %#v", b.Runs)
	}
	coarse := b.Runs[0]
	if coarse.Rows != 3 || len(coarse.Stats) != 2 {
		t.Fatalf("coarse = %#v", coarse)
	}
	if coarse.Stats[1].Name != "HeatFlux" || coarse.Stats[1].Mean != 20 || coarse.Stats[1].Max != 30 {
		t.Fatalf("coarse heat flux = %#v", coarse.Stats[1])
	}
	fine := b.Runs[1]
	if len(fine.Stats) != 1 || fine.Stats[0].Name != "HeatFlux" {
		t.Fatalf("variable filter ignored: %#v", fine.Stats)
	}
	if fine.Stats[0].Mean != 50 || fine.Stats[0].Points != 2 {
		t.Fatalf("fine heat flux = %#v", fine.Stats[0])
	}
}

func TestBatchWriteSummaryCSV(t *testing.T) {
	b := batchFixture()
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := b.WriteSummaryCSV(path); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open summary: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	// Header plus one row per run and variable.
	if len(records) != 4 {
		t.Fatalf("records = %#v", records)
	}
	wantHeader := []string{"run", "file", "rows", "variable", "mean", "max", "points"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("header = %#v", records[0])
		}
	}
	last := records[3]
	if last[0] != "fine" || last[3] != "HeatFlux" || last[4] != "50" || last[6] != "2" {
		t.Fatalf("last record = %#v", last)
	}
}

func TestBatchMarkdown(t *testing.T) {
	md := batchFixture().Markdown()
	for _, want := range []string{
		"[BATCH SUMMARY]",
		"Runs: 2",
		"- coarse (coarse/flow.dat): 3 rows",
		"HeatFlux: mean 20, max 30 (n=3)",
		"[SKIPPED]",
		"- broken/flow.dat: no numeric data found",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}
