package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datprobe/datprobe/internal/discovery"
	"github.com/datprobe/datprobe/internal/report"
	"github.com/datprobe/datprobe/internal/tabular"
)

var (
	batchRunsDir   string
	batchPattern   string
	batchVars      []string
	batchCollapseX string
	batchSummary   string
	batchQuiet     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Summarize many dat files into one comparison report",
	Long: `Batch parses every matching file and writes a per-run summary CSV,
for comparison studies where each simulation directory holds the same data
file. Files come from positional globs, from --runs-dir discovery, or both.
A file that parses to nothing is reported and skipped, never fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		pattern := batchPattern
		if pattern == "" {
			pattern = c.BatchPattern
		}

		type input struct{ run, path string }
		var inputs []input
		seen := map[string]struct{}{}
		for _, arg := range args {
			matches, _ := filepath.Glob(arg)
			if len(matches) == 0 {
				if _, err := os.Stat(arg); err == nil {
					matches = []string{arg}
				}
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				run := strings.TrimSuffix(filepath.Base(m), filepath.Ext(m))
				inputs = append(inputs, input{run: run, path: m})
			}
		}
		if batchRunsDir != "" {
			found, err := discovery.FindRunFiles(batchRunsDir, pattern)
			if err != nil {
				return err
			}
			for _, rf := range found {
				if _, ok := seen[rf.Path]; ok {
					continue
				}
				seen[rf.Path] = struct{}{}
				inputs = append(inputs, input{run: rf.Run, path: rf.Path})
			}
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Slice(inputs, func(i, j int) bool { return inputs[i].run < inputs[j].run })

		b := report.NewBatch()
		for _, in := range inputs {
			t, diags := tabular.ParseFile(in.path, c.TabularOptions())
			if t.Empty() {
				b.Skip(in.path, strings.Join(diags, "; "))
				fmt.Printf("⚠ %s: nothing parsed\n", in.path)
				continue
			}
			if batchCollapseX != "" {
				if xName, err := resolveVariable(t, batchCollapseX); err == nil {
					if collapsed, err := t.CollapseDuplicates(xName); err == nil {
						t = collapsed
					}
				} else {
					debugf("%s: %v", in.path, err)
				}
			}
			var vars []string
			for _, sel := range batchVars {
				name, err := resolveVariable(t, sel)
				if err != nil {
					debugf("%s: %v", in.path, err)
					continue
				}
				vars = append(vars, name)
			}
			b.AddRun(in.run, in.path, t, vars)
			if !batchQuiet {
				fmt.Printf("✓ %s: %d rows, %d variables\n", in.path, t.NumRows(), t.NumCols())
			}
		}
		if len(b.Runs) == 0 {
			fmt.Println("⚠ No file in the batch produced data")
			return nil
		}

		summaryPath := batchSummary
		if summaryPath == "" {
			summaryPath = c.SummaryName + ".csv"
		}
		if err := b.WriteSummaryCSV(summaryPath); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		fmt.Printf("✓ Wrote summary to %s\n", summaryPath)
		if !batchQuiet {
			fmt.Print(b.Markdown())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchRunsDir, "runs-dir", "", "scan immediate subdirectories of this dir for data files")
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "", "file glob used with --runs-dir (default from config)")
	batchCmd.Flags().StringSliceVar(&batchVars, "var", nil, "variables to summarize (default all)")
	batchCmd.Flags().StringVar(&batchCollapseX, "collapse-x", "", "average rows sharing the same value of this variable")
	batchCmd.Flags().StringVarP(&batchSummary, "summary", "s", "", "summary CSV output path")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "suppress per-file progress and digest")
}
