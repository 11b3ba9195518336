package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datprobe/datprobe/internal/tabular"
	"github.com/datprobe/datprobe/internal/utils"
)

var (
	anaVar        string
	anaX          string
	anaRate       float64
	anaCollapseX  string
	anaOutputPath string
	anaFormat     string
	anaNoOsc      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Parse a dat file, profile its variables and detect oscillations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := ensureConfig()

		t, diags := tabular.ParseFile(path, c.TabularOptions())
		for _, d := range diags {
			debugf("parse: %s", d)
		}
		if t.Empty() {
			fmt.Printf("⚠ Nothing parsed from %s\n", path)
			for _, d := range diags {
				fmt.Printf("  - %s\n", d)
			}
			return nil
		}
		if anaCollapseX != "" {
			xName, err := resolveVariable(t, anaCollapseX)
			if err != nil {
				return err
			}
			collapsed, err := t.CollapseDuplicates(xName)
			if err != nil {
				return err
			}
			t = collapsed
		}

		var targets []string
		if anaVar != "" {
			name, err := resolveVariable(t, anaVar)
			if err != nil {
				return err
			}
			targets = []string{name}
		}
		rate := samplingRate(t, anaX, anaRate, c)
		debugf("sampling rate: %g", rate)

		a := buildAnalysis(path, t, diags, targets, rate, c)
		if anaNoOsc {
			for i := range a.Variables {
				a.Variables[i].Oscillation = nil
			}
		}

		var out []byte
		switch strings.ToLower(anaFormat) {
		case "", "markdown", "md":
			out = []byte(a.Markdown())
		case "yaml", "yml":
			b, err := a.YAML()
			if err != nil {
				return err
			}
			out = b
		case "json":
			b, err := a.JSON()
			if err != nil {
				return err
			}
			out = b
		default:
			return fmt.Errorf("unsupported --format: %s (use markdown|yaml|json)", anaFormat)
		}

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", anaOutputPath)
			return nil
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaVar, "var", "", "variable to analyze for oscillation (name or 1-based index; default all)")
	analyzeCmd.Flags().StringVar(&anaX, "x", "", "variable providing axis spacing for the sampling rate")
	analyzeCmd.Flags().Float64Var(&anaRate, "rate", 0, "sampling rate override (samples per unit time)")
	analyzeCmd.Flags().StringVar(&anaCollapseX, "collapse-x", "", "average rows sharing the same value of this variable")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the analysis")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "markdown", "output format: markdown|yaml|json")
	analyzeCmd.Flags().BoolVar(&anaNoOsc, "no-oscillation", false, "skip oscillation detection")
}
