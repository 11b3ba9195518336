package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datprobe/datprobe/internal/profile"
	"github.com/datprobe/datprobe/internal/tabular"
)

var variablesCmd = &cobra.Command{
	Use:   "variables <file>",
	Short: "List the variables parsed from a dat file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := ensureConfig()
		t, diags := tabular.ParseFile(path, c.TabularOptions())
		if t.Empty() {
			fmt.Printf("⚠ Nothing parsed from %s\n", path)
			for _, d := range diags {
				fmt.Printf("  - %s\n", d)
			}
			return nil
		}
		fmt.Printf("%s: %d rows\n", path, t.NumRows())
		for i, name := range t.Names() {
			col, _ := t.Column(name)
			p := profile.Profile(col, c.LogScaleRatio)
			scale := "linear"
			if p.LogScale {
				scale = "log"
			}
			fmt.Printf("%3d. %s (n=%d, min %.4g, max %.4g, %s scale)\n",
				i+1, name, len(col), p.Min, p.Max, scale)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(variablesCmd)
}
