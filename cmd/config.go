package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/datprobe/datprobe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set datprobe configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		fmt.Printf("numeric_line_threshold: %.3f\n", c.NumericLineThreshold)
		fmt.Printf("header_alpha_threshold: %.3f\n", c.HeaderAlphaThreshold)
		fmt.Printf("header_lookback: %d\n", c.HeaderLookback)
		fmt.Printf("log_scale_ratio: %.3f\n", c.LogScaleRatio)
		fmt.Printf("min_samples: %d\n", c.MinSamples)
		fmt.Printf("max_window: %d\n", c.MaxWindow)
		fmt.Printf("confidence_threshold: %.3f\n", c.ConfidenceThreshold)
		fmt.Printf("sampling_rate: %.3f\n", c.SamplingRate)
		fmt.Printf("batch_pattern: %s\n", c.BatchPattern)
		fmt.Printf("summary_name: %s\n", c.SummaryName)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := ensureConfig()
		switch key {
		case "numeric_line_threshold":
			f, err := parseFraction(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			c.NumericLineThreshold = f
		case "header_alpha_threshold":
			f, err := parseFraction(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			c.HeaderAlphaThreshold = f
		case "header_lookback":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			c.HeaderLookback = i
		case "log_scale_ratio":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 1 {
				return fmt.Errorf("invalid %s: %v (must be > 1)", key, val)
			}
			c.LogScaleRatio = f
		case "min_samples":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			c.MinSamples = i
		case "max_window":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			c.MaxWindow = i
		case "confidence_threshold":
			f, err := parseFraction(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			c.ConfidenceThreshold = f
		case "sampling_rate":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid %s: %v (must be > 0)", key, val)
			}
			c.SamplingRate = f
		case "batch_pattern":
			c.BatchPattern = val
		case "summary_name":
			c.SummaryName = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func parseFraction(val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 || f > 1 {
		return 0, fmt.Errorf("%v not in (0,1]", val)
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
