// Package profile computes scale characteristics of a numeric variable to
// recommend linear vs logarithmic display.
package profile

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// DefaultLogRatio is the range ratio above which a log scale is
// recommended: the data spans more than two orders of magnitude. A
// heuristic constant, not exact science.
const DefaultLogRatio = 100.0

// Characteristics describes the scale of a variable. Derived read-only at
// call time, never cached.
type Characteristics struct {
	Min               float64 `yaml:"min" json:"min"`
	Max               float64 `yaml:"max" json:"max"`
	RangeRatio        float64 `yaml:"range_ratio" json:"range_ratio"`
	HasNegatives      bool    `yaml:"has_negatives" json:"has_negatives"`
	HasZeros          bool    `yaml:"has_zeros" json:"has_zeros"`
	OrdersOfMagnitude float64 `yaml:"orders_of_magnitude" json:"orders_of_magnitude"`
	LogScale          bool    `yaml:"log_scale" json:"log_scale"`
	Reason            string  `yaml:"reason" json:"reason"`
}

// Profile analyzes values with non-finite entries excluded. logRatio <= 0
// selects DefaultLogRatio.
func Profile(values []float64, logRatio float64) Characteristics {
	if logRatio <= 0 {
		logRatio = DefaultLogRatio
	}
	clean := make([]float64, 0, len(values))
	hasZeros := false
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v == 0 {
			hasZeros = true
		}
		clean = append(clean, v)
	}
	if len(clean) == 0 {
		return Characteristics{Reason: "no valid data"}
	}

	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)
	c := Characteristics{
		Min:          min,
		Max:          max,
		HasNegatives: min < 0,
		HasZeros:     hasZeros,
	}
	switch {
	case c.HasNegatives:
		c.Reason = "contains negative values; linear scale"
	case c.HasZeros:
		c.Reason = "contains zeros; linear scale"
	default:
		// Strictly positive data: the range ratio is well defined.
		c.RangeRatio = max / min
		c.OrdersOfMagnitude = math.Log10(c.RangeRatio)
		if c.RangeRatio > logRatio {
			c.LogScale = true
			c.Reason = fmt.Sprintf("spans %.1f orders of magnitude (ratio %.3g); log scale recommended",
				c.OrdersOfMagnitude, c.RangeRatio)
		} else {
			c.Reason = fmt.Sprintf("spans %.1f orders of magnitude (ratio %.3g); linear scale",
				c.OrdersOfMagnitude, c.RangeRatio)
		}
	}
	return c
}
