package oscillation

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// peakInterval estimates frequency from the spacing of local maxima of the
// raw signal. Confidence rewards regular spacing: 1 - stddev/mean of the
// consecutive intervals, floored at 0.
//
// The spacing floor regularizes even random peaks, so an extra gate
// applies: when the mean interval stays under twice the enforced minimum
// spacing the intervals measure the floor, not the signal, and no
// oscillation is claimed.
func peakInterval(signal []float64, rate float64, opt Options) Result {
	minDist := len(signal) / 100
	if minDist < 1 {
		minDist = 1
	}
	maxima := findPeaks(signal, minDist, math.Inf(-1))
	minima := findPeaks(negate(signal), minDist, math.Inf(-1))
	if len(maxima) <= 2 || len(minima) <= 2 {
		return Result{Method: MethodPeakDetection}
	}

	intervals := make([]float64, len(maxima)-1)
	for i := 1; i < len(maxima); i++ {
		intervals[i-1] = float64(maxima[i] - maxima[i-1])
	}
	mean, err := stats.Mean(intervals)
	if err != nil || mean <= 0 {
		return Result{Method: FailedVariant(MethodPeakDetection)}
	}
	std, err := stats.StandardDeviation(intervals)
	if err != nil {
		return Result{Method: FailedVariant(MethodPeakDetection)}
	}
	if mean < 2*float64(minDist) {
		return Result{Method: MethodPeakDetection}
	}

	conf := math.Max(0, 1-std/mean)
	return Result{
		HasOscillation: conf > opt.ConfidenceThreshold && len(maxima) > 3,
		Frequency:      rate / mean,
		Confidence:     conf,
		Method:         MethodPeakDetection,
	}
}

// findPeaks returns indices of local maxima at least minDist apart and at
// least minHeight tall, in ascending index order. When two candidates sit
// too close the higher one wins.
func findPeaks(x []float64, minDist int, minHeight float64) []int {
	if minDist < 1 {
		minDist = 1
	}
	var cand []int
	for i := 1; i < len(x)-1; i++ {
		if x[i] > x[i-1] && x[i] >= x[i+1] && x[i] >= minHeight {
			cand = append(cand, i)
		}
	}
	sort.SliceStable(cand, func(a, b int) bool { return x[cand[a]] > x[cand[b]] })
	var kept []int
	for _, c := range cand {
		ok := true
		for _, k := range kept {
			if d := c - k; d < minDist && d > -minDist {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}
	sort.Ints(kept)
	return kept
}

func negate(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = -v
	}
	return out
}
