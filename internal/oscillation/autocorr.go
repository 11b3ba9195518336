package oscillation

import "math"

// Autocorrelation first-peak constraints: a peak must clear minimum height
// 0.1 and sit at least 10 lags from a stronger one.
const (
	acfMinPeakHeight   = 0.1
	acfMinPeakDistance = 10
)

// autocorrelation estimates frequency from the lag of the first peak of
// the normalized autocorrelation of the detrended signal. Confidence is
// the autocorrelation value at that lag.
func autocorrelation(signal []float64, rate float64, opt Options) Result {
	n := len(signal)
	if n < 4 {
		return Result{Method: FailedVariant(MethodAutocorrelation)}
	}
	x := detrend(signal)

	// Non-negative-lag half of the full autocorrelation.
	ac := make([]float64, n)
	for k := 0; k < n; k++ {
		var s float64
		for i := 0; i+k < n; i++ {
			s += x[i] * x[i+k]
		}
		ac[k] = s
	}
	ac0 := ac[0]
	if ac0 == 0 {
		return Result{Method: FailedVariant(MethodAutocorrelation)}
	}
	for k := range ac {
		ac[k] /= ac0
	}

	peaks := findPeaks(ac, acfMinPeakDistance, acfMinPeakHeight)
	if len(peaks) == 0 {
		return Result{Method: MethodAutocorrelation}
	}
	lag := peaks[0]
	conf := ac[lag]
	if math.IsNaN(conf) {
		return Result{Method: FailedVariant(MethodAutocorrelation)}
	}
	return Result{
		HasOscillation: conf > opt.ConfidenceThreshold,
		Frequency:      rate / float64(lag),
		Confidence:     conf,
		Method:         MethodAutocorrelation,
	}
}
