// Package oscillation detects periodic behavior in a signal. Three
// independent estimators run over the same window and a max-confidence
// arbitration picks the answer; one estimator failing never silences the
// others.
package oscillation

import "math"

// Estimator method tags carried in Result.Method. A failed estimator
// reports the "<method>_failed" variant.
const (
	MethodFFT             = "FFT"
	MethodAutocorrelation = "Autocorrelation"
	MethodPeakDetection   = "Peak_detection"
	MethodNone            = "none_detected"
	MethodInsufficient    = "insufficient_data"
)

// FailedVariant tags a method name as numerically failed.
func FailedVariant(method string) string { return method + "_failed" }

// Result is one oscillation verdict. Confidence is a heuristic strength
// score in [0,1], not a probability. Never mutated after construction.
type Result struct {
	HasOscillation bool    `yaml:"has_oscillation" json:"has_oscillation"`
	Frequency      float64 `yaml:"frequency" json:"frequency"`
	Confidence     float64 `yaml:"confidence" json:"confidence"`
	Method         string  `yaml:"method" json:"method"`
}

// Options bounds the analysis. Defaults are the tuned values.
type Options struct {
	// MinSamples is the minimum number of finite samples required before
	// any estimator runs.
	MinSamples int
	// MaxWindow caps analysis to the most recent samples, bounding cost
	// and favoring recent dynamics.
	MaxWindow int
	// ConfidenceThreshold is the minimum estimator confidence to claim an
	// oscillation.
	ConfidenceThreshold float64
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{MinSamples: 100, MaxWindow: 10000, ConfidenceThreshold: 0.3}
}

func (o Options) sane() Options {
	if o.MinSamples <= 0 {
		o.MinSamples = 100
	}
	if o.MaxWindow <= 0 {
		o.MaxWindow = 10000
	}
	if o.ConfidenceThreshold <= 0 {
		o.ConfidenceThreshold = 0.3
	}
	return o
}

type estimator struct {
	method string
	run    func(signal []float64, rate float64, opt Options) Result
}

// Arbitration order; ties on confidence resolve to the earlier estimator.
var estimators = []estimator{
	{MethodFFT, spectral},
	{MethodAutocorrelation, autocorrelation},
	{MethodPeakDetection, peakInterval},
}

// Detect analyzes signal sampled at rate samples per unit time. A
// non-positive rate is treated as 1.0. The call never fails: degenerate
// input yields a sentinel result.
func Detect(signal []float64, rate float64, opt Options) Result {
	opt = opt.sane()
	if rate <= 0 {
		rate = 1.0
	}
	clean := make([]float64, 0, len(signal))
	for _, v := range signal {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) < opt.MinSamples {
		return Result{Method: MethodInsufficient}
	}
	if len(clean) > opt.MaxWindow {
		clean = clean[len(clean)-opt.MaxWindow:]
	}

	best := Result{Method: MethodNone}
	for _, e := range estimators {
		r := run(e, clean, rate, opt)
		if r.HasOscillation && (!best.HasOscillation || r.Confidence > best.Confidence) {
			best = r
		}
	}
	return best
}

// run shields the arbitration from estimator panics: a numerical failure
// becomes a non-oscillating failed-variant result.
func run(e estimator, signal []float64, rate float64, opt Options) (res Result) {
	defer func() {
		if recover() != nil {
			res = Result{Method: FailedVariant(e.method)}
		}
	}()
	return e.run(signal, rate, opt)
}
