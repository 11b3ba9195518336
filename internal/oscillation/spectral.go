package oscillation

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// spectral estimates the dominant frequency from the discrete Fourier
// transform of the detrended, Hann-tapered signal. Confidence is the
// prominence of the strongest positive-frequency bin over the background,
// scaled by 1/10 and capped at 1.
func spectral(signal []float64, rate float64, opt Options) Result {
	n := len(signal)
	if n < 4 {
		return Result{Method: FailedVariant(MethodFFT)}
	}
	x := detrend(signal)
	for i := range x {
		x[i] *= 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, x)

	// Positive frequencies only; bin 0 is the (removed) mean.
	bestIdx := -1
	bestMag, sum := 0.0, 0.0
	for i := 1; i < len(coeffs); i++ {
		mag := cmplx.Abs(coeffs[i])
		sum += mag
		if mag > bestMag {
			bestMag, bestIdx = mag, i
		}
	}
	if bestIdx < 0 || sum == 0 {
		return Result{Method: FailedVariant(MethodFFT)}
	}
	mean := sum / float64(len(coeffs)-1)
	conf := math.Min(bestMag/mean/10, 1.0)
	return Result{
		HasOscillation: conf > opt.ConfidenceThreshold,
		Frequency:      fft.Freq(bestIdx) * rate,
		Confidence:     conf,
		Method:         MethodFFT,
	}
}
