package oscillation

// detrend removes the least-squares linear trend from x and returns a new
// slice. The input is not modified.
func detrend(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n < 2 {
		copy(out, x)
		return out
	}
	tm := float64(n-1) / 2
	var xm float64
	for _, v := range x {
		xm += v
	}
	xm /= float64(n)
	var num, den float64
	for i, v := range x {
		dt := float64(i) - tm
		num += dt * (v - xm)
		den += dt * dt
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	for i, v := range x {
		out[i] = v - xm - slope*(float64(i)-tm)
	}
	return out
}
