package tabular

// Options controls the parsing heuristics. The defaults are the values the
// detector was tuned with; both thresholds are heuristic knobs, not exact
// science, and can be adjusted through configuration.
type Options struct {
	// NumericLineThreshold is the minimum fraction of numeric tokens for a
	// line to classify as data.
	NumericLineThreshold float64
	// HeaderAlphaThreshold is the minimum fraction of alphabetic-containing
	// tokens for a line to look header-like.
	HeaderAlphaThreshold float64
	// HeaderLookback bounds how many lines above the first data line are
	// searched for a late header.
	HeaderLookback int
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		NumericLineThreshold: 0.8,
		HeaderAlphaThreshold: 0.5,
		HeaderLookback:       9,
	}
}

func (o Options) sane() Options {
	if o.NumericLineThreshold <= 0 || o.NumericLineThreshold > 1 {
		o.NumericLineThreshold = 0.8
	}
	if o.HeaderAlphaThreshold <= 0 || o.HeaderAlphaThreshold > 1 {
		o.HeaderAlphaThreshold = 0.5
	}
	if o.HeaderLookback <= 0 {
		o.HeaderLookback = 9
	}
	return o
}
