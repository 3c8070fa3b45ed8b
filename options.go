package chroma

// SelectorOption configures DistinguishableColors.
//
// Example:
//
//	// Restrict the pool to dark colors on 10 hue steps
//	colors, err := chroma.DistinguishableColors(6, nil,
//	    chroma.WithLightnessChoices(chroma.Span(20, 50, 8)),
//	    chroma.WithHueChoices(chroma.Span(0, 324, 10)),
//	)
type SelectorOption func(*selectorOptions)

// selectorOptions holds the candidate grid and comparison transform.
type selectorOptions struct {
	lchoices  []float64
	cchoices  []float64
	hchoices  []float64
	transform func(Color) Color
	metric    Metric
}

func defaultSelectorOptions() selectorOptions {
	return selectorOptions{
		lchoices: Span(0, 100, 15),
		cchoices: Span(0, 100, 15),
		hchoices: hueChoices(20),
		metric:   DE2000(),
	}
}

// hueChoices spreads n hue values across [0, 340), leaving a gap before
// the wraparound so the first and last candidates stay distinct.
func hueChoices(n int) []float64 {
	h := make([]float64, n)
	for i := range h {
		h[i] = float64(i) * 340 / float64(n)
	}
	return h
}

// Span returns n evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	s := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range s {
		s[i] = lo + float64(i)*step
	}
	s[n-1] = hi
	return s
}

// WithLightnessChoices sets the L values of the LCHab candidate grid.
func WithLightnessChoices(l []float64) SelectorOption {
	return func(o *selectorOptions) {
		if len(l) > 0 {
			o.lchoices = l
		}
	}
}

// WithChromaChoices sets the C values of the LCHab candidate grid.
func WithChromaChoices(c []float64) SelectorOption {
	return func(o *selectorOptions) {
		if len(c) > 0 {
			o.cchoices = c
		}
	}
}

// WithHueChoices sets the H values of the LCHab candidate grid.
func WithHueChoices(h []float64) SelectorOption {
	return func(o *selectorOptions) {
		if len(h) > 0 {
			o.hchoices = h
		}
	}
}

// WithTransform applies a transform to both colors before every
// distance evaluation. The common use is simulating a color-vision
// deficiency so that the selected set stays distinguishable for
// dichromat viewers:
//
//	chroma.WithTransform(func(c chroma.Color) chroma.Color {
//	    return chroma.Deuteranopic(c, 1)
//	})
func WithTransform(f func(Color) Color) SelectorOption {
	return func(o *selectorOptions) { o.transform = f }
}

// WithMetric replaces the CIEDE2000 objective with another metric.
func WithMetric(m Metric) SelectorOption {
	return func(o *selectorOptions) { o.metric = m }
}
