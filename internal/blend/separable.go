package blend

import "math"

// Separable blend modes from W3C Compositing and Blending Level 1. They
// extend Mode after the Porter-Duff operators.
const (
	Multiply   Mode = iota + Plus + 1 // B = S * D
	Screen                            // B = 1 - (1-S)*(1-D)
	Overlay                           // HardLight with swapped layers
	Darken                            // B = min(S, D)
	Lighten                           // B = max(S, D)
	HardLight                         // Multiply or Screen depending on source
	Difference                        // B = |S - D|
	Exclusion                         // B = S + D - 2*S*D
)

var separableNames = map[Mode]string{
	Multiply:   "multiply",
	Screen:     "screen",
	Overlay:    "overlay",
	Darken:     "darken",
	Lighten:    "lighten",
	HardLight:  "hard-light",
	Difference: "difference",
	Exclusion:  "exclusion",
}

// channelFunc is B(Cs, Cb) on straight channel values.
type channelFunc func(s, d float64) float64

var separableFuncs = map[Mode]channelFunc{
	Multiply:   func(s, d float64) float64 { return s * d },
	Screen:     screen,
	Overlay:    func(s, d float64) float64 { return hardLight(d, s) },
	Darken:     math.Min,
	Lighten:    math.Max,
	HardLight:  hardLight,
	Difference: func(s, d float64) float64 { return math.Abs(s - d) },
	Exclusion:  func(s, d float64) float64 { return s + d - 2*s*d },
}

func screen(s, d float64) float64 { return s + d - s*d }

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return screen(2*s-1, d)
}

// separable wraps a channel function in the general compositing formula
//
//	Co = (1 - Da)*Sa*S + (1 - Sa)*Da*D + Sa*Da*B(S, D)
//	Ao = Sa + Da*(1 - Sa)
//
// and returns the straight result.
func separable(b channelFunc) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da float64) (float64, float64, float64, float64) {
		a := sa + da*(1-sa)
		if a <= 0 {
			return 0, 0, 0, 0
		}
		ch := func(s, d float64) float64 {
			return ((1-da)*sa*s + (1-sa)*da*d + sa*da*b(s, d)) / a
		}
		return ch(sr, dr), ch(sg, dg), ch(sb, db), a
	}
}
