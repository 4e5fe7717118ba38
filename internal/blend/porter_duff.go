// Package blend implements Porter-Duff compositing operators and the
// separable blend modes on floating point colors.
//
// Inputs and outputs are straight (non-premultiplied) RGBA in [0, 1].
// Operators premultiply internally and return a straight color, so callers
// can chain them on the unclamped intermediate values produced while
// compositing a pattern tree.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	Clear           Mode = iota // Result: 0
	Source                      // Result: S
	Destination                 // Result: D
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	Plus                        // Result: S + D
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case Clear:
		return "clear"
	case Source:
		return "source"
	case Destination:
		return "destination"
	case SourceOver:
		return "source-over"
	case DestinationOver:
		return "destination-over"
	case Plus:
		return "plus"
	}
	if name, ok := separableNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode returns the mode whose String is name.
func ParseMode(name string) (Mode, bool) {
	for m := Clear; m <= Exclusion; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return SourceOver, false
}

// Func is the signature for blend operations on straight-alpha colors.
type Func func(sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b, a float64)

// GetFunc returns the blend function for the given mode.
// Returns SourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Destination:
		return blendDestination
	case DestinationOver:
		return blendDestinationOver
	case Plus:
		return blendPlus
	}
	if b, ok := separableFuncs[mode]; ok {
		return separable(b)
	}
	return BlendSourceOver
}

func blendClear(_, _, _, _, _, _, _, _ float64) (float64, float64, float64, float64) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ float64) (float64, float64, float64, float64) {
	return sr, sg, sb, sa
}

func blendDestination(_, _, _, _, dr, dg, db, da float64) (float64, float64, float64, float64) {
	return dr, dg, db, da
}

// BlendSourceOver draws the source layer on top of the destination.
// Formula (premultiplied): S + D * (1 - Sa)
func BlendSourceOver(sr, sg, sb, sa, dr, dg, db, da float64) (float64, float64, float64, float64) {
	if sa >= 1 {
		return sr, sg, sb, sa
	}
	k := da * (1 - sa)
	a := sa + k
	if a <= 0 {
		return 0, 0, 0, 0
	}
	return (sr*sa + dr*k) / a,
		(sg*sa + dg*k) / a,
		(sb*sa + db*k) / a,
		a
}

// blendDestinationOver draws the destination on top of the source.
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da float64) (float64, float64, float64, float64) {
	return BlendSourceOver(dr, dg, db, da, sr, sg, sb, sa)
}

// blendPlus adds premultiplied source and destination.
// The result is not clamped.
func blendPlus(sr, sg, sb, sa, dr, dg, db, da float64) (float64, float64, float64, float64) {
	a := sa + da
	if a <= 0 {
		return 0, 0, 0, 0
	}
	return (sr*sa + dr*da) / a,
		(sg*sa + dg*da) / a,
		(sb*sa + db*da) / a,
		a
}
