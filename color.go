package pattern

import (
	"image/color"

	"github.com/gogpu/pattern/internal/blend"
)

// Color represents a straight-alpha color with red, green, blue, and alpha
// components. Each component is nominally in the range [0, 1]; intermediate
// results of Add, Mul and Over may leave that range until Saturate is called.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// Add returns the channel-wise sum of two colors, alpha included.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Mul returns every channel, alpha included, multiplied by s.
func (c Color) Mul(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Over composites c on top of dst with the Porter-Duff "over" operator.
func (c Color) Over(dst Color) Color {
	return c.Blend(dst, blend.SourceOver)
}

// Blend composites c onto dst with the given blend mode.
func (c Color) Blend(dst Color, mode blend.Mode) Color {
	r, g, b, a := blend.GetFunc(mode)(c.R, c.G, c.B, c.A, dst.R, dst.G, dst.B, dst.A)
	return Color{R: r, G: g, B: b, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Saturate clamps every channel to [0, 1].
func (c Color) Saturate() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// ARGB packs the saturated color into 0xAARRGGBB with 8 bits per channel.
func (c Color) ARGB() uint32 {
	s := c.Saturate()
	return uint32(to8(s.A))<<24 | uint32(to8(s.R))<<16 | uint32(to8(s.G))<<8 | uint32(to8(s.B))
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the saturated color to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	s := c.Saturate()
	return color.NRGBA{R: to8(s.R), G: to8(s.G), B: to8(s.B), A: to8(s.A)}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unrecognized input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v[i] = parseHex(hex[i:i+1]) * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v[i/2] = parseHex(hex[i : i+2])
		}
	default:
		return Black
	}

	return RGBA(float64(v[0])/255, float64(v[1])/255, float64(v[2])/255, float64(v[3])/255)
}

func parseHex(s string) uint32 {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0
		}
	}
	return val
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8 maps [0, 1] to [0, 255] with rounding.
func to8(x float64) uint8 {
	return uint8(x*255 + 0.5)
}
