package pattern

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Image is a fixed-size, row-major buffer of float colors. New images are
// opaque black. Every accessor validates its coordinates.
type Image struct {
	width  int
	height int
	pix    []Color
}

// NewImage creates a width by height image filled with opaque black.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	img := &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	img.Fill(Black)
	return img, nil
}

// Width returns the width of the image.
func (m *Image) Width() int { return m.width }

// Height returns the height of the image.
func (m *Image) Height() int { return m.height }

// Len returns the number of pixels.
func (m *Image) Len() int { return len(m.pix) }

// Pix returns the row-major pixel buffer. Pixel (x, y) is at y*Width()+x.
func (m *Image) Pix() []Color { return m.pix }

// Pixel returns the color at (x, y).
func (m *Image) Pixel(x, y int) (Color, error) {
	if err := m.check(x, y); err != nil {
		return Color{}, err
	}
	return m.pix[y*m.width+x], nil
}

// SetPixel sets the color at (x, y).
func (m *Image) SetPixel(x, y int, c Color) error {
	if err := m.check(x, y); err != nil {
		return err
	}
	m.pix[y*m.width+x] = c
	return nil
}

// PixelAt returns the color at flat index i.
func (m *Image) PixelAt(i int) (Color, error) {
	if i < 0 || i >= len(m.pix) {
		return Color{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, i, len(m.pix))
	}
	return m.pix[i], nil
}

// SetPixelAt sets the color at flat index i.
func (m *Image) SetPixelAt(i int, c Color) error {
	if i < 0 || i >= len(m.pix) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, i, len(m.pix))
	}
	m.pix[i] = c
	return nil
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := range m.pix {
		m.pix[i] = c
	}
}

func (m *Image) check(x, y int) error {
	if x < 0 || x >= m.width {
		return fmt.Errorf("%w: x=%d not in [0, %d)", ErrOutOfBounds, x, m.width)
	}
	if y < 0 || y >= m.height {
		return fmt.Errorf("%w: y=%d not in [0, %d)", ErrOutOfBounds, y, m.height)
	}
	return nil
}

// At implements the image.Image interface. Out-of-range pixels are
// transparent.
func (m *Image) At(x, y int) color.Color {
	c, err := m.Pixel(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToNRGBA converts the image to 8-bit straight-alpha pixels.
func (m *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(m.Bounds())
	for i, c := range m.pix {
		n := c.NRGBA()
		copy(dst.Pix[i*4:i*4+4], []uint8{n.R, n.G, n.B, n.A})
	}
	return dst
}

// toOpaqueRGBA converts the image to 8-bit RGB, dropping alpha.
func (m *Image) toOpaqueRGBA() *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	for i, c := range m.pix {
		n := c.NRGBA()
		copy(dst.Pix[i*4:i*4+4], []uint8{n.R, n.G, n.B, 0xff})
	}
	return dst
}

// FromImage creates an Image from any image.Image.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	m, err := NewImage(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := range m.height {
		for x := range m.width {
			m.pix[y*m.width+x] = FromColor(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return m, nil
}

// EncodePNG writes the image as a PNG with alpha.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.ToNRGBA())
}

// EncodeBMP writes the image as a 24-bit bottom-up BMP. Alpha is dropped.
func (m *Image) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, m.toOpaqueRGBA())
}

// Save writes the image to path, choosing PNG or BMP by extension.
func (m *Image) Save(path string) error {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = m.EncodePNG
	case ".bmp":
		encode = m.EncodeBMP
	default:
		return fmt.Errorf("%w: image format %q", ErrUnsupportedConfiguration, ext)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Resize returns a copy scaled to width by height. Smooth selects
// Catmull-Rom interpolation; otherwise nearest neighbor is used.
func (m *Image) Resize(width, height int, smooth bool) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if smooth {
		scaler = xdraw.CatmullRom
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), m.ToNRGBA(), m.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
