package pattern

import (
	"fmt"
	"math"
)

// BoundingBox is an axis-aligned box described by its center and size.
//
// The zero value is an empty box: it contains nothing and merging it with
// another box yields the other box. An infinite box contains every point
// and absorbs everything it is merged with.
type BoundingBox struct {
	center   Point
	width    float64
	height   float64
	valid    bool
	infinite bool
}

// NewBoundingBox returns a box centered at center with the given size.
// Negative sizes are treated as zero.
func NewBoundingBox(center Point, width, height float64) BoundingBox {
	return BoundingBox{
		center: center,
		width:  math.Max(width, 0),
		height: math.Max(height, 0),
		valid:  true,
	}
}

// InfiniteBoundingBox returns a box that covers the whole plane.
func InfiniteBoundingBox() BoundingBox {
	return BoundingBox{valid: true, infinite: true}
}

// BoundingBoxFromCorners returns the smallest box holding both corners.
func BoundingBoxFromCorners(minPt, maxPt Point) BoundingBox {
	var b BoundingBox
	b.AddPoint(minPt)
	b.AddPoint(maxPt)
	return b
}

// Center returns the center point.
func (b BoundingBox) Center() Point { return b.center }

// Width returns the full horizontal extent.
func (b BoundingBox) Width() float64 {
	if b.infinite {
		return math.Inf(1)
	}
	return b.width
}

// Height returns the full vertical extent.
func (b BoundingBox) Height() float64 {
	if b.infinite {
		return math.Inf(1)
	}
	return b.height
}

// HRadius returns half the width.
func (b BoundingBox) HRadius() float64 { return b.Width() / 2 }

// VRadius returns half the height.
func (b BoundingBox) VRadius() float64 { return b.Height() / 2 }

// IsInfinite reports whether the box covers the whole plane.
func (b BoundingBox) IsInfinite() bool { return b.infinite }

// IsEmpty reports whether the box holds no point at all.
func (b BoundingBox) IsEmpty() bool { return !b.valid }

// Min returns the top-left corner.
func (b BoundingBox) Min() Point {
	return Point{X: b.center.X - b.HRadius(), Y: b.center.Y - b.VRadius()}
}

// Max returns the bottom-right corner.
func (b BoundingBox) Max() Point {
	return Point{X: b.center.X + b.HRadius(), Y: b.center.Y + b.VRadius()}
}

// Corners returns the four corners in clockwise order from the top-left.
func (b BoundingBox) Corners() [4]Point {
	lo, hi := b.Min(), b.Max()
	return [4]Point{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

// SetCenter moves the box without changing its size.
func (b *BoundingBox) SetCenter(c Point) {
	b.center = c
	b.valid = true
}

// SetWidth changes the width, keeping the center.
func (b *BoundingBox) SetWidth(w float64) {
	b.width = math.Max(w, 0)
	b.valid = true
}

// SetHeight changes the height, keeping the center.
func (b *BoundingBox) SetHeight(h float64) {
	b.height = math.Max(h, 0)
	b.valid = true
}

// AddPoint grows the box to include p.
func (b *BoundingBox) AddPoint(p Point) {
	switch {
	case b.infinite:
		return
	case !b.valid:
		*b = NewBoundingBox(p, 0, 0)
		return
	}
	lo, hi := b.Min(), b.Max()
	b.setExtents(
		Point{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)},
		Point{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)},
	)
}

// Merge grows the box to include other.
func (b *BoundingBox) Merge(other BoundingBox) {
	switch {
	case !other.valid || b.infinite:
		return
	case other.infinite || !b.valid:
		*b = other
		return
	}
	lo, hi := b.Min(), b.Max()
	olo, ohi := other.Min(), other.Max()
	b.setExtents(
		Point{X: math.Min(lo.X, olo.X), Y: math.Min(lo.Y, olo.Y)},
		Point{X: math.Max(hi.X, ohi.X), Y: math.Max(hi.Y, ohi.Y)},
	)
}

// Transform maps the four corners through m and refits an axis-aligned
// box around them. Under rotation the result is conservative, not tight.
// Empty and infinite boxes are left unchanged.
func (b *BoundingBox) Transform(m Matrix) {
	if !b.valid || b.infinite {
		return
	}
	corners := b.Corners()
	*b = BoundingBox{}
	for _, c := range corners {
		b.AddPoint(m.TransformPoint(c))
	}
}

// Transformed returns a copy of b transformed by m.
func (b BoundingBox) Transformed(m Matrix) BoundingBox {
	b.Transform(m)
	return b
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	if b.infinite {
		return true
	}
	if !b.valid {
		return false
	}
	return math.Abs(p.X-b.center.X) <= b.width/2 &&
		math.Abs(p.Y-b.center.Y) <= b.height/2
}

// Intersects reports whether the two boxes overlap: on each axis the
// distance between centers is at most the sum of the half extents.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	if !b.valid || !other.valid {
		return false
	}
	if b.infinite || other.infinite {
		return true
	}
	return math.Abs(b.center.X-other.center.X) <= b.width/2+other.width/2 &&
		math.Abs(b.center.Y-other.center.Y) <= b.height/2+other.height/2
}

// ContainsBox reports whether other lies entirely inside b.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	switch {
	case !b.valid || !other.valid:
		return false
	case b.infinite:
		return true
	case other.infinite:
		return false
	}
	if !b.Intersects(other) {
		return false
	}
	lo, hi := b.Min(), b.Max()
	olo, ohi := other.Min(), other.Max()
	return olo.X >= lo.X && olo.Y >= lo.Y && ohi.X <= hi.X && ohi.Y <= hi.Y
}

// String implements fmt.Stringer.
func (b BoundingBox) String() string {
	switch {
	case !b.valid:
		return "BoundingBox(empty)"
	case b.infinite:
		return "BoundingBox(infinite)"
	}
	return fmt.Sprintf("BoundingBox(center=(%g,%g) size=%gx%g)", b.center.X, b.center.Y, b.width, b.height)
}

func (b *BoundingBox) setExtents(lo, hi Point) {
	b.center = Point{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
	b.width = hi.X - lo.X
	b.height = hi.Y - lo.Y
	b.valid = true
}
