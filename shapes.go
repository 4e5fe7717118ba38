package pattern

import "fmt"

// Unicolor contributes a single color everywhere. Its bounds are infinite,
// so it is meant as a backdrop or as the fill of another shape.
type Unicolor struct {
	transform
	color Color
}

// NewUnicolor creates a pattern that is c everywhere.
func NewUnicolor(c Color) *Unicolor {
	return &Unicolor{transform: newTransform(), color: c}
}

// Color returns the fill color.
func (u *Unicolor) Color() Color { return u.color }

// SetColor changes the fill color.
func (u *Unicolor) SetColor(c Color) { u.color = c }

// ColorAt implements Pattern.
func (u *Unicolor) ColorAt(p Point) (Color, bool) { return u.colorAtLocal(u.toLocal(p)) }

// BoundingBox implements Pattern.
func (u *Unicolor) BoundingBox() BoundingBox { return u.cachedBounds(u.localBounds) }

func (u *Unicolor) colorAtLocal(Point) (Color, bool) { return u.color, true }

func (u *Unicolor) localBounds() BoundingBox { return InfiniteBoundingBox() }

// Circle is a disc of a given radius centered on its local origin.
// Inside the disc it contributes the color of its fill pattern.
type Circle struct {
	transform
	radius float64
	fill   Pattern
}

// NewCircle creates a circle of radius r. The fill may be nil, in which
// case the circle is opaque white.
func NewCircle(r float64, fill Pattern) (*Circle, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: circle radius %g must be positive", ErrInvalidArgument, r)
	}
	return &Circle{transform: newTransform(), radius: r, fill: fill}, nil
}

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// Fill returns the fill pattern, or nil.
func (c *Circle) Fill() Pattern { return c.fill }

// SetFill replaces the fill pattern.
func (c *Circle) SetFill(fill Pattern) { c.fill = fill }

// ColorAt implements Pattern.
func (c *Circle) ColorAt(p Point) (Color, bool) { return c.colorAtLocal(c.toLocal(p)) }

// BoundingBox implements Pattern.
func (c *Circle) BoundingBox() BoundingBox { return c.cachedBounds(c.localBounds) }

func (c *Circle) colorAtLocal(p Point) (Color, bool) {
	if p.LengthSquared() > c.radius*c.radius {
		return Color{}, false
	}
	return fillColor(c.fill, p)
}

func (c *Circle) localBounds() BoundingBox {
	return NewBoundingBox(Point{}, 2*c.radius, 2*c.radius)
}

// Rectangle is an axis-aligned rectangle centered on its local origin.
type Rectangle struct {
	transform
	width, height float64
	fill          Pattern
}

// NewRectangle creates a w by h rectangle. The fill may be nil, in which
// case the rectangle is opaque white.
func NewRectangle(w, h float64, fill Pattern) (*Rectangle, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rectangle size %gx%g must be positive", ErrInvalidArgument, w, h)
	}
	return &Rectangle{transform: newTransform(), width: w, height: h, fill: fill}, nil
}

// Size returns the width and height.
func (r *Rectangle) Size() (w, h float64) { return r.width, r.height }

// Fill returns the fill pattern, or nil.
func (r *Rectangle) Fill() Pattern { return r.fill }

// SetFill replaces the fill pattern.
func (r *Rectangle) SetFill(fill Pattern) { r.fill = fill }

// ColorAt implements Pattern.
func (r *Rectangle) ColorAt(p Point) (Color, bool) { return r.colorAtLocal(r.toLocal(p)) }

// BoundingBox implements Pattern.
func (r *Rectangle) BoundingBox() BoundingBox { return r.cachedBounds(r.localBounds) }

func (r *Rectangle) colorAtLocal(p Point) (Color, bool) {
	if p.X < -r.width/2 || p.X > r.width/2 || p.Y < -r.height/2 || p.Y > r.height/2 {
		return Color{}, false
	}
	return fillColor(r.fill, p)
}

func (r *Rectangle) localBounds() BoundingBox {
	return NewBoundingBox(Point{}, r.width, r.height)
}
