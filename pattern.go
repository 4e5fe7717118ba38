package pattern

import "fmt"

// Pattern is a shape and color function over the plane.
//
// Each pattern lives in its own local coordinate space and is reached from
// its parent's space (world space, for a root pattern) through an affine
// transform built with Translate, Scale and Rotate. Operations compose in
// call order, each one applied in the parent's space.
//
// The set of patterns is closed: Unicolor, Circle, Rectangle, Union and
// Quadtree. A pattern may be shared by several parents.
type Pattern interface {
	// ColorAt returns the color contributed at p, given in the parent's
	// space. The boolean is false when the pattern is transparent at p.
	ColorAt(p Point) (Color, bool)

	// BoundingBox returns the pattern's bounds in the parent's space.
	BoundingBox() BoundingBox

	// Transform returns the parent-to-local matrix.
	Transform() Matrix

	Translate(x, y float64)
	Scale(sx, sy float64) error
	Rotate(phi float64)

	shape
}

// shape is the per-variant capability set. It is unexported so that no type
// outside this package can implement Pattern.
type shape interface {
	colorAtLocal(p Point) (Color, bool)
	localBounds() BoundingBox
	xform() *transform
}

// transform holds the parent-to-local matrix, its forward counterpart and
// the cached parent-space bounding box. It is embedded by every pattern.
//
// Both directions are composed operation by operation, so ColorAt needs a
// single multiply and nothing is ever inverted numerically.
type transform struct {
	inverse Matrix
	forward Matrix
	bounds  BoundingBox
	dirty   bool
}

func newTransform() transform {
	return transform{inverse: Identity(), forward: Identity(), dirty: true}
}

// Transform returns the parent-to-local matrix.
func (t *transform) Transform() Matrix { return t.inverse }

// Translate moves the pattern by (x, y).
func (t *transform) Translate(x, y float64) {
	t.then(Translate(x, y), Translate(-x, -y))
}

// Scale scales the pattern by (sx, sy) about the parent's origin.
// A zero factor cannot be undone and is rejected with ErrInvalidArgument.
func (t *transform) Scale(sx, sy float64) error {
	if sx == 0 || sy == 0 {
		return fmt.Errorf("%w: scale factor (%g, %g) must be non-zero", ErrInvalidArgument, sx, sy)
	}
	t.then(Scale(sx, sy), Scale(1/sx, 1/sy))
	return nil
}

// Rotate rotates the pattern by phi radians about the parent's origin.
func (t *transform) Rotate(phi float64) {
	t.then(Rotate(phi), Rotate(-phi))
}

// then appends a parent-space operation given in both directions.
func (t *transform) then(fwd, inv Matrix) {
	t.forward = fwd.Multiply(t.forward)
	t.inverse = t.inverse.Multiply(inv)
	t.dirty = true
}

func (t *transform) xform() *transform { return t }

// apply appends a parent-space map given with its inverse.
func (t *transform) apply(fwd, inv Matrix) {
	if fwd.IsIdentity() {
		return
	}
	t.then(fwd, inv)
}

func (t *transform) invalidate() {
	t.dirty = true
}

func (t *transform) toLocal(p Point) Point {
	return t.inverse.TransformPoint(p)
}

// cachedBounds returns the parent-space bounds, recomputing them from local
// when the cache is stale.
func (t *transform) cachedBounds(local func() BoundingBox) BoundingBox {
	if t.dirty {
		t.bounds = local().Transformed(t.forward)
		t.dirty = false
	}
	return t.bounds
}

// fillColor samples an optional fill at a local point. Shapes without a
// fill contribute opaque white.
func fillColor(fill Pattern, p Point) (Color, bool) {
	if fill == nil {
		return White, true
	}
	return fill.ColorAt(p)
}
