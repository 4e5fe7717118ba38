package pattern

import (
	"fmt"

	"github.com/gogpu/pattern/internal/blend"
)

// BlendMode selects the operator a Union uses to composite a child over
// the colors of the children before it.
type BlendMode = blend.Mode

// Blend modes available to Union.
const (
	BlendClear           = blend.Clear
	BlendSource          = blend.Source
	BlendDestination     = blend.Destination
	BlendSourceOver      = blend.SourceOver
	BlendDestinationOver = blend.DestinationOver
	BlendPlus            = blend.Plus

	BlendMultiply   = blend.Multiply
	BlendScreen     = blend.Screen
	BlendOverlay    = blend.Overlay
	BlendDarken     = blend.Darken
	BlendLighten    = blend.Lighten
	BlendHardLight  = blend.HardLight
	BlendDifference = blend.Difference
	BlendExclusion  = blend.Exclusion
)

// ParseBlendMode parses a blend mode name such as "source-over" or
// "multiply".
func ParseBlendMode(name string) (BlendMode, error) {
	m, ok := blend.ParseMode(name)
	if !ok {
		return m, fmt.Errorf("%w: unknown blend mode %q", ErrUnsupportedConfiguration, name)
	}
	return m, nil
}

// compound is the ordered child list shared by Union and Quadtree.
// Insertion order is draw order.
type compound struct {
	children []Pattern
}

func (c *compound) add(p Pattern) {
	c.children = append(c.children, p)
}

func (c *compound) clear() {
	c.children = nil
}

// Children returns the children in draw order. The slice must not be
// modified.
func (c *compound) Children() []Pattern { return c.children }

// Len returns the number of children.
func (c *compound) Len() int { return len(c.children) }

// composite queries children in order and blends each contributing child
// over the accumulated result.
func composite(children []Pattern, p Point, mode blend.Mode) (Color, bool) {
	var acc Color
	found := false
	for _, child := range children {
		c, ok := child.ColorAt(p)
		if !ok {
			continue
		}
		if !found {
			acc, found = c, true
			continue
		}
		acc = c.Blend(acc, mode)
	}
	return acc, found
}

// Union composites its children in insertion order. Later children are
// drawn on top of earlier ones, so a backdrop must be added first.
//
// Bounds are cached: transforming a child after it was added does not
// refresh the union's bounds.
type Union struct {
	transform
	compound
	mode blend.Mode
}

// NewUnion creates a union holding the given children.
func NewUnion(children ...Pattern) *Union {
	u := &Union{transform: newTransform(), mode: blend.SourceOver}
	u.Add(children...)
	return u
}

// Add appends children on top of the existing ones.
func (u *Union) Add(children ...Pattern) {
	for _, p := range children {
		if p == nil {
			continue
		}
		u.add(p)
	}
	u.invalidate()
}

// Clear removes every child.
func (u *Union) Clear() {
	u.clear()
	u.invalidate()
}

// Mode returns the blend mode.
func (u *Union) Mode() BlendMode { return u.mode }

// SetMode changes the blend mode used between children.
func (u *Union) SetMode(m BlendMode) { u.mode = m }

// ColorAt implements Pattern.
func (u *Union) ColorAt(p Point) (Color, bool) { return u.colorAtLocal(u.toLocal(p)) }

// BoundingBox implements Pattern.
func (u *Union) BoundingBox() BoundingBox { return u.cachedBounds(u.localBounds) }

func (u *Union) colorAtLocal(p Point) (Color, bool) {
	return composite(u.children, p, u.mode)
}

func (u *Union) localBounds() BoundingBox {
	var b BoundingBox
	for _, child := range u.children {
		b.Merge(child.BoundingBox())
	}
	return b
}
