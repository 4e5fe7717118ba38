package pattern

import "fmt"

// Canvas is an immediate-style drawing context over a pattern tree.
// It owns a target image, a root Union, a current fill color and a
// transform stack. Shapes drawn on a canvas are placed with the current
// transform and appended on top of everything drawn before.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img     *Image
	root    *Union
	color   Color
	matrix  Matrix
	inverse Matrix
	stack   [][2]Matrix
	opts    []RenderOption
}

// NewCanvas creates a canvas with a width by height black image and an
// empty scene. The options are passed to every renderer the canvas creates.
func NewCanvas(width, height int, opts ...RenderOption) (*Canvas, error) {
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		img:     img,
		root:    NewUnion(),
		color:   White,
		matrix:  Identity(),
		inverse: Identity(),
		opts:    opts,
	}, nil
}

// Width returns the width of the target image.
func (c *Canvas) Width() int { return c.img.Width() }

// Height returns the height of the target image.
func (c *Canvas) Height() int { return c.img.Height() }

// Image returns the target image.
func (c *Canvas) Image() *Image { return c.img }

// Root returns the scene root.
func (c *Canvas) Root() *Union { return c.root }

// Color returns the current fill color.
func (c *Canvas) Color() Color { return c.color }

// SetColor sets the fill color for subsequent shapes.
func (c *Canvas) SetColor(col Color) { c.color = col }

// SetRGB sets an opaque fill color.
func (c *Canvas) SetRGB(r, g, b float64) { c.color = RGB(r, g, b) }

// SetRGBA sets a fill color with alpha.
func (c *Canvas) SetRGBA(r, g, b, a float64) { c.color = RGBA(r, g, b, a) }

// SetHexColor sets the fill color from a hex string.
func (c *Canvas) SetHexColor(hex string) { c.color = Hex(hex) }

// Background adds a layer of the current color that covers the plane.
func (c *Canvas) Background() *Unicolor {
	u := NewUnicolor(c.color)
	c.root.Add(u)
	return u
}

// Circle adds a circle of radius r centered at (x, y).
func (c *Canvas) Circle(x, y, r float64) (*Circle, error) {
	circle, err := NewCircle(r, NewUnicolor(c.color))
	if err != nil {
		return nil, err
	}
	circle.Translate(x, y)
	c.place(circle)
	return circle, nil
}

// Rectangle adds a w by h rectangle whose top-left corner is (x, y).
func (c *Canvas) Rectangle(x, y, w, h float64) (*Rectangle, error) {
	rect, err := NewRectangle(w, h, NewUnicolor(c.color))
	if err != nil {
		return nil, err
	}
	rect.Translate(x+w/2, y+h/2)
	c.place(rect)
	return rect, nil
}

// Add places an existing pattern with the current transform. The pattern
// is modified in place, so sharing it with another parent shares the
// placement too.
func (c *Canvas) Add(p Pattern) {
	if p == nil {
		return
	}
	c.place(p)
}

func (c *Canvas) place(p Pattern) {
	p.xform().apply(c.matrix, c.inverse)
	c.root.Add(p)
}

// Clear removes every pattern and resets the image to black.
func (c *Canvas) Clear() {
	c.root.Clear()
	c.img.Fill(Black)
}

// Push saves the current transform.
func (c *Canvas) Push() {
	c.stack = append(c.stack, [2]Matrix{c.matrix, c.inverse})
}

// Pop restores the transform saved by the matching Push.
func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		c.matrix, c.inverse = c.stack[n-1][0], c.stack[n-1][1]
		c.stack = c.stack[:n-1]
	}
}

// Identity resets the current transform.
func (c *Canvas) Identity() {
	c.matrix, c.inverse = Identity(), Identity()
}

// Translate moves subsequent shapes by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.local(Translate(x, y), Translate(-x, -y))
}

// Scale scales subsequent shapes. Zero factors return ErrInvalidArgument.
func (c *Canvas) Scale(sx, sy float64) error {
	if sx == 0 || sy == 0 {
		return fmt.Errorf("%w: scale factor (%g, %g) must be non-zero", ErrInvalidArgument, sx, sy)
	}
	c.local(Scale(sx, sy), Scale(1/sx, 1/sy))
	return nil
}

// Rotate rotates subsequent shapes by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.local(Rotate(angle), Rotate(-angle))
}

// local composes an operation in the current drawing space.
func (c *Canvas) local(fwd, inv Matrix) {
	c.matrix = c.matrix.Multiply(fwd)
	c.inverse = inv.Multiply(c.inverse)
}

// RotateAbout rotates subsequent shapes by angle radians around (x, y).
func (c *Canvas) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Render draws the scene into the canvas image at the given quality.
func (c *Canvas) Render(q Quality) error {
	r, err := NewRenderer(q, c.opts...)
	if err != nil {
		return err
	}
	return r.Render(c.root, c.img)
}

// RenderIndexed draws the scene through a quadtree. Leading layers with
// infinite bounds, such as backgrounds, stay in front of the tree; every
// later pattern goes into it. Patterns that straddle a quadrant boundary
// are lost unless WithOverflow is given.
func (c *Canvas) RenderIndexed(q Quality, opts ...QuadtreeOption) error {
	r, err := NewRenderer(q, c.opts...)
	if err != nil {
		return err
	}
	scene, err := c.Index(opts...)
	if err != nil {
		return err
	}
	return r.Render(scene, c.img)
}

// Index builds a pattern equivalent to the scene root with its finite
// layers held in a built quadtree. The root blend mode is carried into
// both levels; for modes other than source-over, overlapping finite layers
// are grouped before they meet the background.
func (c *Canvas) Index(opts ...QuadtreeOption) (Pattern, error) {
	children := c.root.Children()
	split := 0
	for split < len(children) && children[split].BoundingBox().IsInfinite() {
		split++
	}

	mode := c.root.Mode()
	tree := NewQuadtree(append([]QuadtreeOption{WithBlendMode(mode)}, opts...)...)
	if err := tree.Add(children[split:]...); err != nil {
		return nil, fmt.Errorf("index scene: %w", err)
	}
	tree.BuildTree()

	scene := NewUnion(children[:split]...)
	scene.SetMode(mode)
	scene.Add(tree)
	return scene, nil
}

// Save writes the canvas image to path as PNG or BMP.
func (c *Canvas) Save(path string) error {
	return c.img.Save(path)
}
