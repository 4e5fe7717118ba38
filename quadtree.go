package pattern

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/pattern/internal/blend"
)

// Quadtree defaults.
const (
	DefaultMaxElems = 8
	DefaultMaxDepth = 8
)

// Quadtree is a compound pattern that partitions its children into four
// quadrants to answer ColorAt without scanning every child.
//
// A quadtree accumulates children with Add, is partitioned once with
// BuildTree and is read-only afterwards. A node holding fewer than
// maxElems children, or at maxDepth, stays a leaf. Otherwise each child is
// pushed into every quadrant that fully contains its bounds. A point lying
// on a center line is answered from every quadrant whose box holds it, in
// draw order.
//
// A child whose bounds straddle a quadrant boundary fits no quadrant and is
// dropped on subdivision, unless the tree was created with WithOverflow.
type Quadtree struct {
	transform
	root     quadNode
	maxElems int
	maxDepth int
	overflow bool
	mode     blend.Mode
	built    bool
	seq      int
	stats    QuadtreeStats
}

// QuadtreeOption configures a Quadtree.
type QuadtreeOption func(*Quadtree)

// WithMaxElems sets the child count at which a node subdivides.
func WithMaxElems(n int) QuadtreeOption {
	return func(q *Quadtree) {
		if n > 0 {
			q.maxElems = n
		}
	}
}

// WithMaxDepth sets the depth at which nodes stop subdividing.
func WithMaxDepth(d int) QuadtreeOption {
	return func(q *Quadtree) {
		if d >= 0 {
			q.maxDepth = d
		}
	}
}

// WithOverflow keeps children that fit no single quadrant at the internal
// node instead of dropping them. Draw order is preserved.
func WithOverflow() QuadtreeOption {
	return func(q *Quadtree) {
		q.overflow = true
	}
}

// WithBlendMode sets the operator used between overlapping children.
// The default is BlendSourceOver.
func WithBlendMode(m BlendMode) QuadtreeOption {
	return func(q *Quadtree) {
		q.mode = m
	}
}

// QuadtreeStats describes a built tree.
type QuadtreeStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	// Dropped counts children discarded because they straddled a quadrant
	// boundary.
	Dropped int
	// Overflowed counts children kept at internal nodes by WithOverflow.
	Overflowed int
}

// NewQuadtree creates an empty, unbuilt quadtree.
func NewQuadtree(opts ...QuadtreeOption) *Quadtree {
	q := &Quadtree{
		transform: newTransform(),
		maxElems:  DefaultMaxElems,
		maxDepth:  DefaultMaxDepth,
		mode:      blend.SourceOver,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.root.leaf = true
	return q
}

// Add appends children and grows the root box around their bounds.
// Adding to a built tree returns ErrTreeBuilt.
func (q *Quadtree) Add(children ...Pattern) error {
	if q.built {
		return fmt.Errorf("%w: cannot add %d pattern(s)", ErrTreeBuilt, len(children))
	}
	for _, p := range children {
		if p == nil {
			continue
		}
		q.root.push(p, q.seq)
		q.seq++
		q.root.box.Merge(p.BoundingBox())
	}
	q.invalidate()
	return nil
}

// Clear removes every child and returns the tree to the unbuilt state.
func (q *Quadtree) Clear() {
	q.root = quadNode{leaf: true}
	q.built = false
	q.seq = 0
	q.stats = QuadtreeStats{}
	q.invalidate()
}

// Built reports whether BuildTree has run.
func (q *Quadtree) Built() bool { return q.built }

// Children returns the children held directly by the root node. After a
// root subdivision this is empty, or only the overflow bucket.
func (q *Quadtree) Children() []Pattern { return q.root.children }

// Len returns the number of children held directly by the root node.
func (q *Quadtree) Len() int { return len(q.root.children) }

// Stats returns the shape of the built tree.
func (q *Quadtree) Stats() QuadtreeStats { return q.stats }

// BuildTree partitions the children. Calling it again is a no-op.
func (q *Quadtree) BuildTree() {
	if q.built {
		return
	}
	q.stats = QuadtreeStats{}
	q.root.depth = 0
	q.root.build(q)
	q.built = true

	Logger().Debug("pattern: quadtree built",
		slog.Int("nodes", q.stats.Nodes),
		slog.Int("leaves", q.stats.Leaves),
		slog.Int("depth", q.stats.MaxDepth))
	if q.stats.Dropped > 0 {
		Logger().Warn("pattern: quadtree dropped patterns straddling quadrant boundaries",
			slog.Int("dropped", q.stats.Dropped))
	}
}

// ColorAt implements Pattern.
func (q *Quadtree) ColorAt(p Point) (Color, bool) { return q.colorAtLocal(q.toLocal(p)) }

// BoundingBox implements Pattern.
func (q *Quadtree) BoundingBox() BoundingBox { return q.cachedBounds(q.localBounds) }

func (q *Quadtree) colorAtLocal(p Point) (Color, bool) {
	if !q.overflow {
		leaf, unique := q.root.leafAt(p)
		if leaf != nil {
			return composite(leaf.children, p, q.mode)
		}
		if unique {
			return Color{}, false
		}
	}
	var buf [16]quadEntry
	cands := q.root.collect(p, buf[:0])
	slices.SortFunc(cands, func(a, b quadEntry) int { return a.seq - b.seq })
	cands = slices.CompactFunc(cands, func(a, b quadEntry) bool { return a.seq == b.seq })
	var acc Color
	found := false
	for _, e := range cands {
		c, ok := e.p.ColorAt(p)
		if !ok {
			continue
		}
		if !found {
			acc, found = c, true
			continue
		}
		acc = c.Blend(acc, q.mode)
	}
	return acc, found
}

// localBounds is the root box, which is merged as children are added.
func (q *Quadtree) localBounds() BoundingBox { return q.root.box }

// Quadrant indices.
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
)

// quadNode is either a leaf holding a child list or an internal node with
// exactly four quadrants. Internal nodes hold an empty list unless the
// tree keeps an overflow bucket.
type quadNode struct {
	compound
	seqs  []int
	box   BoundingBox
	quads *[4]quadNode
	leaf  bool
	depth int
}

type quadEntry struct {
	p   Pattern
	seq int
}

func (n *quadNode) push(p Pattern, seq int) {
	n.add(p)
	n.seqs = append(n.seqs, seq)
}

func (n *quadNode) build(q *Quadtree) {
	q.stats.Nodes++
	q.stats.MaxDepth = max(q.stats.MaxDepth, n.depth)

	if len(n.children) < q.maxElems || n.depth >= q.maxDepth {
		n.leaf = true
		q.stats.Leaves++
		return
	}
	if n.box.IsInfinite() {
		Logger().Warn("pattern: quadtree node with infinite bounds kept as leaf",
			slog.Int("depth", n.depth),
			slog.Int("children", len(n.children)))
		n.leaf = true
		q.stats.Leaves++
		return
	}

	n.leaf = false
	n.quads = n.subdivide()

	children, seqs := n.children, n.seqs
	n.clear()
	n.seqs = nil
	for i, child := range children {
		cb := child.BoundingBox()
		placed := false
		for k := range n.quads {
			if n.quads[k].box.ContainsBox(cb) {
				n.quads[k].push(child, seqs[i])
				placed = true
			}
		}
		switch {
		case placed:
		case q.overflow:
			n.push(child, seqs[i])
			q.stats.Overflowed++
		default:
			q.stats.Dropped++
		}
	}

	for k := range n.quads {
		n.quads[k].build(q)
	}
}

// subdivide returns four nodes covering the quadrants of n's box.
func (n *quadNode) subdivide() *[4]quadNode {
	c := n.box.Center()
	w, h := n.box.Width()/2, n.box.Height()/2
	dx, dy := w/2, h/2

	var quads [4]quadNode
	centers := [4]Point{
		quadNW: {X: c.X - dx, Y: c.Y - dy},
		quadNE: {X: c.X + dx, Y: c.Y - dy},
		quadSW: {X: c.X - dx, Y: c.Y + dy},
		quadSE: {X: c.X + dx, Y: c.Y + dy},
	}
	for k := range quads {
		quads[k].box = NewBoundingBox(centers[k], w, h)
		quads[k].depth = n.depth + 1
		quads[k].leaf = true
	}
	return &quads
}

// quadrant selects the child by the sign of p - center on each axis.
// The boolean is false when p lies on a center line.
func (n *quadNode) quadrant(p Point) (*quadNode, bool) {
	c := n.box.Center()
	if p.X == c.X || p.Y == c.Y {
		return nil, false
	}
	k := quadNW
	if p.X > c.X {
		k++
	}
	if p.Y > c.Y {
		k += 2
	}
	return &n.quads[k], true
}

// leafAt descends to the single leaf that holds p. It returns nil and true
// when p is outside the tree, and nil and false when p lies on a center
// line shared by several quadrants.
func (n *quadNode) leafAt(p Point) (*quadNode, bool) {
	if !n.box.Contains(p) {
		return nil, true
	}
	for !n.leaf {
		next, ok := n.quadrant(p)
		if !ok {
			return nil, false
		}
		n = next
	}
	return n, true
}

// collect gathers the entries that may contribute at p from every node
// whose box holds p.
func (n *quadNode) collect(p Point, out []quadEntry) []quadEntry {
	if !n.box.Contains(p) {
		return out
	}
	for i, child := range n.children {
		out = append(out, quadEntry{p: child, seq: n.seqs[i]})
	}
	if n.leaf {
		return out
	}
	for k := range n.quads {
		out = n.quads[k].collect(p, out)
	}
	return out
}
