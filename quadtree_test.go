package pattern

import (
	"errors"
	"testing"
)

// gridCircles returns 16 unit circles centered at (4i+2, 4j+2). None of
// them straddles a quadrant boundary for the first two subdivisions.
func gridCircles(t testing.TB) []Pattern {
	t.Helper()
	palette := []Color{Red, Green, Blue, Yellow, Cyan, Magenta, White}
	var out []Pattern
	for j := range 4 {
		for i := range 4 {
			c := mustCircle(t, 1, NewUnicolor(palette[(i+j*4)%len(palette)]))
			c.Translate(float64(4*i+2), float64(4*j+2))
			out = append(out, c)
		}
	}
	return out
}

func TestQuadtreeLeafBelowMaxElems(t *testing.T) {
	q := NewQuadtree(WithMaxElems(4))
	if err := q.Add(mustCircle(t, 1, nil), mustCircle(t, 2, nil)); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()

	s := q.Stats()
	if s.Nodes != 1 || s.Leaves != 1 || s.MaxDepth != 0 {
		t.Errorf("Stats() = %+v, want a single leaf", s)
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}

func TestQuadtreeSubdivides(t *testing.T) {
	q := NewQuadtree(WithMaxElems(2))
	if err := q.Add(gridCircles(t)...); err != nil {
		t.Fatal(err)
	}
	if bb := q.BoundingBox(); !boxNear(bb, 8, 8, 14, 14) {
		t.Fatalf("root box = %v, want center (8,8) size 14x14", bb)
	}
	q.BuildTree()

	s := q.Stats()
	if s.Nodes != 21 || s.Leaves != 16 || s.MaxDepth != 2 {
		t.Errorf("Stats() = %+v, want 21 nodes, 16 leaves, depth 2", s)
	}
	if s.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", s.Dropped)
	}
	if q.Len() != 0 {
		t.Errorf("root list holds %d patterns after subdivision, want 0", q.Len())
	}
	if !q.Built() {
		t.Error("Built() = false after BuildTree")
	}
}

func TestQuadtreeMaxDepth(t *testing.T) {
	q := NewQuadtree(WithMaxElems(1), WithMaxDepth(0))
	if err := q.Add(gridCircles(t)...); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()
	if s := q.Stats(); s.Nodes != 1 || s.Leaves != 1 {
		t.Errorf("Stats() = %+v, want root leaf at max depth 0", s)
	}
}

func TestQuadtreeMatchesUnion(t *testing.T) {
	circles := gridCircles(t)

	q := NewQuadtree(WithMaxElems(2))
	if err := q.Add(circles...); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()
	flat := NewUnion(circles...)

	for _, quality := range []Quality{QualityFast, QualityGood} {
		r, err := NewRenderer(quality)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := NewImage(16, 16)
		got, _ := NewImage(16, 16)
		if err := r.Render(flat, want); err != nil {
			t.Fatal(err)
		}
		if err := r.Render(q, got); err != nil {
			t.Fatal(err)
		}
		for i := range want.Pix() {
			if got.Pix()[i] != want.Pix()[i] {
				t.Fatalf("%v: pixel %d = %v through quadtree, %v through union",
					quality, i, got.Pix()[i], want.Pix()[i])
			}
		}
	}
}

func TestQuadtreeDropsStraddlingPattern(t *testing.T) {
	rect := mustRect(t, 4, 4, NewUnicolor(Red))

	q := NewQuadtree(WithMaxElems(1))
	if err := q.Add(rect); err != nil {
		t.Fatal(err)
	}
	if _, ok := q.ColorAt(Pt(0.5, 0.5)); !ok {
		t.Fatal("unbuilt tree should answer from its flat list")
	}

	q.BuildTree()
	if _, ok := q.ColorAt(Pt(0.5, 0.5)); ok {
		t.Error("pattern straddling every quadrant should be dropped by BuildTree")
	}
	if s := q.Stats(); s.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", s.Dropped)
	}
}

func TestQuadtreeOverflowKeepsStraddlingPattern(t *testing.T) {
	rect := mustRect(t, 4, 4, NewUnicolor(Red))

	q := NewQuadtree(WithMaxElems(1), WithOverflow())
	if err := q.Add(rect); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()

	if got, ok := q.ColorAt(Pt(0.5, 0.5)); !ok || got != Red {
		t.Errorf("ColorAt = (%v, %v), want red kept in the overflow bucket", got, ok)
	}
	if s := q.Stats(); s.Dropped != 0 || s.Overflowed != 1 {
		t.Errorf("Stats() = %+v, want 1 overflowed, 0 dropped", s)
	}
}

func TestQuadtreeOverflowPreservesDrawOrder(t *testing.T) {
	tests := []struct {
		name      string
		rectFirst bool
		want      Color
	}{
		{"straddler below", true, Blue},
		{"straddler above", false, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect := mustRect(t, 8, 8, NewUnicolor(Red))
			disc := mustCircle(t, 1, NewUnicolor(Blue))
			disc.Translate(2, 2)

			q := NewQuadtree(WithMaxElems(2), WithOverflow())
			children := []Pattern{disc, rect}
			if tt.rectFirst {
				children = []Pattern{rect, disc}
			}
			if err := q.Add(children...); err != nil {
				t.Fatal(err)
			}
			q.BuildTree()

			if got, ok := q.ColorAt(Pt(2, 2)); !ok || got != tt.want {
				t.Errorf("ColorAt(2,2) = (%v, %v), want %v", got, ok, tt.want)
			}
			if got, ok := q.ColorAt(Pt(-2, -2)); !ok || got != Red {
				t.Errorf("ColorAt(-2,-2) = (%v, %v), want red", got, ok)
			}
		})
	}
}

func TestQuadtreeCenterLineMatchesUnion(t *testing.T) {
	// The two squares meet at (2.5,2.5), the root's center, and the one
	// drawn last lies north-west of it.
	blue := mustRect(t, 2, 2, NewUnicolor(Blue))
	blue.Translate(3.5, 3.5)
	red := mustRect(t, 2, 2, NewUnicolor(Red))
	red.Translate(1.5, 1.5)

	for _, overflow := range []bool{false, true} {
		opts := []QuadtreeOption{WithMaxElems(2)}
		if overflow {
			opts = append(opts, WithOverflow())
		}
		q := NewQuadtree(opts...)
		if err := q.Add(blue, red); err != nil {
			t.Fatal(err)
		}
		q.BuildTree()
		flat := NewUnion(blue, red)

		for _, p := range []Point{Pt(2.5, 2.5), Pt(2.5, 2), Pt(2, 2.5), Pt(3, 2.5), Pt(2.5, 4)} {
			want, wantOK := flat.ColorAt(p)
			got, ok := q.ColorAt(p)
			if ok != wantOK || got != want {
				t.Errorf("overflow=%v: ColorAt(%v) = (%v, %v), union gives (%v, %v)",
					overflow, p, got, ok, want, wantOK)
			}
		}
	}
}

func TestQuadtreeKeepsHugeScaledCircle(t *testing.T) {
	c := mustCircle(t, 1, NewUnicolor(Green))
	if err := c.Scale(2e5, 2e5); err != nil {
		t.Fatal(err)
	}

	q := NewQuadtree(WithMaxElems(2))
	if err := q.Add(c); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()
	if bb := q.BoundingBox(); !bb.Contains(Pt(1000, 0)) {
		t.Fatalf("root box = %v, want it to cover the scaled circle", bb)
	}
	if got, ok := q.ColorAt(Pt(1000, 0)); !ok || got != Green {
		t.Errorf("ColorAt(1000,0) = (%v, %v), want green", got, ok)
	}
}

func TestQuadtreeInfiniteBoundsStaysLeaf(t *testing.T) {
	q := NewQuadtree(WithMaxElems(2))
	if err := q.Add(NewUnicolor(Black)); err != nil {
		t.Fatal(err)
	}
	if err := q.Add(gridCircles(t)...); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()

	if s := q.Stats(); s.Leaves != 1 || s.Nodes != 1 {
		t.Errorf("Stats() = %+v, want a single leaf", s)
	}
	if got, ok := q.ColorAt(Pt(100, 100)); !ok || got != Black {
		t.Errorf("ColorAt far away = (%v, %v), want black background", got, ok)
	}
}

func TestQuadtreeAddAfterBuild(t *testing.T) {
	q := NewQuadtree()
	q.BuildTree()
	if err := q.Add(mustCircle(t, 1, nil)); !errors.Is(err, ErrTreeBuilt) {
		t.Errorf("Add after BuildTree = %v, want ErrTreeBuilt", err)
	}

	q.Clear()
	if q.Built() {
		t.Error("Clear should return the tree to the unbuilt state")
	}
	if err := q.Add(mustCircle(t, 1, nil)); err != nil {
		t.Errorf("Add after Clear = %v", err)
	}
}

func TestQuadtreeTransformed(t *testing.T) {
	q := NewQuadtree(WithMaxElems(2))
	if err := q.Add(gridCircles(t)...); err != nil {
		t.Fatal(err)
	}
	q.BuildTree()
	q.Translate(100, 0)

	if _, ok := q.ColorAt(Pt(102, 2)); !ok {
		t.Error("translated tree should answer at the moved circle")
	}
	if _, ok := q.ColorAt(Pt(2, 2)); ok {
		t.Error("translated tree should not answer at the old position")
	}
	if bb := q.BoundingBox(); !boxNear(bb, 108, 8, 14, 14) {
		t.Errorf("BoundingBox() = %v", bb)
	}
}

func BenchmarkQuadtreeColorAt(b *testing.B) {
	q := NewQuadtree(WithMaxElems(2))
	_ = q.Add(gridCircles(b)...)
	q.BuildTree()
	flat := NewUnion(gridCircles(b)...)

	b.Run("quadtree", func(b *testing.B) {
		for b.Loop() {
			q.ColorAt(Pt(10, 10))
		}
	})
	b.Run("union", func(b *testing.B) {
		for b.Loop() {
			flat.ColorAt(Pt(10, 10))
		}
	})
}
