package pattern

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/pattern/internal/filter"
	"github.com/gogpu/pattern/internal/parallel"
)

// Renderer writes a pattern into an image.
//
// The pattern tree is read-only during Render and must not be mutated
// concurrently. Pixels where the pattern contributes nothing are left as
// they were.
type Renderer interface {
	Render(p Pattern, img *Image) error
}

// NewRenderer returns the renderer for a quality level: QualityFast gives
// a SimpleRenderer, the others an AntiAliasingRenderer.
func NewRenderer(q Quality, opts ...RenderOption) (Renderer, error) {
	if q == QualityFast {
		return NewSimpleRenderer(opts...), nil
	}
	return NewAntiAliasingRenderer(q, opts...)
}

// SimpleRenderer samples each pixel once, at its center.
type SimpleRenderer struct {
	opts renderOptions
}

// NewSimpleRenderer creates a single-sample renderer.
func NewSimpleRenderer(opts ...RenderOption) *SimpleRenderer {
	return &SimpleRenderer{opts: applyRenderOptions(opts)}
}

// Render implements Renderer.
func (r *SimpleRenderer) Render(p Pattern, img *Image) error {
	return render(p, img, r.opts, "simple", func(x, y int) (Color, bool) {
		return p.ColorAt(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	})
}

// AntiAliasingRenderer supersamples each pixel on a kernel grid and sums
// the weighted samples.
//
// Samples where the pattern contributes nothing are skipped and their
// weight is lost, so partially covered pixels come out darker and more
// transparent rather than blended toward a background.
type AntiAliasingRenderer struct {
	quality Quality
	kernel  filter.Kernel
	opts    renderOptions
}

// NewAntiAliasingRenderer creates a supersampling renderer. Quality levels
// without a kernel table, QualityFast and QualityInsane included, return
// ErrUnsupportedConfiguration.
func NewAntiAliasingRenderer(q Quality, opts ...RenderOption) (*AntiAliasingRenderer, error) {
	k, err := lookupKernel(q)
	if err != nil {
		return nil, err
	}
	return &AntiAliasingRenderer{quality: q, kernel: k, opts: applyRenderOptions(opts)}, nil
}

// Quality returns the quality level.
func (r *AntiAliasingRenderer) Quality() Quality { return r.quality }

// Render implements Renderer.
func (r *AntiAliasingRenderer) Render(p Pattern, img *Image) error {
	return render(p, img, r.opts, r.quality.String(), func(x, y int) (Color, bool) {
		return r.CalcColor(p, x, y)
	})
}

// CalcColor returns the kernel-weighted color of pixel (x, y). The
// boolean is false when no sample hit the pattern.
func (r *AntiAliasingRenderer) CalcColor(p Pattern, x, y int) (Color, bool) {
	k := r.kernel
	cx, cy := float64(x)+0.5, float64(y)+0.5

	var acc Color
	hit := false
	for j, dy := range k.Offsets {
		row := k.Weights[j*k.Size : (j+1)*k.Size]
		for i, dx := range k.Offsets {
			c, ok := p.ColorAt(Point{X: cx + dx, Y: cy + dy})
			if !ok {
				continue
			}
			acc = acc.Add(c.Mul(row[i]))
			hit = true
		}
	}
	return acc, hit
}

// render drives a per-pixel sampler over img, clamping and writing every
// contributed color.
func render(p Pattern, img *Image, opts renderOptions, name string, sample func(x, y int) (Color, bool)) error {
	if p == nil {
		return fmt.Errorf("%w: nil pattern", ErrInvalidArgument)
	}
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}

	log := opts.log()
	start := time.Now()

	var pool *parallel.WorkerPool
	if opts.workers != 1 {
		pool = parallel.NewWorkerPool(opts.workers)
		defer pool.Close()
	}

	w := img.Width()
	pix := img.Pix()
	parallel.ForEachRow(pool, img.Height(), func(y int) {
		for x := range w {
			if c, ok := sample(x, y); ok {
				pix[y*w+x] = c.Saturate()
			}
		}
	})

	log.Debug("pattern: render complete",
		slog.String("renderer", name),
		slog.Int("width", w),
		slog.Int("height", img.Height()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
