// Package pattern renders procedural 2D scenes.
//
// # Overview
//
// A scene is a tree of patterns: resolution-independent shape and color
// functions that answer "what color, if any, is at this point". Primitives
// (Unicolor, Circle, Rectangle) are placed with Translate, Scale and
// Rotate, composed with Union in painter's order, and optionally indexed
// by a Quadtree. A Renderer samples the tree at every pixel of an Image.
//
// # Quick Start
//
//	import "github.com/gogpu/pattern"
//
//	img, _ := pattern.NewImage(64, 64)
//
//	disc, _ := pattern.NewCircle(20, pattern.NewUnicolor(pattern.White))
//	disc.Translate(32, 32)
//	scene := pattern.NewUnion(pattern.NewUnicolor(pattern.Black), disc)
//
//	r, _ := pattern.NewRenderer(pattern.QualityGood)
//	_ = r.Render(scene, img)
//	_ = img.Save("disc.png")
//
// Canvas wraps the same steps behind an immediate-style drawing API.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the image
//   - X increases right, Y increases down
//   - Pixel (x, y) is sampled at (x+0.5, y+0.5)
//   - Angles in radians
//
// # Anti-aliasing
//
// QualitySimple, QualityGood and QualityBeautiful supersample each pixel on
// a 3×3, 5×5 or 7×7 grid weighted by a normalized Gaussian. Samples that
// miss every shape are skipped without redistributing their weight.
//
// # Blending
//
// Union and Quadtree composite overlapping children with source-over by
// default. Other Porter-Duff operators and the separable blend modes
// (multiply, screen, overlay and the rest) are selected with
// Union.SetMode or WithBlendMode.
//
// # Concurrency
//
// Building a tree and calling BuildTree are single-threaded. Rendering
// reads the tree only and may be split across goroutines with WithWorkers;
// the output does not depend on the worker count. Mutating a tree while it
// is being rendered is not supported.
package pattern
