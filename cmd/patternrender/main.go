// Command patternrender renders a procedural pattern scene to PNG or BMP.
//
// Usage:
//
//	patternrender -scene scene.toml -quality beautiful -output out.png
//
// Settings default to PATTERN_WIDTH, PATTERN_HEIGHT, PATTERN_QUALITY,
// PATTERN_WORKERS, PATTERN_OUTPUT, PATTERN_SCALE, PATTERN_DEBUG and
// PATTERN_SCENE; flags take precedence.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pattern"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("patternrender: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if cfg.Debug {
		pattern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	quality, err := pattern.ParseQuality(cfg.Quality)
	if err != nil {
		return err
	}

	sc := demoScene(cfg.Width, cfg.Height)
	if cfg.Scene != "" {
		if sc, err = loadScene(cfg.Scene); err != nil {
			return err
		}
	}

	canvas, err := pattern.NewCanvas(cfg.Width, cfg.Height, pattern.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	if err := sc.draw(canvas); err != nil {
		return err
	}

	start := time.Now()
	if sc.Index.Enabled {
		err = canvas.RenderIndexed(quality, sc.quadtreeOptions()...)
	} else {
		err = canvas.Render(quality)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := canvas.Image()
	if cfg.Scale != 1 {
		w := max(1, int(math.Round(float64(cfg.Width)*cfg.Scale)))
		h := max(1, int(math.Round(float64(cfg.Height)*cfg.Scale)))
		if out, err = out.Resize(w, h, true); err != nil {
			return err
		}
	}
	if err := out.Save(cfg.Output); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "rendered %d shapes, %d pixels at %s quality in %v\n",
		canvas.Root().Len(), cfg.Width*cfg.Height, quality, elapsed.Round(time.Millisecond))
	fmt.Fprintf(stdout, "saved %s (%dx%d)\n", cfg.Output, out.Width(), out.Height())
	return nil
}
