package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/pattern"
)

// scene is the TOML scene description.
//
//	background = "#101020"
//	blend = "source-over"
//
//	[index]
//	enabled = true
//	max_elems = 4
//
//	[[shape]]
//	kind = "circle"
//	x = 256
//	y = 256
//	radius = 100
//	color = "#ff8000"
type scene struct {
	Background string      `toml:"background"`
	Blend      string      `toml:"blend"`
	Index      indexConfig `toml:"index"`
	Shapes     []shapeDesc `toml:"shape"`
}

type indexConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxElems int  `toml:"max_elems"`
	MaxDepth int  `toml:"max_depth"`
	Overflow bool `toml:"overflow"`
}

type shapeDesc struct {
	Kind   string    `toml:"kind"`
	X      float64   `toml:"x"`
	Y      float64   `toml:"y"`
	Radius float64   `toml:"radius"`
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
	Color  string    `toml:"color"`
	Rotate float64   `toml:"rotate"` // degrees, about the shape center
	Scale  []float64 `toml:"scale"`  // [sx, sy], about the shape center
}

func loadScene(path string) (*scene, error) {
	var s scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return &s, nil
}

func parseScene(data string) (*scene, error) {
	var s scene
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// quadtreeOptions returns the options for an indexed render.
func (s *scene) quadtreeOptions() []pattern.QuadtreeOption {
	var opts []pattern.QuadtreeOption
	if s.Index.MaxElems > 0 {
		opts = append(opts, pattern.WithMaxElems(s.Index.MaxElems))
	}
	if s.Index.MaxDepth > 0 {
		opts = append(opts, pattern.WithMaxDepth(s.Index.MaxDepth))
	}
	if s.Index.Overflow {
		opts = append(opts, pattern.WithOverflow())
	}
	return opts
}

// draw adds the scene's layers to c in file order.
func (s *scene) draw(c *pattern.Canvas) error {
	if s.Blend != "" {
		mode, err := pattern.ParseBlendMode(s.Blend)
		if err != nil {
			return err
		}
		c.Root().SetMode(mode)
	}
	if s.Background != "" {
		c.SetHexColor(s.Background)
		c.Background()
	}
	for i, sh := range s.Shapes {
		if err := sh.draw(c); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (sh shapeDesc) draw(c *pattern.Canvas) error {
	c.SetColor(pattern.White)
	if sh.Color != "" {
		c.SetHexColor(sh.Color)
	}

	c.Push()
	defer c.Pop()
	c.Translate(sh.X, sh.Y)
	if sh.Rotate != 0 {
		c.Rotate(sh.Rotate * math.Pi / 180)
	}
	if len(sh.Scale) == 2 {
		if err := c.Scale(sh.Scale[0], sh.Scale[1]); err != nil {
			return err
		}
	}

	switch strings.ToLower(sh.Kind) {
	case "circle":
		_, err := c.Circle(0, 0, sh.Radius)
		return err
	case "rectangle", "rect":
		_, err := c.Rectangle(-sh.Width/2, -sh.Height/2, sh.Width, sh.Height)
		return err
	default:
		return fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
}

// demoScene is drawn when no scene file is given.
func demoScene(width, height int) *scene {
	w, h := float64(width), float64(height)
	s := &scene{Background: "#101828"}
	palette := []string{"#e63946", "#f1a208", "#2a9d8f", "#457b9d", "#a8dadc"}
	for i := range 12 {
		t := float64(i) / 12
		angle := 2 * math.Pi * t
		s.Shapes = append(s.Shapes, shapeDesc{
			Kind:   "circle",
			X:      w/2 + math.Cos(angle)*w/3,
			Y:      h/2 + math.Sin(angle)*h/3,
			Radius: math.Min(w, h) / 14,
			Color:  palette[i%len(palette)],
		})
	}
	s.Shapes = append(s.Shapes, shapeDesc{
		Kind:   "rectangle",
		X:      w / 2,
		Y:      h / 2,
		Width:  w / 4,
		Height: h / 4,
		Rotate: 30,
		Color:  "#ffffffc0",
	})
	return s
}
