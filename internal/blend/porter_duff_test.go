package blend

import (
	"math"
	"testing"
)

type rgba struct{ r, g, b, a float64 }

func near(x, y float64) bool { return math.Abs(x-y) < 1e-9 }

func (c rgba) eq(o rgba) bool {
	return near(c.r, o.r) && near(c.g, o.g) && near(c.b, o.b) && near(c.a, o.a)
}

func apply(f Func, s, d rgba) rgba {
	r, g, b, a := f(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return rgba{r, g, b, a}
}

func TestPorterDuff(t *testing.T) {
	white := rgba{1, 1, 1, 1}
	black := rgba{0, 0, 0, 1}
	halfRed := rgba{1, 0, 0, 0.5}
	clear := rgba{}

	tests := []struct {
		name string
		mode Mode
		src  rgba
		dst  rgba
		want rgba
	}{
		{"clear", Clear, white, black, clear},
		{"source", Source, halfRed, black, halfRed},
		{"destination", Destination, halfRed, black, black},
		{"over opaque source", SourceOver, white, black, white},
		{"over half red on black", SourceOver, halfRed, black, rgba{0.5, 0, 0, 1}},
		{"over onto transparent", SourceOver, halfRed, clear, halfRed},
		{"over both transparent", SourceOver, clear, clear, clear},
		{"destination over", DestinationOver, halfRed, black, black},
		{"plus", Plus, rgba{1, 0, 0, 0.5}, rgba{0, 0, 1, 0.5}, rgba{0.5, 0, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(GetFunc(tt.mode), tt.src, tt.dst)
			if !got.eq(tt.want) {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestGetFuncUnknownFallsBackToSourceOver(t *testing.T) {
	got := apply(GetFunc(Mode(200)), rgba{1, 0, 0, 0.5}, rgba{0, 0, 0, 1})
	want := rgba{0.5, 0, 0, 1}
	if !got.eq(want) {
		t.Errorf("unknown mode = %v, want %v", got, want)
	}
}

func TestModeString(t *testing.T) {
	if got := SourceOver.String(); got != "source-over" {
		t.Errorf("SourceOver.String() = %q", got)
	}
	if got := Mode(99).String(); got != "unknown" {
		t.Errorf("Mode(99).String() = %q", got)
	}
}

func TestSeparable(t *testing.T) {
	grey := rgba{0.5, 0.5, 0.5, 1}
	tests := []struct {
		name string
		mode Mode
		src  rgba
		dst  rgba
		want rgba
	}{
		{"multiply", Multiply, rgba{0.5, 1, 0, 1}, rgba{1, 0.5, 1, 1}, rgba{0.5, 0.5, 0, 1}},
		{"screen", Screen, grey, grey, rgba{0.75, 0.75, 0.75, 1}},
		{"darken", Darken, rgba{0.2, 0.8, 0.5, 1}, grey, rgba{0.2, 0.5, 0.5, 1}},
		{"lighten", Lighten, rgba{0.2, 0.8, 0.5, 1}, grey, rgba{0.5, 0.8, 0.5, 1}},
		{"difference", Difference, rgba{1, 0, 0.5, 1}, rgba{0, 0, 1, 1}, rgba{1, 0, 0.5, 1}},
		{"exclusion", Exclusion, grey, grey, grey},
		{"hard light dark source", HardLight, rgba{0.25, 0.25, 0.25, 1}, grey, rgba{0.25, 0.25, 0.25, 1}},
		{"overlay dark backdrop", Overlay, grey, rgba{0.25, 0.25, 0.25, 1}, rgba{0.25, 0.25, 0.25, 1}},
		{"multiply onto transparent", Multiply, rgba{0.5, 1, 0, 0.5}, rgba{}, rgba{0.5, 1, 0, 0.5}},
		{"half transparent source", Multiply, rgba{0, 0, 0, 0.5}, rgba{1, 1, 1, 1}, rgba{0.5, 0.5, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(GetFunc(tt.mode), tt.src, tt.dst)
			if !got.eq(tt.want) {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for m := Clear; m <= Exclusion; m++ {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = (%v, %v), want %v", m.String(), got, ok, m)
		}
	}
	if _, ok := ParseMode("dodge"); ok {
		t.Error("ParseMode accepted an unknown name")
	}
}

func TestSeparableModeNames(t *testing.T) {
	seen := make(map[string]Mode)
	for m := Multiply; m <= Exclusion; m++ {
		name := m.String()
		if name == "unknown" {
			t.Errorf("Mode(%d) has no name", m)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("modes %d and %d share the name %q", prev, m, name)
		}
		seen[name] = m
		if GetFunc(m) == nil {
			t.Errorf("GetFunc(%s) = nil", name)
		}
	}
}
