package canvas

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestClampRadius(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 2.5, 2.5},
		{"floor", MinRadius, MinRadius},
		{"zero", 0, MinRadius},
		{"negative", -3, MinRadius},
		{"NaN", math.NaN(), MinRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRadius(tt.in); got != tt.want {
				t.Errorf("ClampRadius(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampAlpha(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{1.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampAlpha(tt.in); got != tt.want {
			t.Errorf("ClampAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGlowRings(t *testing.T) {
	if rings := GlowRings(0); len(rings) != 0 {
		t.Errorf("GlowRings(0) returned %d rings, want 0", len(rings))
	}

	rings := GlowRings(10)
	if len(rings) == 0 {
		t.Fatal("GlowRings(10) returned no rings")
	}
	// 由外向内：半径递减，不透明度递增
	for i := 1; i < len(rings); i++ {
		if rings[i][0] >= rings[i-1][0] {
			t.Errorf("ring %d radius %v should be smaller than ring %d radius %v", i, rings[i][0], i-1, rings[i-1][0])
		}
		if rings[i][1] <= rings[i-1][1] {
			t.Errorf("ring %d alpha %v should be larger than ring %d alpha %v", i, rings[i][1], i-1, rings[i-1][1])
		}
	}
	if rings[0][0] != 10 {
		t.Errorf("outer ring radius = %v, want 10", rings[0][0])
	}
}

func TestRecorderKeepsCirclesAsPassed(t *testing.T) {
	r := NewRecorder(100, 50)
	r.FillCircle(Circle{X: 1, Y: 1, Radius: 0, Alpha: 1})
	r.FillCircle(Circle{X: 1, Y: 1, Radius: -2, Alpha: 2})

	if len(r.Circles) != 2 {
		t.Fatalf("expected 2 recorded circles, got %d", len(r.Circles))
	}
	// 钳制是调用方的责任，记录器必须暴露原始参数
	if r.Circles[0].Radius != 0 || r.Circles[1].Radius != -2 {
		t.Errorf("radii = %v, %v, want 0, -2", r.Circles[0].Radius, r.Circles[1].Radius)
	}
	if r.Circles[1].Alpha != 2 {
		t.Errorf("alpha = %v, want 2 as passed", r.Circles[1].Alpha)
	}

	r.Clear()
	if r.Clears != 1 || len(r.Circles) != 0 {
		t.Errorf("Clear: clears=%d circles=%d, want 1 and 0", r.Clears, len(r.Circles))
	}

	w, h := r.Size()
	if w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d, want 100x50", w, h)
	}
}

func TestPNGSurfaceFillCircle(t *testing.T) {
	s := NewPNGSurface(40, 40)
	s.Clear()
	s.FillCircle(Circle{X: 20, Y: 20, Radius: 8, Color: color.RGBA{R: 255, A: 255}, Alpha: 1})

	r, g, b, a := s.Image().At(20, 20).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}

	_, _, _, a = s.Image().At(1, 1).RGBA()
	if a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", a>>8)
	}
}

func TestPNGSurfaceZeroAlphaIsNoop(t *testing.T) {
	s := NewPNGSurface(10, 10)
	s.Clear()
	s.FillCircle(Circle{X: 5, Y: 5, Radius: 4, Color: color.RGBA{G: 255, A: 255}, Alpha: 0})

	_, _, _, a := s.Image().At(5, 5).RGBA()
	if a != 0 {
		t.Errorf("pixel alpha = %d, want 0 for zero-opacity draw", a>>8)
	}
}

func TestPNGSurfaceResizeAndSave(t *testing.T) {
	s := NewPNGSurface(10, 10)
	s.Resize(0, -5)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() after degenerate resize = %dx%d, want 1x1", w, h)
	}

	s.Resize(32, 16)
	if w, h := s.Size(); w != 32 || h != 16 {
		t.Errorf("Size() = %dx%d, want 32x16", w, h)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}
}

func TestPNGSurfaceComposite(t *testing.T) {
	base := NewPNGSurface(20, 20)
	base.Background(0, 0, 0)

	top := NewPNGSurface(20, 20)
	top.Clear()
	top.FillCircle(Circle{X: 10, Y: 10, Radius: 5, Color: color.RGBA{B: 255, A: 255}, Alpha: 1})

	base.Composite(top)
	_, _, b, _ := base.Image().At(10, 10).RGBA()
	if b>>8 != 255 {
		t.Errorf("composited blue = %d, want 255", b>>8)
	}
}

func TestPNGSurfaceDrawText(t *testing.T) {
	face, err := LoadFace(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}

	s := NewPNGSurface(120, 40)
	s.DrawText("00", 60, 20, face, color.White)

	img := s.Image()
	painted := false
	for y := 0; y < 40 && !painted; y++ {
		for x := 0; x < 120; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("DrawText left the surface empty")
	}
}

func TestLoadFaceRejectsGarbage(t *testing.T) {
	if _, err := LoadFace([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}
