package winhelp

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/deadsy/sdfx/vec/v2i"
	"image"
	"image/color"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(v2i.Vec{X: 4, Y: 3})
	if len(s.Pixels) != 12 {
		t.Fatalf("expected 12 pixels, but got %d", len(s.Pixels))
	}
	for i, p := range s.Pixels {
		if p != 0xFF000000 {
			t.Fatalf("expected opaque black at %d, but got %#x", i, p)
		}
	}
	empty := NewSurface(v2i.Vec{X: -3, Y: 5})
	if empty.Size.X != 0 || len(empty.Pixels) != 0 {
		t.Fatalf("expected negative size to clamp to an empty surface, but got %v / %d", empty.Size, len(empty.Pixels))
	}
}

func TestSurface_SetPixelClips(t *testing.T) {
	s := NewSurface(v2i.Vec{X: 10, Y: 10})
	s.SetPixel(-1, 0, RGBA{R: 255, A: 255})
	s.SetPixel(10, 0, RGBA{R: 255, A: 255})
	s.SetPixel(0, 10, RGBA{R: 255, A: 255})
	for _, p := range s.Pixels {
		if p != 0xFF000000 {
			t.Fatalf("expected out of range writes to be ignored, but got %#x", p)
		}
	}
	s.SetPixel(3, 4, RGBA{G: 255, A: 255})
	if p, ok := s.Pixel(3, 4); !ok || p != 0xFF00FF00 {
		t.Fatalf("expected 0xFF00FF00, but got %#x (%v)", p, ok)
	}
	if _, ok := s.Pixel(10, 10); ok {
		t.Fatalf("expected out of range read to fail")
	}
}

func TestSurface_Resize(t *testing.T) {
	s := NewSurface(v2i.Vec{X: 2, Y: 2})
	s.Fill(RGBA{R: 255, A: 255})
	s.Resize(v2i.Vec{X: 3, Y: 5})
	if len(s.Pixels) != 15 || s.Pixels[0] != 0xFF000000 {
		t.Fatalf("expected a fresh 15 pixel black buffer, but got %d pixels starting with %#x", len(s.Pixels), s.Pixels[0])
	}
}

func TestSurface_BlitOpaqueAndTransparent(t *testing.T) {
	dst := NewSurface(v2i.Vec{X: 4, Y: 4})
	dst.Fill(RGBA{B: 255, A: 255})
	src := NewSurface(v2i.Vec{X: 2, Y: 1})
	src.Pixels[0] = 0xFFFF0000
	src.Pixels[1] = 0x00FF0000
	dst.Blit(v2.Vec{X: 1, Y: 1}, src)
	if p, _ := dst.Pixel(1, 1); p != 0xFFFF0000 {
		t.Fatalf("expected opaque overwrite, but got %#x", p)
	}
	if p, _ := dst.Pixel(2, 1); p != 0xFF0000FF {
		t.Fatalf("expected transparent pixel to leave destination, but got %#x", p)
	}
}

func TestSurface_BlitBlend(t *testing.T) {
	dst := NewSurface(v2i.Vec{X: 1, Y: 1})
	src := NewSurface(v2i.Vec{X: 1, Y: 1})
	src.Pixels[0] = 0x80FF0000
	dst.Blit(v2.Vec{}, src)
	p := dst.Pixels[0]
	if p>>24 != 0xFF {
		t.Fatalf("expected blended pixel to be opaque, but got %#x", p)
	}
	if r := (p >> 16) & 0xFF; r < 127 || r > 129 {
		t.Fatalf("expected red near 128, but got %d", r)
	}
}

func TestSurface_BlitClips(t *testing.T) {
	dst := NewSurface(v2i.Vec{X: 2, Y: 2})
	src := NewSurface(v2i.Vec{X: 4, Y: 4})
	src.Fill(RGBA{R: 255, G: 255, B: 255, A: 255})
	dst.Blit(v2.Vec{X: -1, Y: -1}, src)
	for _, p := range dst.Pixels {
		if p != 0xFFFFFFFF {
			t.Fatalf("expected clipped blit to cover the surface, but got %#x", p)
		}
	}
}

func TestSurface_Image(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	s := SurfaceFromImage(img)
	if s.Pixels[1] != 0x04010203 {
		t.Fatalf("expected 0x04010203, but got %#x", s.Pixels[1])
	}
	if got := s.At(1, 0).(color.NRGBA); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Fatalf("expected the same colour back, but got %v", got)
	}
	raw := make([]byte, 8)
	s.CopyRGBA(raw)
	if raw[4] != 1 || raw[5] != 2 || raw[6] != 3 || raw[7] != 4 {
		t.Fatalf("expected RGBA byte order, but got %v", raw[4:])
	}
}
