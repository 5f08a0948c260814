package winhelp

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/deadsy/sdfx/vec/v2i"
	"image"
	"image/color"
)

// opaqueBlack is the initial value of every pixel of a new surface.
const opaqueBlack = 0xFF000000

// Surface is an owned rectangular buffer of packed 0xAARRGGBB pixels (row-major).
// len(Pixels) == Size.X*Size.Y always holds: resizing replaces the buffer wholesale.
type Surface struct {
	Size   v2i.Vec
	Pixels []uint32
}

// NewSurface allocates a surface of the given size filled with opaque black. Zero (or negative) area is allowed.
func NewSurface(size v2i.Vec) *Surface {
	s := &Surface{}
	s.Resize(size)
	return s
}

// SurfaceFromImage copies any image into a new surface (non-premultiplied alpha is preserved).
func SurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(v2i.Vec{X: b.Dx(), Y: b.Dy()})
	for y := 0; y < s.Size.Y; y++ {
		for x := 0; x < s.Size.X; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			s.Pixels[y*s.Size.X+x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return s
}

// Resize replaces the buffer with a new opaque black one of the given size.
func (s *Surface) Resize(size v2i.Vec) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	s.Size = size
	s.Pixels = make([]uint32, size.X*size.Y)
	for i := range s.Pixels {
		s.Pixels[i] = opaqueBlack
	}
}

// Fill sets every pixel to the packed colour.
func (s *Surface) Fill(c RGBA) {
	value := Pack(c)
	for i := range s.Pixels {
		s.Pixels[i] = value
	}
}

// FillRGB is Fill(c.WithAlpha()).
func (s *Surface) FillRGB(c RGB) {
	s.Fill(c.WithAlpha())
}

// Contains reports whether (x, y) is inside the surface.
func (s *Surface) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Size.X && y < s.Size.Y
}

// SetPixel overwrites one pixel. Out of range coordinates are silently ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if !s.Contains(x, y) {
		return
	}
	s.Pixels[y*s.Size.X+x] = Pack(c)
}

// Pixel returns the packed pixel at (x, y), or false if out of range.
func (s *Surface) Pixel(x, y int) (uint32, bool) {
	if !s.Contains(x, y) {
		return 0, false
	}
	return s.Pixels[y*s.Size.X+x], true
}

// Blit composites source onto s with its top-left corner at position.
// Opaque source pixels overwrite, fully transparent ones are skipped and the rest are blended onto an
// opaque backdrop: the destination is always left fully opaque.
func (s *Surface) Blit(position v2.Vec, source *Surface) {
	px, py := int(position.X), int(position.Y)
	for y := 0; y < source.Size.Y; y++ {
		for x := 0; x < source.Size.X; x++ {
			dx, dy := px+x, py+y
			if !s.Contains(dx, dy) {
				continue
			}
			src := source.Pixels[y*source.Size.X+x]
			dst := &s.Pixels[dy*s.Size.X+dx]

			srcA := (src >> 24) & 0xFF
			if srcA == 255 {
				*dst = src
				continue
			}
			if srcA == 0 {
				continue
			}

			alpha := float64(srcA) / 255
			inv := 1 - alpha
			outR := uint32(float64((src>>16)&0xFF)*alpha + float64((*dst>>16)&0xFF)*inv)
			outG := uint32(float64((src>>8)&0xFF)*alpha + float64((*dst>>8)&0xFF)*inv)
			outB := uint32(float64(src&0xFF)*alpha + float64(*dst&0xFF)*inv)
			*dst = 0xFF<<24 | outR<<16 | outG<<8 | outB
		}
	}
}

// CopyRGBA writes the pixels into dst (4 bytes per pixel, R, G, B, A order), which is the layout expected by
// texture uploads (e.g. ebiten's WritePixels). dst must hold at least 4*len(s.Pixels) bytes.
func (s *Surface) CopyRGBA(dst []byte) {
	for i, p := range s.Pixels {
		dst[i*4+0] = byte(p >> 16)
		dst[i*4+1] = byte(p >> 8)
		dst[i*4+2] = byte(p)
		dst[i*4+3] = byte(p >> 24)
	}
}

//-----------------------------------------------------------------------------
// image.Image
//-----------------------------------------------------------------------------

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Size.X, s.Size.Y)
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	p, ok := s.Pixel(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}
