package winhelp

import (
	"image/color"
)

// RGB is an opaque colour. Channels are conceptually 8-bit but stored as floats (truncated when packed).
type RGB struct {
	R, G, B float64
}

// RGBA is a colour with an explicit alpha channel (255 is fully opaque).
type RGBA struct {
	R, G, B, A float64
}

// WithAlpha widens the colour to RGBA with a fully opaque alpha.
func (c RGB) WithAlpha() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// DropAlpha narrows the colour to RGB, discarding alpha. This is lossy.
func (c RGBA) DropAlpha() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Scale multiplies every channel by f (used for flat shading).
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// RGBA implements color.Color. The colour is treated as non-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}.RGBA()
}

// Pack converts the colour to the stored 0xAARRGGBB representation.
func Pack(c RGBA) uint32 {
	return uint32(channel(c.A))<<24 |
		uint32(channel(c.R))<<16 |
		uint32(channel(c.G))<<8 |
		uint32(channel(c.B))
}

// PackRGB is Pack(c.WithAlpha()).
func PackRGB(c RGB) uint32 {
	return 0xFF000000 |
		uint32(channel(c.R))<<16 |
		uint32(channel(c.G))<<8 |
		uint32(channel(c.B))
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) RGBA {
	return RGBA{
		R: float64((v >> 16) & 0xFF),
		G: float64((v >> 8) & 0xFF),
		B: float64(v & 0xFF),
		A: float64((v >> 24) & 0xFF),
	}
}

// channel clamps to [0, 255] and truncates, so out of range inputs never bleed into neighbouring channels.
func channel(v float64) uint8 {
	if !(v > 0) { // Also catches NaN
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
