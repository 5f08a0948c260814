package winhelp

import (
	"github.com/deadsy/sdfx/vec/v2i"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"image"
	"strings"
	"sync"
)

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

type textConfig struct {
	size float64
	ttf  []byte
}

// TextOption configures Text.
type TextOption func(*textConfig)

// OptFontSize sets the font size in pixels (default 16).
func OptFontSize(size int) TextOption {
	return func(c *textConfig) {
		c.size = float64(size)
	}
}

// OptFontTTF uses the given TrueType/OpenType font data instead of the default Go Mono font.
func OptFontTTF(ttf []byte) TextOption {
	return func(c *textConfig) {
		c.ttf = ttf
	}
}

//-----------------------------------------------------------------------------
// RENDERER
//-----------------------------------------------------------------------------

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

func parseFont(ttf []byte) (*opentype.Font, error) {
	if ttf == nil {
		defaultFontOnce.Do(func() {
			defaultFont, defaultFontErr = opentype.Parse(gomono.TTF)
		})
		return defaultFont, defaultFontErr
	}
	return opentype.Parse(ttf)
}

// Text renders content into a new surface sized to fit it. Pixels covered by glyphs take textColour with the
// glyph coverage as alpha; the rest take bgColour, or stay fully transparent if bgColour.A is 0.
// The result is meant to be composited with Blit. Lines are split on '\n'.
func Text(content string, textColour, bgColour RGBA, opts ...TextOption) *Surface {
	if content == "" {
		return NewSurface(v2i.Vec{})
	}
	cfg := &textConfig{size: 16}
	for _, opt := range opts {
		opt(cfg)
	}

	f, err := parseFont(cfg.ttf)
	if err != nil {
		LogError("can't parse font: %s", err)
		return NewSurface(v2i.Vec{})
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: cfg.size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		LogError("can't create font face: %s", err)
		return NewSurface(v2i.Vec{})
	}
	defer face.Close()

	// Measure
	lines := strings.Split(content, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	height := lineHeight * len(lines)
	if width <= 0 || height <= 0 {
		return NewSurface(v2i.Vec{})
	}

	// Rasterize coverage only, then colourize
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for i, line := range lines {
		drawer.Dot = fixed.P(0, i*lineHeight+metrics.Ascent.Ceil())
		drawer.DrawString(line)
	}

	transparentBG := bgColour.A == 0
	textBase := Pack(textColour) & 0x00FFFFFF
	bgValue := Pack(bgColour)
	result := NewSurface(v2i.Vec{X: width, Y: height})
	for i := range result.Pixels {
		glyphAlpha := uint32(mask.Pix[i])
		switch {
		case glyphAlpha > 0:
			result.Pixels[i] = glyphAlpha<<24 | textBase
		case transparentBG:
			result.Pixels[i] = 0
		default:
			result.Pixels[i] = bgValue
		}
	}
	return result
}
