// Package classic is the first generation window provider, built on ebiten v1. It reports the basic input events
// (keys, mouse, wheel, fullscreen, quit) and presents opaque frames.
package classic

import (
	"errors"
	"github.com/Yeicor/winhelp"
	"github.com/Yeicor/winhelp/internal/platform"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten"
)

// errTerminated stops the ebiten loop once the frame loop is done.
var errTerminated = errors.New("terminated")

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

type config struct {
	resizable           bool
	tps                 int
	runnableOnUnfocused bool
}

// Option configures Run.
type Option func(c *config)

// OptResizable lets the user resize the window.
func OptResizable(resizable bool) Option {
	return func(c *config) {
		c.resizable = resizable
	}
}

// OptTPS sets the ticks per second of the window loop (default 60).
func OptTPS(tps int) Option {
	return func(c *config) {
		c.tps = tps
	}
}

// OptRunnableOnUnfocused keeps the window loop running while unfocused (default true).
func OptRunnableOnUnfocused(runnable bool) Option {
	return func(c *config) {
		c.runnableOnUnfocused = runnable
	}
}

//-----------------------------------------------------------------------------
// DISPLAY
//-----------------------------------------------------------------------------

// Display is the winhelp.Provider handed to the frame loop.
type Display struct {
	*platform.Bridge
}

var _ winhelp.Provider = (*Display)(nil)

// Run opens a window and runs app on a new goroutine until it returns or the window is closed.
// If the window can't be created the error wraps winhelp.ErrProviderUnavailable.
func Run(size v2i.Vec, title string, app func(d *Display) error, opts ...Option) error {
	cfg := &config{tps: 60, runnableOnUnfocused: true}
	for _, opt := range opts {
		opt(cfg)
	}
	d := &Display{Bridge: platform.NewBridge(size, title)}
	g := &classicGame{d: d, resizable: cfg.resizable}

	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(cfg.resizable)
	ebiten.SetMaxTPS(cfg.tps)
	ebiten.SetRunnableOnUnfocused(cfg.runnableOnUnfocused)

	winhelp.LogInfo("opening %dx%d window %q (classic)", size.X, size.Y, title)
	return platform.Run(d.Bridge, func() error {
		return app(d)
	}, func() error {
		err := ebiten.RunGame(g)
		if errors.Is(err, errTerminated) {
			return nil
		}
		return err
	})
}

//-----------------------------------------------------------------------------
// EBITEN
//-----------------------------------------------------------------------------

// classicGame hides the ebiten implementation of a Display
type classicGame struct {
	d         *Display
	resizable bool
	image     *ebiten.Image
	input     inputState
}

func (g *classicGame) Update(_ *ebiten.Image) error {
	if g.d.Closed() {
		return errTerminated
	}
	if size, ok, title, titleOk := g.d.Pending(); ok || titleOk {
		if ok {
			ebiten.SetWindowSize(size.X, size.Y)
		}
		if titleOk {
			ebiten.SetWindowTitle(title)
		}
	}
	g.input.poll(g.d.Input)
	return nil
}

func (g *classicGame) Draw(screen *ebiten.Image) {
	var err error
	g.d.Frame(func(pix []byte, size v2i.Vec) {
		if g.image == nil || g.image.Bounds().Dx() != size.X || g.image.Bounds().Dy() != size.Y {
			if g.image != nil {
				_ = g.image.Dispose()
			}
			g.image, err = ebiten.NewImage(size.X, size.Y, ebiten.FilterDefault)
			if err != nil {
				return
			}
		}
		err = g.image.ReplacePixels(pix)
	})
	if err != nil {
		winhelp.LogError("can't upload frame: %s", err)
		g.image = nil
		return
	}
	if g.image != nil {
		_ = screen.DrawImage(g.image, &ebiten.DrawImageOptions{})
	}
}

func (g *classicGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.resizable {
		g.d.Resized(v2i.Vec{X: outsideWidth, Y: outsideHeight})
	}
	size := g.d.LogicalSize()
	return size.X, size.Y
}
