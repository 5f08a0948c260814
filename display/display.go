// Package display is the window provider built on ebiten/v2, with alpha blending and text support in the core.
//
// ebiten must own the main goroutine, so Run hands your frame loop its own goroutine and keeps the window there.
package display

import (
	"github.com/Yeicor/winhelp"
	"github.com/Yeicor/winhelp/internal/platform"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten/v2"
)

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

// OptResizable lets the user resize the window. The surface follows the window size.
func OptResizable(resizable bool) Option {
	return func(c *config) {
		c.resizable = resizable
	}
}

// OptTPS sets how many times per second input is polled and frames are presented (default 60).
func OptTPS(tps int) Option {
	return func(c *config) {
		c.tps = tps
	}
}

// OptRunnableOnUnfocused keeps polling input and presenting while the window is not focused (default true).
func OptRunnableOnUnfocused(runnable bool) Option {
	return func(c *config) {
		c.runnableOnUnfocused = runnable
	}
}

//-----------------------------------------------------------------------------
// DISPLAY
//-----------------------------------------------------------------------------

// Display is the winhelp.Provider handed to the frame loop. Its methods are meant to be called from that loop only.
type Display struct {
	*platform.Bridge
}

var _ winhelp.Provider = (*Display)(nil)

// Run opens a window and calls app with it on a new goroutine, blocking until both the window and app are done.
// Closing the window (or SIGINT/SIGTERM) queues a Quit event. Returning from app closes the window.
// If the window can't be created the error wraps winhelp.ErrProviderUnavailable.
func Run(size v2i.Vec, title string, app func(d *Display) error, opts ...Option) error {
	cfg := &config{tps: 60, runnableOnUnfocused: true}
	for _, opt := range opts {
		opt(cfg)
	}
	d := &Display{Bridge: platform.NewBridge(size, title)}
	g := &game{d: d, resizable: cfg.resizable}

	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle(title)
	if cfg.resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.tps)
	ebiten.SetRunnableOnUnfocused(cfg.runnableOnUnfocused)
	ebiten.SetWindowClosingHandled(true)

	winhelp.LogInfo("opening %dx%d window %q", size.X, size.Y, title)
	return platform.Run(d.Bridge, func() error {
		return app(d)
	}, func() error {
		return ebiten.RunGame(g)
	})
}

//-----------------------------------------------------------------------------
// EBITEN
//-----------------------------------------------------------------------------

// game is the ebiten side of a Display.
type game struct {
	d         *Display
	resizable bool
	image     *ebiten.Image
	input     inputState
}

func (g *game) Update() error {
	if g.d.Closed() {
		return ebiten.Termination
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

func (g *game) Draw(screen *ebiten.Image) {
	g.d.Frame(func(pix []byte, size v2i.Vec) {
		if g.image == nil || g.image.Bounds().Dx() != size.X || g.image.Bounds().Dy() != size.Y {
			if g.image != nil {
				g.image.Deallocate()
			}
			g.image = ebiten.NewImage(size.X, size.Y)
		}
		g.image.WritePixels(pix)
	})
	if g.image != nil {
		screen.DrawImage(g.image, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.resizable {
		g.d.Resized(v2i.Vec{X: outsideWidth, Y: outsideHeight})
	}
	size := g.d.LogicalSize()
	return size.X, size.Y // The presented frame maps 1:1 to screen pixels (scaled if the window is not resizable)
}
