// Package platform holds the provider logic shared by the ebiten backends that does not depend on ebiten itself:
// the hand-off of frames and window requests between the application goroutine and the window loop.
package platform

import (
	"github.com/Yeicor/winhelp"
	"github.com/deadsy/sdfx/vec/v2i"
	"sync"
)

// Bridge connects an application frame loop (Surface, Flip, Events...) with a window event loop running on another
// goroutine (Frame, Pending, Resized...). The application surface is only touched from the application side; the
// window only ever sees copies made by Flip.
type Bridge struct {
	Input *winhelp.Input

	surface *winhelp.Surface

	mu        sync.Mutex
	frame     []byte // R, G, B, A bytes of the last presented surface
	frameSize v2i.Vec
	frameNew  bool
	size      v2i.Vec // Requested window size
	sizeNew   bool
	title     string
	titleNew  bool
	outside   v2i.Vec // Last size reported by a resizable window
	stale     v2i.Vec // Outside size the window reported before SetSize
	resizing  bool    // SetSize was called and the window has not reported a new size yet
	presented bool
	closed    bool
}

// NewBridge creates a bridge whose surface (and window request) has the given size and title.
func NewBridge(size v2i.Vec, title string) *Bridge {
	return &Bridge{
		Input:    winhelp.NewInput(),
		surface:  winhelp.NewSurface(size),
		size:     size,
		sizeNew:  true,
		title:    title,
		titleNew: true,
	}
}

//-----------------------------------------------------------------------------
// APPLICATION SIDE
//-----------------------------------------------------------------------------

// Surface returns the surface to draw into, first following any resize of the window.
func (b *Bridge) Surface() *winhelp.Surface {
	b.mu.Lock()
	outside := b.outside
	b.mu.Unlock()
	if outside != (v2i.Vec{}) && outside != b.surface.Size {
		b.surface.Resize(outside)
	}
	return b.surface
}

// Flip copies the surface for the window to present on its next draw.
func (b *Bridge) Flip() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return winhelp.ErrClosed
	}
	n := len(b.surface.Pixels) * 4
	if cap(b.frame) < n {
		b.frame = make([]byte, n)
	}
	b.frame = b.frame[:n]
	b.surface.CopyRGBA(b.frame)
	b.frameSize = b.surface.Size
	b.frameNew = true
	b.presented = true
	return nil
}

// Events drains the input queue.
func (b *Bridge) Events() []winhelp.Event {
	return b.Input.Drain()
}

// SetSize resizes the surface now and asks the window to follow.
func (b *Bridge) SetSize(size v2i.Vec) {
	b.surface.Resize(size)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size = b.surface.Size
	b.sizeNew = true
	if b.outside != (v2i.Vec{}) {
		if !b.resizing {
			b.stale, b.resizing = b.outside, true
		}
		b.outside = b.surface.Size
	}
}

// SetTitle asks the window to change its title.
func (b *Bridge) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = title
	b.titleNew = true
}

// Close marks the bridge as closed: the window loop stops and Flip fails from now on. It is idempotent.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		winhelp.LogDebug("closing window %q", b.title)
	}
	b.closed = true
}

//-----------------------------------------------------------------------------
// WINDOW SIDE
//-----------------------------------------------------------------------------

// Frame calls upload with the last presented frame if it changed since the previous call. Empty frames are skipped.
// pix is only valid during the call.
func (b *Bridge) Frame(upload func(pix []byte, size v2i.Vec)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.frameNew || b.frameSize.X <= 0 || b.frameSize.Y <= 0 {
		return
	}
	b.frameNew = false
	upload(b.frame, b.frameSize)
}

// LogicalSize is the size the window should lay out: the last presented frame, or the requested size before the
// first Flip. It is never smaller than 1x1.
func (b *Bridge) LogicalSize() v2i.Vec {
	b.mu.Lock()
	defer b.mu.Unlock()
	size := b.size
	if b.presented {
		size = b.frameSize
	}
	return v2i.Vec{X: max(size.X, 1), Y: max(size.Y, 1)}
}

// Pending returns the window size and title requested since the previous call (ok flags report whether each changed).
func (b *Bridge) Pending() (size v2i.Vec, sizeOk bool, title string, titleOk bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	size, sizeOk, title, titleOk = b.size, b.sizeNew, b.title, b.titleNew
	b.sizeNew, b.titleNew = false, false
	return
}

// Resized records the size of a resizable window. The surface follows on the next Surface call. Until the window
// applies a SetSize request, reports of the size it had before are ignored.
func (b *Bridge) Resized(size v2i.Vec) {
	if size.X <= 0 || size.Y <= 0 {
		return // Minimized
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.resizing {
		if b.sizeNew || size == b.stale {
			return // The window has not applied SetSize yet
		}
		b.resizing = false
	}
	if b.outside != size {
		b.outside = size
		b.size = size
	}
}

// Closed reports whether Close was called.
func (b *Bridge) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Presented reports whether at least one frame was flipped.
func (b *Bridge) Presented() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presented
}
