package winhelp

import (
	"github.com/deadsy/sdfx/vec/v2i"
)

// Provider is a window (or any other presentation target) that owns a live Surface.
//
// A frame loop drains Events, draws into Surface and calls Flip. The surface pointer stays valid across
// frames but its size may change after SetSize or a platform resize.
type Provider interface {
	// Surface returns the surface to draw the next frame into.
	Surface() *Surface
	// Flip presents the surface. It returns ErrClosed once the provider is closed.
	Flip() error
	// Events drains the pending input events, in arrival order.
	Events() []Event
	// SetSize resizes the window and its surface.
	SetSize(size v2i.Vec)
	// SetTitle changes the window title.
	SetTitle(title string)
	// Close releases the window. Further Flip calls fail.
	Close()
}
