package winhelp

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	"sync"
)

// EventType tags an Event.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	ScrollUp
	ScrollDown
	Quit
	Minimized
	Fullscreened
)

var eventTypeNames = [...]string{"key_down", "key_up", "mouse_down", "mouse_up", "mouse_move", "scroll_up",
	"scroll_down", "quit", "minimized", "fullscreened"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Key is a platform independent key symbol.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyShift
	KeyCtrl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseNone
)

// Event is one input event. Hit is the cursor position for mouse events, and holds the wheel delta in Hit.Y for
// scroll events. Keys is a slice because a single platform update may batch several keys.
type Event struct {
	Type  EventType
	Hit   v2.Vec
	Keys  []Key
	Click MouseButton
}

// HasKey reports whether k is one of the event's keys.
func (e Event) HasKey(k Key) bool {
	for _, key := range e.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// IsEscape reports whether the event is an Escape key press, the conventional way to leave a demo.
func (e Event) IsEscape() bool {
	return e.Type == KeyDown && e.HasKey(KeyEscape)
}

//-----------------------------------------------------------------------------
// INPUT SESSION
//-----------------------------------------------------------------------------

// Input is the input session of one display: the event queue plus the last known mouse position.
// Platform callbacks Push from their own goroutine while the application drains from its frame loop.
type Input struct {
	mu    sync.Mutex
	queue []Event
	mouse v2.Vec
}

// NewInput creates an empty input session.
func NewInput() *Input {
	return &Input{}
}

// Push queues an event. Mouse moves also update the tracked mouse position.
func (in *Input) Push(e Event) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if e.Type == MouseMove {
		in.mouse = e.Hit
	}
	in.queue = append(in.queue, e)
}

// Drain atomically empties the queue and returns its previous contents in arrival order.
// Returns nil if nothing was queued since the previous drain.
func (in *Input) Drain() []Event {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.queue
	in.queue = nil
	return out
}

// Mouse returns the last mouse position reported by a MouseMove event.
func (in *Input) Mouse() v2.Vec {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mouse
}
