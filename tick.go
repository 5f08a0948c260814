package winhelp

import (
	"time"
)

// Ticker paces a frame loop and measures its frame rate.
type Ticker struct {
	lastFrame   time.Time
	lastFPSTick time.Time
	frames      int
	fps         int
}

// NewTicker creates a ticker whose first frame starts now.
func NewTicker() *Ticker {
	now := time.Now()
	return &Ticker{lastFrame: now, lastFPSTick: now}
}

// Tick marks the end of a frame. FPS is refreshed once every second.
func (t *Ticker) Tick() {
	now := time.Now()
	t.frames++
	if now.Sub(t.lastFPSTick) >= time.Second {
		t.fps = t.frames
		t.frames = 0
		t.lastFPSTick = now
	}
	t.lastFrame = now
}

// TickTarget sleeps until one 1/target interval has passed since the previous frame, then ticks.
// A target <= 0 does not wait.
func (t *Ticker) TickTarget(target int) {
	if target <= 0 {
		t.Tick()
		return
	}
	next := t.lastFrame.Add(time.Duration(float64(time.Second) / float64(target)))
	if wait := time.Until(next); wait > 0 {
		time.Sleep(wait)
	}
	t.Tick()
}

// FPS returns the number of frames ticked during the last complete second.
func (t *Ticker) FPS() int {
	return t.fps
}
