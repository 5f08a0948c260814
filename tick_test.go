package winhelp

import (
	"testing"
	"time"
)

func TestTicker_TickTargetWaits(t *testing.T) {
	ticker := NewTicker()
	start := time.Now()
	ticker.TickTarget(50)
	ticker.TickTarget(50)
	// Two 20ms frames, the first one partially elapsed before start
	if elapsed := time.Since(start); elapsed < 35*time.Millisecond {
		t.Fatalf("expected at least 35ms, but got %s", elapsed)
	}
}

func TestTicker_NoTarget(t *testing.T) {
	ticker := NewTicker()
	start := time.Now()
	for i := 0; i < 100; i++ {
		ticker.TickTarget(0)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected no waiting, but took %s", elapsed)
	}
	if ticker.FPS() != 0 {
		t.Fatalf("expected no FPS before a full second, but got %d", ticker.FPS())
	}
}

func TestTicker_FPS(t *testing.T) {
	ticker := NewTicker()
	ticker.lastFPSTick = time.Now().Add(-time.Second)
	ticker.Tick()
	if ticker.FPS() != 1 {
		t.Fatalf("expected 1 fps, but got %d", ticker.FPS())
	}
}
