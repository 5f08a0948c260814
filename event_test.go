package winhelp

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	"sync"
	"testing"
)

func TestInput_DrainOrder(t *testing.T) {
	in := NewInput()
	in.Push(Event{Type: KeyDown, Keys: []Key{KeyA}})
	in.Push(Event{Type: MouseMove, Hit: v2.Vec{X: 3, Y: 4}})
	in.Push(Event{Type: KeyUp, Keys: []Key{KeyA}})

	events := in.Drain()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, but got %d", len(events))
	}
	if events[0].Type != KeyDown || events[1].Type != MouseMove || events[2].Type != KeyUp {
		t.Fatalf("expected arrival order, but got %v, %v, %v", events[0].Type, events[1].Type, events[2].Type)
	}
	if again := in.Drain(); len(again) != 0 {
		t.Fatalf("expected an empty second drain, but got %d events", len(again))
	}
	if m := in.Mouse(); m != (v2.Vec{X: 3, Y: 4}) {
		t.Fatalf("expected mouse at (3, 4), but got %v", m)
	}
}

func TestInput_ConcurrentDrain(t *testing.T) {
	const producers, perProducer = 8, 500
	in := NewInput()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				in.Push(Event{Type: MouseMove, Hit: v2.Vec{X: float64(p), Y: float64(i)}})
			}
		}(p)
	}

	seen := make(map[v2.Vec]int)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	drain := func() {
		for _, e := range in.Drain() {
			seen[e.Hit]++
		}
	}
loop:
	for {
		select {
		case <-done:
			break loop
		default:
			drain()
		}
	}
	drain()

	if len(seen) != producers*perProducer {
		t.Fatalf("expected %d distinct events, but got %d", producers*perProducer, len(seen))
	}
	for hit, n := range seen {
		if n != 1 {
			t.Fatalf("expected event %v exactly once, but got it %d times", hit, n)
		}
	}
}

func TestEvent_Helpers(t *testing.T) {
	e := Event{Type: KeyDown, Keys: []Key{KeyW, KeyEscape}}
	if !e.HasKey(KeyW) || e.HasKey(KeyS) {
		t.Fatalf("expected HasKey to match only the listed keys")
	}
	if !e.IsEscape() {
		t.Fatalf("expected escape press to be detected")
	}
	if (Event{Type: KeyUp, Keys: []Key{KeyEscape}}).IsEscape() {
		t.Fatalf("expected escape release to be ignored")
	}
	if Quit.String() != "quit" || EventType(99).String() != "unknown" {
		t.Fatalf("expected readable event type names, but got %q / %q", Quit, EventType(99))
	}
}
