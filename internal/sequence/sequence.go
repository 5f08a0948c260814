// Package sequence holds the random bar chart shared by the chart demos: generation, shuffling, a bubble sort that
// advances one pass per frame, and drawing.
package sequence

import (
	"github.com/Yeicor/winhelp"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"golang.org/x/exp/rand"
)

// Bar is one value of the chart.
type Bar struct {
	Value  int
	Colour winhelp.RGB
}

// Sequence is a list of random bars.
type Sequence struct {
	Bars     []Bar
	rng      *rand.Rand
	maxValue int
}

// New creates size random bars with values in [0, maxValue] and random colours.
func New(rng *rand.Rand, size, maxValue int) *Sequence {
	s := &Sequence{rng: rng, maxValue: maxValue}
	s.Regenerate(size)
	return s
}

// Regenerate replaces every bar with size new random ones.
func (s *Sequence) Regenerate(size int) {
	s.Bars = make([]Bar, max(size, 0))
	for i := range s.Bars {
		s.Bars[i] = Bar{
			Value: s.rng.Intn(s.maxValue + 1),
			Colour: winhelp.RGB{
				R: float64(s.rng.Intn(256)),
				G: float64(s.rng.Intn(256)),
				B: float64(s.rng.Intn(256)),
			},
		}
	}
}

// Shuffle exchanges every bar with a random one.
func (s *Sequence) Shuffle() {
	for i := range s.Bars {
		j := s.rng.Intn(len(s.Bars))
		s.Bars[i], s.Bars[j] = s.Bars[j], s.Bars[i]
	}
}

// Largest returns the biggest value, 0 if there are no bars.
func (s *Sequence) Largest() int {
	largest := 0
	for _, b := range s.Bars {
		largest = max(largest, b.Value)
	}
	return largest
}

// Scale is the number of pixels per value unit that fits the largest bar (plus headroom value units) in span.
func (s *Sequence) Scale(span float64, headroom int) float64 {
	units := s.Largest() + headroom
	if units <= 0 {
		return 0
	}
	return span / float64(units)
}

// Draw paints the bars side by side across the whole surface width, standing on the row base and growing upwards.
// A nil colour uses each bar's own colour.
func (s *Sequence) Draw(surface *winhelp.Surface, base, scale float64, colour func(b Bar) winhelp.RGB) {
	if len(s.Bars) == 0 {
		return
	}
	width := float64(surface.Size.X) / float64(len(s.Bars))
	for i, b := range s.Bars {
		c := b.Colour
		if colour != nil {
			c = colour(b)
		}
		h := float64(b.Value) * scale
		winhelp.Rect(surface, v2.Vec{X: float64(i) * width, Y: base - h}, v2.Vec{X: width, Y: h}, c, true, 1)
	}
}

//-----------------------------------------------------------------------------
// BUBBLE SORT
//-----------------------------------------------------------------------------

// BubbleState is the progress of a stepped bubble sort.
type BubbleState struct {
	Pass        int  // Completed passes
	SwappedLast bool // Whether the last pass swapped anything
}

// BubbleStep runs one bubble sort pass over bars, ascending by value. A nil state starts a new sort. It returns the
// state for the next call, or nil once the bars are sorted.
func BubbleStep(bars []Bar, state *BubbleState) *BubbleState {
	current := BubbleState{SwappedLast: true}
	if state != nil {
		current = *state
	}
	if len(bars) < 2 || !current.SwappedLast || current.Pass >= len(bars)-1 {
		return nil
	}
	swapped := false
	limit := len(bars) - current.Pass - 1
	for i := 0; i < limit; i++ {
		if bars[i].Value > bars[i+1].Value {
			bars[i], bars[i+1] = bars[i+1], bars[i]
			swapped = true
		}
	}
	if !swapped {
		return nil
	}
	return &BubbleState{Pass: current.Pass + 1, SwappedLast: swapped}
}
