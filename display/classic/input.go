package classic

import (
	"github.com/Yeicor/winhelp"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
)

// keys is polled in winhelp.Key order, so batched key events keep that order.
var keys = []struct {
	key ebiten.Key
	sym winhelp.Key
}{
	{ebiten.KeyA, winhelp.KeyA}, {ebiten.KeyB, winhelp.KeyB}, {ebiten.KeyC, winhelp.KeyC}, {ebiten.KeyD, winhelp.KeyD},
	{ebiten.KeyE, winhelp.KeyE}, {ebiten.KeyF, winhelp.KeyF}, {ebiten.KeyG, winhelp.KeyG}, {ebiten.KeyH, winhelp.KeyH},
	{ebiten.KeyI, winhelp.KeyI}, {ebiten.KeyJ, winhelp.KeyJ}, {ebiten.KeyK, winhelp.KeyK}, {ebiten.KeyL, winhelp.KeyL},
	{ebiten.KeyM, winhelp.KeyM}, {ebiten.KeyN, winhelp.KeyN}, {ebiten.KeyO, winhelp.KeyO}, {ebiten.KeyP, winhelp.KeyP},
	{ebiten.KeyQ, winhelp.KeyQ}, {ebiten.KeyR, winhelp.KeyR}, {ebiten.KeyS, winhelp.KeyS}, {ebiten.KeyT, winhelp.KeyT},
	{ebiten.KeyU, winhelp.KeyU}, {ebiten.KeyV, winhelp.KeyV}, {ebiten.KeyW, winhelp.KeyW}, {ebiten.KeyX, winhelp.KeyX},
	{ebiten.KeyY, winhelp.KeyY}, {ebiten.KeyZ, winhelp.KeyZ},
	{ebiten.Key0, winhelp.KeyNum0}, {ebiten.Key1, winhelp.KeyNum1}, {ebiten.Key2, winhelp.KeyNum2},
	{ebiten.Key3, winhelp.KeyNum3}, {ebiten.Key4, winhelp.KeyNum4}, {ebiten.Key5, winhelp.KeyNum5},
	{ebiten.Key6, winhelp.KeyNum6}, {ebiten.Key7, winhelp.KeyNum7}, {ebiten.Key8, winhelp.KeyNum8},
	{ebiten.Key9, winhelp.KeyNum9},
	{ebiten.KeyLeft, winhelp.KeyArrowLeft}, {ebiten.KeyRight, winhelp.KeyArrowRight},
	{ebiten.KeyUp, winhelp.KeyArrowUp}, {ebiten.KeyDown, winhelp.KeyArrowDown},
	{ebiten.KeySpace, winhelp.KeySpace}, {ebiten.KeyEnter, winhelp.KeyEnter}, {ebiten.KeyEscape, winhelp.KeyEscape},
	{ebiten.KeyTab, winhelp.KeyTab}, {ebiten.KeyBackspace, winhelp.KeyBackspace},
	{ebiten.KeyShift, winhelp.KeyShift}, {ebiten.KeyControl, winhelp.KeyCtrl}, {ebiten.KeyAlt, winhelp.KeyAlt},
	{ebiten.KeyF1, winhelp.KeyF1}, {ebiten.KeyF2, winhelp.KeyF2}, {ebiten.KeyF3, winhelp.KeyF3},
	{ebiten.KeyF4, winhelp.KeyF4}, {ebiten.KeyF5, winhelp.KeyF5}, {ebiten.KeyF6, winhelp.KeyF6},
	{ebiten.KeyF7, winhelp.KeyF7}, {ebiten.KeyF8, winhelp.KeyF8}, {ebiten.KeyF9, winhelp.KeyF9},
	{ebiten.KeyF10, winhelp.KeyF10}, {ebiten.KeyF11, winhelp.KeyF11}, {ebiten.KeyF12, winhelp.KeyF12},
}

var mouseButtons = []struct {
	button ebiten.MouseButton
	click  winhelp.MouseButton
}{
	{ebiten.MouseButtonLeft, winhelp.MouseLeft},
	{ebiten.MouseButtonRight, winhelp.MouseRight},
	{ebiten.MouseButtonMiddle, winhelp.MouseMiddle},
}

// inputState polls ebiten and queues the resulting events
type inputState struct {
	down, up   []winhelp.Key
	cursor     v2.Vec
	cursorSeen bool
	fullscreen bool
}

func (s *inputState) poll(in *winhelp.Input) {
	s.down, s.up = s.down[:0], s.up[:0]
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			s.down = append(s.down, k.sym)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			s.up = append(s.up, k.sym)
		}
	}
	if len(s.down) > 0 {
		in.Push(winhelp.Event{Type: winhelp.KeyDown, Keys: append([]winhelp.Key(nil), s.down...), Click: winhelp.MouseNone})
	}
	if len(s.up) > 0 {
		in.Push(winhelp.Event{Type: winhelp.KeyUp, Keys: append([]winhelp.Key(nil), s.up...), Click: winhelp.MouseNone})
	}

	cx, cy := ebiten.CursorPosition()
	cursor := v2.Vec{X: float64(cx), Y: float64(cy)}
	if !s.cursorSeen || cursor != s.cursor {
		s.cursor, s.cursorSeen = cursor, true
		in.Push(winhelp.Event{Type: winhelp.MouseMove, Hit: cursor, Click: winhelp.MouseNone})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			in.Push(winhelp.Event{Type: winhelp.MouseDown, Hit: cursor, Click: b.click})
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			in.Push(winhelp.Event{Type: winhelp.MouseUp, Hit: cursor, Click: b.click})
		}
	}
	if _, wheel := ebiten.Wheel(); wheel > 0 {
		in.Push(winhelp.Event{Type: winhelp.ScrollUp, Hit: v2.Vec{Y: wheel}, Click: winhelp.MouseNone})
	} else if wheel < 0 {
		in.Push(winhelp.Event{Type: winhelp.ScrollDown, Hit: v2.Vec{Y: wheel}, Click: winhelp.MouseNone})
	}

	if fullscreen := ebiten.IsFullscreen(); fullscreen != s.fullscreen {
		s.fullscreen = fullscreen
		if fullscreen {
			in.Push(winhelp.Event{Type: winhelp.Fullscreened, Click: winhelp.MouseNone})
		}
	}
}
