package display

import (
	"github.com/Yeicor/winhelp"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]winhelp.Key{
	ebiten.KeyA: winhelp.KeyA, ebiten.KeyB: winhelp.KeyB, ebiten.KeyC: winhelp.KeyC, ebiten.KeyD: winhelp.KeyD,
	ebiten.KeyE: winhelp.KeyE, ebiten.KeyF: winhelp.KeyF, ebiten.KeyG: winhelp.KeyG, ebiten.KeyH: winhelp.KeyH,
	ebiten.KeyI: winhelp.KeyI, ebiten.KeyJ: winhelp.KeyJ, ebiten.KeyK: winhelp.KeyK, ebiten.KeyL: winhelp.KeyL,
	ebiten.KeyM: winhelp.KeyM, ebiten.KeyN: winhelp.KeyN, ebiten.KeyO: winhelp.KeyO, ebiten.KeyP: winhelp.KeyP,
	ebiten.KeyQ: winhelp.KeyQ, ebiten.KeyR: winhelp.KeyR, ebiten.KeyS: winhelp.KeyS, ebiten.KeyT: winhelp.KeyT,
	ebiten.KeyU: winhelp.KeyU, ebiten.KeyV: winhelp.KeyV, ebiten.KeyW: winhelp.KeyW, ebiten.KeyX: winhelp.KeyX,
	ebiten.KeyY: winhelp.KeyY, ebiten.KeyZ: winhelp.KeyZ,

	ebiten.KeyDigit0: winhelp.KeyNum0, ebiten.KeyDigit1: winhelp.KeyNum1, ebiten.KeyDigit2: winhelp.KeyNum2,
	ebiten.KeyDigit3: winhelp.KeyNum3, ebiten.KeyDigit4: winhelp.KeyNum4, ebiten.KeyDigit5: winhelp.KeyNum5,
	ebiten.KeyDigit6: winhelp.KeyNum6, ebiten.KeyDigit7: winhelp.KeyNum7, ebiten.KeyDigit8: winhelp.KeyNum8,
	ebiten.KeyDigit9: winhelp.KeyNum9,

	ebiten.KeyArrowLeft: winhelp.KeyArrowLeft, ebiten.KeyArrowRight: winhelp.KeyArrowRight,
	ebiten.KeyArrowUp: winhelp.KeyArrowUp, ebiten.KeyArrowDown: winhelp.KeyArrowDown,

	ebiten.KeySpace: winhelp.KeySpace, ebiten.KeyEnter: winhelp.KeyEnter, ebiten.KeyEscape: winhelp.KeyEscape,
	ebiten.KeyTab: winhelp.KeyTab, ebiten.KeyBackspace: winhelp.KeyBackspace,
	ebiten.KeyShiftLeft: winhelp.KeyShift, ebiten.KeyShiftRight: winhelp.KeyShift,
	ebiten.KeyControlLeft: winhelp.KeyCtrl, ebiten.KeyControlRight: winhelp.KeyCtrl,
	ebiten.KeyAltLeft: winhelp.KeyAlt, ebiten.KeyAltRight: winhelp.KeyAlt,

	ebiten.KeyF1: winhelp.KeyF1, ebiten.KeyF2: winhelp.KeyF2, ebiten.KeyF3: winhelp.KeyF3, ebiten.KeyF4: winhelp.KeyF4,
	ebiten.KeyF5: winhelp.KeyF5, ebiten.KeyF6: winhelp.KeyF6, ebiten.KeyF7: winhelp.KeyF7, ebiten.KeyF8: winhelp.KeyF8,
	ebiten.KeyF9: winhelp.KeyF9, ebiten.KeyF10: winhelp.KeyF10, ebiten.KeyF11: winhelp.KeyF11,
	ebiten.KeyF12: winhelp.KeyF12,
}

var mouseButtons = []struct {
	button ebiten.MouseButton
	click  winhelp.MouseButton
}{
	{ebiten.MouseButtonLeft, winhelp.MouseLeft},
	{ebiten.MouseButtonRight, winhelp.MouseRight},
	{ebiten.MouseButtonMiddle, winhelp.MouseMiddle},
}

// translateKeys maps ebiten keys to winhelp keys, dropping unknown ones (order is kept).
func translateKeys(keys []ebiten.Key) []winhelp.Key {
	var out []winhelp.Key
	for _, k := range keys {
		if wk, ok := keyMap[k]; ok {
			out = append(out, wk)
		}
	}
	return out
}

// inputState turns ebiten's polled input state into winhelp events, once per tick.
type inputState struct {
	keys       []ebiten.Key
	cursor     v2.Vec
	cursorSeen bool
	minimized  bool
	fullscreen bool
}

func (s *inputState) poll(in *winhelp.Input) {
	// Keys: one event per tick batching every key that changed
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	if keys := translateKeys(s.keys); len(keys) > 0 {
		in.Push(winhelp.Event{Type: winhelp.KeyDown, Keys: keys, Click: winhelp.MouseNone})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	if keys := translateKeys(s.keys); len(keys) > 0 {
		in.Push(winhelp.Event{Type: winhelp.KeyUp, Keys: keys, Click: winhelp.MouseNone})
	}

	// Mouse
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

	// Window
	if minimized := ebiten.IsWindowMinimized(); minimized != s.minimized {
		s.minimized = minimized
		if minimized {
			in.Push(winhelp.Event{Type: winhelp.Minimized, Click: winhelp.MouseNone})
		}
	}
	if fullscreen := ebiten.IsFullscreen(); fullscreen != s.fullscreen {
		s.fullscreen = fullscreen
		if fullscreen {
			in.Push(winhelp.Event{Type: winhelp.Fullscreened, Click: winhelp.MouseNone})
		}
	}
	if ebiten.IsWindowBeingClosed() {
		in.Push(winhelp.Event{Type: winhelp.Quit, Click: winhelp.MouseNone})
	}
}
