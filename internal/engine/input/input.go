// Package input translates SDL2 events into ui2d input state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/dicebox/internal/engine/ui2d"
)

// Result summarizes one Pump call.
type Result struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Pump drains pending SDL events into in.
func Pump(in *ui2d.InputState) Result {
	var res Result
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			res.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				res.Resized = true
				res.Width = int(e.Data1)
				res.Height = int(e.Data2)
			}

		case *sdl.MouseMotionEvent:
			in.MouseX = float32(e.X)
			in.MouseY = float32(e.Y)

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			in.MouseX = float32(e.X)
			in.MouseY = float32(e.Y)
			in.MouseLeftDown = e.State == sdl.PRESSED
			if in.MouseLeftDown {
				in.MouseLeftClicked = true
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				applyKey(in, e.Keysym.Sym)
			}
		}
	}
	return res
}

// applyKey records a key press in the input state.
func applyKey(in *ui2d.InputState, key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE:
		in.KeyEscape = true
	case sdl.K_SPACE, sdl.K_RETURN:
		in.KeySpace = true
	case sdl.K_r:
		in.KeyReset = true
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS, sdl.K_UP:
		in.KeyPlus = true
	case sdl.K_MINUS, sdl.K_KP_MINUS, sdl.K_DOWN:
		in.KeyMinus = true
	case sdl.K_F12:
		in.KeyScreenshot = true
	default:
		if d := digit(key); d > 0 {
			in.KeyDigit = d
		}
	}
}

// digit maps keys 1-9 to 1..9 and 0 to 10.
func digit(key sdl.Keycode) int {
	switch {
	case key >= sdl.K_1 && key <= sdl.K_9:
		return int(key-sdl.K_1) + 1
	case key == sdl.K_0:
		return 10
	}
	return 0
}
