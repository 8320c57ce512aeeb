package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/game/states"
)

// KeyAction maps a key press to a table action.
func KeyAction(ev *tcell.EventKey) (interface{}, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return states.Quit{}, true
	case tcell.KeyEnter:
		return states.RollAll{}, true
	case tcell.KeyUp:
		return states.StepCount{Delta: 1}, true
	case tcell.KeyDown:
		return states.StepCount{Delta: -1}, true
	case tcell.KeyRune:
		return runeAction(ev.Rune())
	}

	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF10 {
		palette := dice.Palette()
		i := int(ev.Key() - tcell.KeyF1)
		if i < len(palette) {
			return states.ToggleColor{Color: palette[i]}, true
		}
	}
	return nil, false
}

func runeAction(ch rune) (interface{}, bool) {
	switch {
	case ch == ' ':
		return states.RollAll{}, true
	case ch == 'r' || ch == 'R':
		return states.ResetAll{}, true
	case ch == '+' || ch == '=':
		return states.StepCount{Delta: 1}, true
	case ch == '-' || ch == '_':
		return states.StepCount{Delta: -1}, true
	case ch == 'q' || ch == 'Q':
		return states.Quit{}, true
	case ch == '0':
		return states.ToggleDieAt{Index: 9}, true
	case ch >= '1' && ch <= '9':
		return states.ToggleDieAt{Index: int(ch - '1')}, true
	}
	return nil, false
}
