// Package ui renders the dice table for the desktop front-end.
package ui

import (
	"github.com/Faultbox/dicebox/internal/engine/ui2d"
	"github.com/Faultbox/dicebox/internal/game/states"
)

// Dispatch delivers a user action to the game.
type Dispatch func(action interface{})

// UIBackend defines the interface for UI rendering backends.
type UIBackend interface {
	// Begin starts a new UI frame.
	Begin()

	// End finishes the UI frame and presents.
	End()

	// Close releases backend resources.
	Close()

	// Resize updates the screen size.
	Resize(width, height int)

	// GetScreenSize returns the current screen dimensions.
	GetScreenSize() (width, height float32)

	// Input returns the input state for the current frame.
	Input() *ui2d.InputState

	// RenderTable draws the dice table and reports clicks through dispatch.
	RenderTable(view states.TableView, dispatch Dispatch)
}

// KeyActions maps this frame's keyboard state to table actions.
func KeyActions(in *ui2d.InputState) []interface{} {
	var out []interface{}
	if in.KeyEscape {
		out = append(out, states.Quit{})
	}
	if in.KeySpace {
		out = append(out, states.RollAll{})
	}
	if in.KeyReset {
		out = append(out, states.ResetAll{})
	}
	if in.KeyPlus {
		out = append(out, states.StepCount{Delta: 1})
	}
	if in.KeyMinus {
		out = append(out, states.StepCount{Delta: -1})
	}
	if in.KeyDigit > 0 {
		out = append(out, states.ToggleDieAt{Index: in.KeyDigit - 1})
	}
	return out
}
