package states

import "github.com/Faultbox/dicebox/internal/dice"

// User actions accepted by TableState.HandleInput.
type (
	// RollAll starts the roll animation.
	RollAll struct{}

	// ResetAll re-rolls every die and clears exclusions.
	ResetAll struct{}

	// SetCount sets the number of dice.
	SetCount struct{ N int }

	// StepCount adds Delta to the number of dice.
	StepCount struct{ Delta int }

	// ToggleColor selects or deselects a palette color.
	ToggleColor struct{ Color dice.Color }

	// ToggleDie flips exclusion of the die with ID.
	ToggleDie struct{ ID string }

	// ToggleDieAt flips exclusion of the die at Index (0-based).
	ToggleDieAt struct{ Index int }

	// Quit asks the front-end to shut down.
	Quit struct{}
)
