package ui2d

// InputState holds the current input state for the UI.
type InputState struct {
	MouseX float32
	MouseY float32

	// Mouse buttons (current frame)
	MouseLeftDown bool

	// Edges, derived in Update
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// Set by the event pump on button-down so a press and release inside a
	// single frame still registers as a click.
	MouseLeftClicked bool

	// Keys pressed this frame
	KeyEscape bool
	KeySpace  bool
	KeyReset  bool // R
	KeyPlus   bool
	KeyMinus  bool
	KeyDigit  int // 1..10 for keys 1-9,0; 0 when none

	KeyScreenshot bool // F12

	prevMouseLeft bool
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft

	i.prevMouseLeft = i.MouseLeftDown
}

// EndFrame clears per-frame input state.
// Call this at the end of each frame.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
	i.KeyEscape = false
	i.KeySpace = false
	i.KeyReset = false
	i.KeyPlus = false
	i.KeyMinus = false
	i.KeyDigit = 0
	i.KeyScreenshot = false
}
