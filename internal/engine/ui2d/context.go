package ui2d

import "fmt"

// textScale is the default glyph scale for widget labels.
const textScale = float32(2.0)

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	input    *InputState

	// Active/hot widget tracking for interaction
	hotWidget    string
	activeWidget string
}

// NewContext creates a new UI context.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Context{
		renderer: r,
		input:    &InputState{},
	}, nil
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.hotWidget = ""
	c.renderer.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// interact runs hot/active tracking for a widget and reports a click.
// Clicks fire on press and are consumed so overlapping widgets see only one.
func (c *Context) interact(id string, rect Rect) (hovered, clicked bool) {
	hovered = rect.Contains(c.input.MouseX, c.input.MouseY)
	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
			c.activeWidget = id
			clicked = true
			c.input.MouseLeftPressed = false
			c.input.MouseLeftClicked = false
		}
	}
	if c.activeWidget == id && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
	return hovered, clicked
}

// Text draws text at an absolute position.
func (c *Context) Text(x, y float32, text string, scale float32, color Color) {
	c.renderer.DrawText(x, y, text, scale, color)
}

// TextCentered draws text centered inside rect.
func (c *Context) TextCentered(rect Rect, text string, scale float32, color Color) {
	w, h := c.renderer.MeasureText(text, scale)
	c.renderer.DrawText(rect.X+(rect.W-w)/2, rect.Y+(rect.H-h)/2, text, scale, color)
}

// ButtonStyle selects the look of a button.
type ButtonStyle int

const (
	ButtonPrimary ButtonStyle = iota
	ButtonSecondary
	ButtonRound
)

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, rect Rect, label string, style ButtonStyle) bool {
	hovered, clicked := c.interact(id, rect)

	bg, border, fg := ColorButtonNormal, ColorButtonNormal, ColorTextInverse
	if style != ButtonPrimary {
		bg, border, fg = ColorButtonAlt, ColorPanelBorder, ColorText
	}
	switch {
	case c.activeWidget == id:
		bg = bg.Darken(0.15)
	case hovered:
		bg = bg.Darken(0.07)
	}

	radius := float32(12)
	if style == ButtonRound {
		radius = rect.H / 2
	}
	c.renderer.DrawRoundedRect(rect.X, rect.Y, rect.W, rect.H, radius, border)
	c.renderer.DrawRoundedRect(rect.X+1, rect.Y+1, rect.W-2, rect.H-2, radius-1, bg)
	c.TextCentered(rect, label, textScale, fg)

	return clicked
}

// ButtonDisabled draws a button with no interaction.
func (c *Context) ButtonDisabled(rect Rect, label string) {
	bg := ColorButtonNormal.WithAlpha(0.5)
	c.renderer.DrawRoundedRect(rect.X, rect.Y, rect.W, rect.H, 12, bg)
	c.TextCentered(rect, label, textScale, ColorTextInverse.WithAlpha(0.7))
}

// Swatch draws a round color chip and returns true if clicked.
// Selected chips carry a check mark.
func (c *Context) Swatch(id string, rect Rect, color Color, selected bool) bool {
	hovered, clicked := c.interact(id, rect)

	cx, cy := rect.X+rect.W/2, rect.Y+rect.H/2
	radius := rect.W / 2
	if hovered {
		radius *= 1.1
	}
	c.renderer.DrawCircle(cx, cy, radius, color)

	if selected {
		s := rect.W / 4
		c.renderer.DrawLine(cx-s, cy, cx-s/3, cy+s*2/3, 3, ColorWhite)
		c.renderer.DrawLine(cx-s/3, cy+s*2/3, cx+s, cy-s*2/3, 3, ColorWhite)
	}
	return clicked
}

// DieStyle describes how a die face is drawn.
type DieStyle struct {
	Color    Color
	Pips     [3][3]bool
	Excluded bool
}

// DieFace draws a die and returns true if clicked.
func (c *Context) DieFace(id string, rect Rect, style DieStyle) bool {
	hovered, clicked := c.interact(id, rect)

	face := style.Color
	if style.Excluded {
		face = face.Desaturate(0.5).WithAlpha(0.5)
	}
	x, y, size := rect.X, rect.Y, rect.W
	if hovered {
		grow := size * 0.05
		x, y, size = x-grow/2, y-grow/2, size+grow
	}
	radius := size * 0.16

	c.renderer.DrawRoundedRect(x+2, y+4, size, size, radius, ColorBlack.WithAlpha(0.12))
	c.renderer.DrawRoundedRect(x, y, size, size, radius, face)
	c.renderer.DrawRoundedRect(x, y, size, size/2, radius, ColorWhite.WithAlpha(0.12))

	pad := size * 0.18
	cell := (size - 2*pad) / 3
	pipAlpha := float32(1)
	if style.Excluded {
		pipAlpha = 0.6
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if !style.Pips[row][col] {
				continue
			}
			cx := x + pad + cell*(float32(col)+0.5)
			cy := y + pad + cell*(float32(row)+0.5)
			c.renderer.DrawCircle(cx, cy, cell*0.32, ColorWhite.WithAlpha(pipAlpha))
		}
	}

	// Status badge in the top-right corner.
	bx, by, br := x+size-4, y+4, size*0.11
	if style.Excluded {
		c.renderer.DrawCircle(bx, by, br, ColorBadge)
		c.renderer.DrawLine(bx-br/2, by-br/2, bx+br/2, by+br/2, 2, ColorWhite)
		c.renderer.DrawLine(bx-br/2, by+br/2, bx+br/2, by-br/2, 2, ColorWhite)
	} else if hovered {
		c.renderer.DrawCircle(bx, by, br, ColorHighlight)
	}

	return clicked
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}
