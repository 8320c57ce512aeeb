package ui

import (
	"fmt"

	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/engine/ui2d"
	"github.com/Faultbox/dicebox/internal/game/states"
)

const (
	titleScale = 2.5
	bodyScale  = 1.5
	smallScale = 1.2
	countScale = 2
)

var _ UIBackend = (*UI2DBackend)(nil)

// UI2DBackend implements UIBackend using the custom ui2d rendering system.
type UI2DBackend struct {
	ctx *ui2d.Context
}

// NewUI2DBackend creates a new ui2d UI backend.
func NewUI2DBackend(width, height int) (*UI2DBackend, error) {
	ctx, err := ui2d.NewContext(width, height)
	if err != nil {
		return nil, fmt.Errorf("create ui2d context: %w", err)
	}
	return &UI2DBackend{ctx: ctx}, nil
}

// Begin starts a new UI frame.
func (b *UI2DBackend) Begin() {
	b.ctx.Begin()
}

// End finishes the UI frame.
func (b *UI2DBackend) End() {
	b.ctx.End()
}

// Close releases backend resources.
func (b *UI2DBackend) Close() {
	if b.ctx != nil {
		b.ctx.Close()
	}
}

// Resize updates the screen size.
func (b *UI2DBackend) Resize(width, height int) {
	b.ctx.Resize(width, height)
}

// GetScreenSize returns the current screen dimensions.
func (b *UI2DBackend) GetScreenSize() (width, height float32) {
	return b.ctx.GetScreenSize()
}

// Input returns the input state.
func (b *UI2DBackend) Input() *ui2d.InputState {
	return b.ctx.Input()
}

// RenderTable draws the dice table.
func (b *UI2DBackend) RenderTable(view states.TableView, dispatch Dispatch) {
	c := b.ctx
	w, h := c.GetScreenSize()
	l := TableLayout(w, h, len(view.Dice), len(view.Palette))

	c.Text(l.Title.X, l.Title.Y, "Dice Roller", titleScale, ui2d.ColorText)
	total := fmt.Sprintf("Total: %d", view.Total())
	tw, _ := c.Renderer().MeasureText(total, bodyScale)
	c.Text(l.Total.X+l.Total.W-tw, l.Total.Y+8, total, bodyScale, ui2d.ColorText)
	c.Text(l.Subtitle.X, l.Subtitle.Y, "Click on a die to exclude it from rolling", smallScale, ui2d.ColorTextDim)

	for i, d := range view.Dice {
		style := ui2d.DieStyle{
			Color:    toUIColor(d.Color),
			Pips:     dice.PipGrid(d.Value),
			Excluded: d.Excluded,
		}
		if c.DieFace("die:"+d.ID, l.Dice[i], style) {
			dispatch(states.ToggleDie{ID: d.ID})
		}
	}

	if view.Rolling {
		c.ButtonDisabled(l.Roll, "Rolling...")
	} else if c.Button("roll", l.Roll, "Roll All Dice", ui2d.ButtonPrimary) {
		dispatch(states.RollAll{})
	}
	if c.Button("reset", l.Reset, "Reset All", ui2d.ButtonSecondary) {
		dispatch(states.ResetAll{})
	}

	b.renderSettings(l, view, dispatch)
}

func (b *UI2DBackend) renderSettings(l Layout, view states.TableView, dispatch Dispatch) {
	c := b.ctx
	r := c.Renderer()
	r.DrawPanel(l.Panel.X, l.Panel.Y, l.Panel.W, l.Panel.H, ui2d.ColorPanelBg, ui2d.ColorPanelBorder)

	c.Text(l.CountLabel.X, l.CountLabel.Y, "Number of Dice", bodyScale, ui2d.ColorText)
	if view.Count <= dice.MinDice {
		c.ButtonDisabled(l.Minus, "-")
	} else if c.Button("count-", l.Minus, "-", ui2d.ButtonRound) {
		dispatch(states.StepCount{Delta: -1})
	}
	c.TextCentered(l.CountValue, fmt.Sprint(view.Count), countScale, ui2d.ColorText)
	if view.Count >= dice.MaxDice {
		c.ButtonDisabled(l.Plus, "+")
	} else if c.Button("count+", l.Plus, "+", ui2d.ButtonRound) {
		dispatch(states.StepCount{Delta: 1})
	}
	c.Text(l.Bounds.X, l.Bounds.Y, fmt.Sprintf("Min %d / Max %d", dice.MinDice, dice.MaxDice), smallScale, ui2d.ColorTextDim)

	c.Text(l.ColorsLabel.X, l.ColorsLabel.Y, "Dice Colors", bodyScale, ui2d.ColorText)
	for i, col := range view.Palette {
		if c.Swatch("swatch:"+col.Name, l.Swatches[i], toUIColor(col), view.IsSelected(col)) {
			dispatch(states.ToggleColor{Color: col})
		}
	}
	hint := fmt.Sprintf("Pick up to %d colors (distributed evenly)", min(view.Count, len(view.Palette)))
	c.Text(l.Hint.X, l.Hint.Y, hint, smallScale, ui2d.ColorTextDim)
}

func toUIColor(c dice.Color) ui2d.Color {
	return ui2d.RGB(c.RGB())
}
