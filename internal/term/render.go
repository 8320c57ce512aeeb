// Package term is the terminal front-end of the dice table.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/game/states"
)

// Die box size in cells, border included.
const (
	dieW       = 9
	dieH       = 5
	dieGap     = 2
	dicePerRow = 5
	swatchW    = 4
	originX    = 2
)

const pipRune = '●'

var (
	styleText   = tcell.StyleDefault
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleButton = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(79, 70, 229))
	styleAlt    = tcell.StyleDefault.Reverse(true)
)

type region struct {
	x, y, w, h int
	action     interface{}
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Renderer draws a TableView onto a tcell screen and remembers where the
// clickable widgets ended up.
type Renderer struct {
	screen  tcell.Screen
	regions []region
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the full table. The caller is responsible for Show.
func (r *Renderer) Draw(view states.TableView) {
	r.screen.Clear()
	r.regions = r.regions[:0]

	y := 1
	r.text(originX, y, "Dice Roller", styleTitle)
	r.text(originX+20, y, fmt.Sprintf("Total: %d", view.Total()), styleText)
	y++
	r.text(originX, y, "Click on a die to exclude it from rolling", styleDim)
	y += 2

	for i, d := range view.Dice {
		col, row := i%dicePerRow, i/dicePerRow
		x := originX + col*(dieW+dieGap)
		dy := y + row*(dieH+2)
		r.die(x, dy, d)
		r.text(x+dieW/2-1, dy+dieH, dieKey(i), styleDim)
		r.regions = append(r.regions, region{x, dy, dieW, dieH, states.ToggleDie{ID: d.ID}})
	}
	rows := (len(view.Dice) + dicePerRow - 1) / dicePerRow
	y += rows * (dieH + 2)

	x := originX
	if view.Rolling {
		x = r.button(x, y, " Rolling... ", styleDim, nil)
	} else {
		x = r.button(x, y, " Roll All Dice ", styleButton, states.RollAll{})
	}
	r.button(x+2, y, " Reset All ", styleAlt, states.ResetAll{})
	y += 2

	r.text(originX, y, "Number of Dice", styleTitle)
	y++
	x = r.button(originX, y, " - ", styleAlt, states.StepCount{Delta: -1})
	x = r.text(x+1, y, fmt.Sprintf("%2d", view.Count), styleTitle)
	x = r.button(x+1, y, " + ", styleAlt, states.StepCount{Delta: 1})
	r.text(x+2, y, fmt.Sprintf("Min %d / Max %d", dice.MinDice, dice.MaxDice), styleDim)
	y += 2

	r.text(originX, y, "Dice Colors", styleTitle)
	y++
	for i, c := range view.Palette {
		sx := originX + i*(swatchW+1)
		r.swatch(sx, y, c, view.IsSelected(c))
		r.regions = append(r.regions, region{sx, y, swatchW, 1, states.ToggleColor{Color: c}})
	}
	y++
	hint := fmt.Sprintf("Pick up to %d colors (distributed evenly)", min(view.Count, len(view.Palette)))
	r.text(originX, y, hint, styleDim)
	y += 2

	r.text(originX, y, "space roll  r reset  +/- dice  1-0 exclude  F1-F10 colors  q quit", styleDim)
}

// HitTest returns the action under cell (x, y), if any.
func (r *Renderer) HitTest(x, y int) (interface{}, bool) {
	for _, reg := range r.regions {
		if reg.contains(x, y) && reg.action != nil {
			return reg.action, true
		}
	}
	return nil, false
}

func (r *Renderer) die(x, y int, d dice.Die) {
	bg := tcell.GetColor(d.Color.Hex)
	face := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	if d.Excluded {
		face = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorSilver)
	}

	for row := 0; row < dieH; row++ {
		for col := 0; col < dieW; col++ {
			r.screen.SetContent(x+col, y+row, boxRune(col, row), nil, face)
		}
	}

	grid := dice.PipGrid(d.Value)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if grid[row][col] {
				r.screen.SetContent(x+2+col*2, y+1+row, pipRune, nil, face)
			}
		}
	}
	if d.Excluded {
		r.screen.SetContent(x+dieW-1, y, '✗', nil, face.Bold(true))
	}
}

func boxRune(col, row int) rune {
	last, bottom := col == dieW-1, row == dieH-1
	switch {
	case row == 0 && col == 0:
		return '╭'
	case row == 0 && last:
		return '╮'
	case bottom && col == 0:
		return '╰'
	case bottom && last:
		return '╯'
	case row == 0 || bottom:
		return '─'
	case col == 0 || last:
		return '│'
	}
	return ' '
}

func (r *Renderer) swatch(x, y int, c dice.Color, selected bool) {
	style := tcell.StyleDefault.Background(tcell.GetColor(c.Hex)).Foreground(tcell.ColorWhite)
	for i := 0; i < swatchW; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	if selected {
		r.screen.SetContent(x+swatchW/2-1, y, '✓', nil, style.Bold(true))
	}
}

func (r *Renderer) button(x, y int, label string, style tcell.Style, action interface{}) int {
	end := r.text(x, y, label, style)
	if action != nil {
		r.regions = append(r.regions, region{x, y, end - x, 1, action})
	}
	return end
}

// text draws s at (x, y) and returns the column after it.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func dieKey(i int) string {
	return fmt.Sprintf("[%d]", (i+1)%10)
}
