package ui

import "github.com/Faultbox/dicebox/internal/engine/ui2d"

const (
	dicePerRow  = 5
	maxDieSize  = 96
	dieGap      = 16
	margin      = 24
	maxContentW = 720

	buttonH      = 44
	rollButtonW  = 200
	resetButtonW = 140
	buttonGap    = 12

	panelPad    = 20
	stepperSize = 40
	swatchSize  = 32
	swatchGap   = 12
)

// Layout holds the screen rectangles of every table widget.
type Layout struct {
	Title    ui2d.Rect
	Subtitle ui2d.Rect
	Total    ui2d.Rect

	Dice []ui2d.Rect

	Roll  ui2d.Rect
	Reset ui2d.Rect

	Panel       ui2d.Rect
	CountLabel  ui2d.Rect
	Minus       ui2d.Rect
	CountValue  ui2d.Rect
	Plus        ui2d.Rect
	Bounds      ui2d.Rect
	ColorsLabel ui2d.Rect
	Swatches    []ui2d.Rect
	Hint        ui2d.Rect
}

// TableLayout arranges count dice and paletteSize swatches on a w x h screen.
// Dice wrap five per row and each row is centered; spare height is split
// above and below.
func TableLayout(w, h float32, count, paletteSize int) Layout {
	var l Layout

	cw := w - 2*margin
	if cw > maxContentW {
		cw = maxContentW
	}
	if cw < 0 {
		cw = 0
	}
	x0 := (w - cw) / 2
	y := float32(margin)

	l.Title = ui2d.Rect{X: x0, Y: y, W: cw * 0.7, H: 32}
	l.Total = ui2d.Rect{X: x0 + cw*0.7, Y: y, W: cw * 0.3, H: 32}
	y += 40
	l.Subtitle = ui2d.Rect{X: x0, Y: y, W: cw, H: 16}
	y += 16 + margin

	size := float32(maxDieSize)
	if fit := (cw - (dicePerRow-1)*dieGap) / dicePerRow; fit < size {
		size = fit
	}
	l.Dice = make([]ui2d.Rect, 0, count)
	for start := 0; start < count; start += dicePerRow {
		n := min(dicePerRow, count-start)
		rowW := float32(n)*size + float32(n-1)*dieGap
		x := x0 + (cw-rowW)/2
		for i := 0; i < n; i++ {
			l.Dice = append(l.Dice, ui2d.Rect{X: x + float32(i)*(size+dieGap), Y: y, W: size, H: size})
		}
		y += size + dieGap
	}
	y += 8

	pairW := float32(rollButtonW + buttonGap + resetButtonW)
	bx := x0 + (cw-pairW)/2
	l.Roll = ui2d.Rect{X: bx, Y: y, W: rollButtonW, H: buttonH}
	l.Reset = ui2d.Rect{X: bx + rollButtonW + buttonGap, Y: y, W: resetButtonW, H: buttonH}
	y += buttonH + margin

	panelY := y
	inner := cw - 2*panelPad
	px := x0 + panelPad
	y += panelPad

	l.CountLabel = ui2d.Rect{X: px, Y: y, W: inner, H: 16}
	y += 16 + 10
	l.Minus = ui2d.Rect{X: px, Y: y, W: stepperSize, H: stepperSize}
	l.CountValue = ui2d.Rect{X: px + stepperSize + 8, Y: y, W: 64, H: stepperSize}
	l.Plus = ui2d.Rect{X: px + stepperSize + 8 + 64 + 8, Y: y, W: stepperSize, H: stepperSize}
	y += stepperSize + 6
	l.Bounds = ui2d.Rect{X: px, Y: y, W: stepperSize*2 + 80, H: 14}
	y += 14 + 18

	l.ColorsLabel = ui2d.Rect{X: px, Y: y, W: inner, H: 16}
	y += 16 + 10

	sw := float32(swatchSize)
	if paletteSize > 0 {
		if fit := (inner - float32(paletteSize-1)*swatchGap) / float32(paletteSize); fit < sw {
			sw = fit
		}
	}
	l.Swatches = make([]ui2d.Rect, paletteSize)
	for i := range l.Swatches {
		l.Swatches[i] = ui2d.Rect{X: px + float32(i)*(sw+swatchGap), Y: y, W: sw, H: sw}
	}
	y += sw + 10
	l.Hint = ui2d.Rect{X: px, Y: y, W: inner, H: 14}
	y += 14 + panelPad

	l.Panel = ui2d.Rect{X: x0, Y: panelY, W: cw, H: y - panelY}

	if slack := h - y - margin; slack > 0 {
		l.shift(slack / 2)
	}
	return l
}

// shift moves every rectangle down by dy.
func (l *Layout) shift(dy float32) {
	for _, r := range []*ui2d.Rect{
		&l.Title, &l.Subtitle, &l.Total, &l.Roll, &l.Reset,
		&l.Panel, &l.CountLabel, &l.Minus, &l.CountValue, &l.Plus,
		&l.Bounds, &l.ColorsLabel, &l.Hint,
	} {
		r.Y += dy
	}
	for i := range l.Dice {
		l.Dice[i].Y += dy
	}
	for i := range l.Swatches {
		l.Swatches[i].Y += dy
	}
}
