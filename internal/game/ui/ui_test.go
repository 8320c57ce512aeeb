package ui

import (
	"reflect"
	"testing"

	"github.com/Faultbox/dicebox/internal/engine/ui2d"
	"github.com/Faultbox/dicebox/internal/game/states"
)

func overlaps(a, b ui2d.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func inside(outer, r ui2d.Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.X+r.W <= outer.X+outer.W && r.Y+r.H <= outer.Y+outer.H
}

func TestTableLayoutDiceRows(t *testing.T) {
	tests := []struct {
		count int
		rows  int
	}{
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
	}

	for _, tt := range tests {
		l := TableLayout(960, 720, tt.count, 10)
		if len(l.Dice) != tt.count {
			t.Fatalf("count %d: got %d dice rects", tt.count, len(l.Dice))
		}
		rows := map[float32]bool{}
		for _, r := range l.Dice {
			rows[r.Y] = true
		}
		if len(rows) != tt.rows {
			t.Errorf("count %d: rows = %d, want %d", tt.count, len(rows), tt.rows)
		}
		for i := range l.Dice {
			for j := i + 1; j < len(l.Dice); j++ {
				if overlaps(l.Dice[i], l.Dice[j]) {
					t.Errorf("count %d: dice %d and %d overlap", tt.count, i, j)
				}
			}
		}
	}
}

func TestTableLayoutRowsCentered(t *testing.T) {
	l := TableLayout(960, 720, 7, 10)
	center := func(a, b ui2d.Rect) float32 {
		return (a.X + b.X + b.W) / 2
	}
	first := center(l.Dice[0], l.Dice[4])
	second := center(l.Dice[5], l.Dice[6])
	if first != second || first != 480 {
		t.Errorf("row centers = %v, %v, want 480", first, second)
	}
}

func TestTableLayoutFitsScreen(t *testing.T) {
	screen := ui2d.Rect{W: 960, H: 720}
	l := TableLayout(screen.W, screen.H, 10, 10)

	for name, r := range map[string]ui2d.Rect{
		"title": l.Title, "roll": l.Roll, "reset": l.Reset, "panel": l.Panel,
	} {
		if !inside(screen, r) {
			t.Errorf("%s %+v outside screen", name, r)
		}
	}
	if overlaps(l.Roll, l.Reset) {
		t.Error("roll and reset buttons overlap")
	}
	if len(l.Swatches) != 10 {
		t.Fatalf("swatches = %d", len(l.Swatches))
	}
	for i, r := range l.Swatches {
		if !inside(l.Panel, r) {
			t.Errorf("swatch %d %+v outside panel %+v", i, r, l.Panel)
		}
	}
	for _, d := range l.Dice {
		if overlaps(d, l.Roll) || overlaps(d, l.Panel) {
			t.Errorf("die %+v overlaps controls", d)
		}
	}
}

func TestTableLayoutNarrowScreen(t *testing.T) {
	l := TableLayout(400, 600, 10, 10)
	for i, r := range l.Dice {
		if r.X < 0 || r.X+r.W > 400 {
			t.Errorf("die %d %+v off screen", i, r)
		}
	}
	last := l.Swatches[9]
	if last.X+last.W > l.Panel.X+l.Panel.W+0.01 {
		t.Errorf("last swatch %+v past panel edge", last)
	}
}

func TestKeyActions(t *testing.T) {
	tests := []struct {
		name string
		in   ui2d.InputState
		want []interface{}
	}{
		{"none", ui2d.InputState{}, nil},
		{"space rolls", ui2d.InputState{KeySpace: true}, []interface{}{states.RollAll{}}},
		{"reset", ui2d.InputState{KeyReset: true}, []interface{}{states.ResetAll{}}},
		{"plus", ui2d.InputState{KeyPlus: true}, []interface{}{states.StepCount{Delta: 1}}},
		{"minus", ui2d.InputState{KeyMinus: true}, []interface{}{states.StepCount{Delta: -1}}},
		{"digit 1", ui2d.InputState{KeyDigit: 1}, []interface{}{states.ToggleDieAt{Index: 0}}},
		{"digit 0 is tenth", ui2d.InputState{KeyDigit: 10}, []interface{}{states.ToggleDieAt{Index: 9}}},
		{"escape quits", ui2d.InputState{KeyEscape: true}, []interface{}{states.Quit{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyActions(&tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeyActions() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestUI2DBackendIsUIBackend(t *testing.T) {
	var b UIBackend = (*UI2DBackend)(nil)
	if b == nil {
		t.Fatal("typed nil backend should be a non-nil UIBackend")
	}
}
