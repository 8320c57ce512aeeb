package game

import (
	"testing"
	"time"

	"github.com/Faultbox/dicebox/internal/config"
	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/game/states"
)

func newGame(t *testing.T, d config.DiceConfig) *Game {
	t.Helper()
	g, err := New(Options{Dice: d})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestNewUsesDiceConfig(t *testing.T) {
	g := newGame(t, config.DiceConfig{
		Count:  6,
		Colors: []string{"red", "nope", "green"},
		Seed:   42,
	})

	v := g.View()
	if v.Count != 6 || len(v.Dice) != 6 {
		t.Fatalf("count = %d, dice = %d", v.Count, len(v.Dice))
	}
	if len(v.Selected) != 2 || v.Selected[0].Name != "Red" || v.Selected[1].Name != "Green" {
		t.Errorf("selected = %v", v.Selected)
	}
	if len(v.Palette) != 10 {
		t.Errorf("palette size = %d", len(v.Palette))
	}
}

func TestNewDefaultsToBlue(t *testing.T) {
	g := newGame(t, config.DiceConfig{Count: 3})
	v := g.View()
	if len(v.Selected) != 1 || v.Selected[0] != dice.DefaultColor {
		t.Errorf("selected = %v, want [Blue]", v.Selected)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	cfg := config.DiceConfig{Count: 10, Seed: 99}
	a := newGame(t, cfg).View()
	b := newGame(t, cfg).View()
	for i := range a.Dice {
		if a.Dice[i].Value != b.Dice[i].Value || a.Dice[i].ID != b.Dice[i].ID {
			t.Fatalf("die %d differs between seeded games", i)
		}
	}
}

func TestDispatchAndRoll(t *testing.T) {
	g := newGame(t, config.DiceConfig{
		Count:        2,
		Seed:         1,
		RollTicks:    2,
		RollInterval: 20 * time.Millisecond,
	})

	var notified int
	unsub := g.Subscribe(func(dice.Snapshot) { notified++ })
	defer unsub()

	g.Dispatch(states.RollAll{})
	if !g.View().Rolling {
		t.Fatal("expected rolling")
	}
	if err := g.Update(0.05); err != nil {
		t.Fatal(err)
	}
	if g.View().Rolling {
		t.Error("expected settled after 50ms with 2x20ms ticks")
	}
	if notified != 2 {
		t.Errorf("notified = %d, want 2", notified)
	}
}

func TestDispatchIgnoresUnknownAction(t *testing.T) {
	g := newGame(t, config.DiceConfig{Count: 2})
	before := g.View()
	g.Dispatch(struct{}{})
	if g.View().Count != before.Count {
		t.Error("unknown action changed state")
	}
}

func TestCloseStopsRoll(t *testing.T) {
	g := newGame(t, config.DiceConfig{Count: 3, Seed: 5})
	g.Dispatch(states.RollAll{})

	before := g.View().Dice
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	_ = g.Update(1)
	g.Dispatch(states.ResetAll{})

	after := g.View().Dice
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("die %d changed after Close", i)
		}
	}
}
