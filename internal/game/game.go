// Package game owns the dice table and drives it from the front-end loop.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/dicebox/internal/config"
	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/game/states"
	"github.com/Faultbox/dicebox/internal/logger"
)

// Options configures a Game.
type Options struct {
	Dice config.DiceConfig

	// Source overrides the random source built from Dice.Seed.
	Source dice.Source

	// Sound receives roll cues. Nil runs silent.
	Sound states.Sound
}

// Game is the application root. It is driven from a single loop goroutine.
type Game struct {
	states *states.Manager
	table  *states.TableState
	log    *zap.Logger
	closed bool
}

// New creates a game with the table as its first state.
func New(opts Options) (*Game, error) {
	log := logger.Named("game")

	colors, unknown := opts.Dice.Palette()
	for _, name := range unknown {
		log.Warn("ignoring unknown dice color", zap.String("color", name))
	}

	src := opts.Source
	if src == nil {
		src = dice.NewSource(opts.Dice.Seed)
	}

	g := &Game{
		states: states.NewManager(),
		log:    log,
	}
	g.table = states.NewTableState(states.TableStateConfig{
		Count:        opts.Dice.Count,
		Colors:       colors,
		Source:       src,
		RollTicks:    opts.Dice.RollTicks,
		RollInterval: opts.Dice.RollInterval,
		Sound:        opts.Sound,
	})
	g.states.Change(g.table)

	// Enter the table immediately so the first frame has a view.
	if err := g.states.Update(0); err != nil {
		return nil, fmt.Errorf("enter table: %w", err)
	}
	return g, nil
}

// Dispatch forwards a user action to the current state.
func (g *Game) Dispatch(action interface{}) {
	if g.closed {
		return
	}
	if err := g.states.HandleInput(action); err != nil {
		g.log.Warn("input rejected", zap.Error(err))
	}
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64) error {
	if g.closed {
		return nil
	}
	return g.states.Update(dt)
}

// View returns the table view for rendering.
func (g *Game) View() states.TableView {
	return g.table.View()
}

// Subscribe registers fn to run after every tray change.
func (g *Game) Subscribe(fn func(dice.Snapshot)) func() {
	return g.table.Subscribe(fn)
}

// QuitRequested reports whether the user asked to quit.
func (g *Game) QuitRequested() bool {
	return g.table.QuitRequested()
}

// Close exits the current state, cancelling any roll in progress.
func (g *Game) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	return g.states.Close()
}
