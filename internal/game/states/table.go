package states

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dicebox/internal/dice"
	"github.com/Faultbox/dicebox/internal/logger"
)

// Sound receives roll animation cues. Implementations must not block.
type Sound interface {
	PlayRattle(strength float64)
	PlaySettle()
}

// TableStateConfig contains configuration for the table state.
type TableStateConfig struct {
	Count        int
	Colors       []dice.Color
	Source       dice.Source
	RollTicks    int
	RollInterval time.Duration
	Sound        Sound
}

// TableView is what front-ends render each frame.
type TableView struct {
	dice.Snapshot
	Rolling bool
	Palette []dice.Color
}

// TableState is the dice table screen.
type TableState struct {
	config TableStateConfig
	log    *zap.Logger

	tray   *dice.Tray
	roller *dice.Roller

	unsubscribe func()
	quit        bool
}

// NewTableState creates the table with its tray and roller.
func NewTableState(cfg TableStateConfig) *TableState {
	if cfg.Source == nil {
		cfg.Source = dice.NewSource(0)
	}
	tray := dice.NewTray(cfg.Source, cfg.Count, cfg.Colors)
	return &TableState{
		config: cfg,
		log:    logger.Named("table"),
		tray:   tray,
		roller: dice.NewRoller(tray, cfg.RollTicks, cfg.RollInterval),
	}
}

// Enter is called when entering this state.
func (s *TableState) Enter() error {
	ticks := s.config.RollTicks
	if ticks <= 0 {
		ticks = dice.DefaultRollTicks
	}
	s.roller.OnTick(func(remaining int) {
		if s.config.Sound != nil {
			s.config.Sound.PlayRattle(float64(remaining) / float64(ticks))
		}
	})
	s.roller.OnSettle(func(snap dice.Snapshot) {
		s.log.Info("roll settled",
			zap.Int("total", snap.Total()),
			zap.Ints("faces", faces(snap.Dice)),
		)
		if s.config.Sound != nil {
			s.config.Sound.PlaySettle()
		}
	})
	s.unsubscribe = s.tray.Subscribe(func(snap dice.Snapshot) {
		if !s.roller.Rolling() {
			s.log.Debug("tray changed",
				zap.Int("count", snap.Count),
				zap.Stringers("colors", snap.Selected),
			)
		}
	})

	snap := s.tray.Snapshot()
	s.log.Info("entering table",
		zap.Int("dice", snap.Count),
		zap.Stringers("colors", snap.Selected),
	)
	return nil
}

// Exit cancels any running roll and detaches observers.
func (s *TableState) Exit() error {
	s.roller.Stop()
	s.roller.OnTick(nil)
	s.roller.OnSettle(nil)
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	return nil
}

// Update advances the roll animation.
func (s *TableState) Update(dt float64) error {
	s.roller.Update(time.Duration(dt * float64(time.Second)))
	return nil
}

// HandleInput applies one of the action types in this package.
func (s *TableState) HandleInput(event interface{}) error {
	switch e := event.(type) {
	case RollAll:
		if !s.roller.RollAll() {
			s.log.Debug("roll ignored, already rolling")
		}
	case ResetAll:
		s.tray.ResetAll()
	case SetCount:
		s.tray.SetCount(e.N)
	case StepCount:
		s.tray.SetCount(s.tray.Count() + e.Delta)
	case ToggleColor:
		s.tray.ToggleColor(e.Color)
	case ToggleDie:
		s.tray.ToggleExclusion(e.ID)
	case ToggleDieAt:
		s.tray.ToggleExclusionAt(e.Index)
	case Quit:
		s.quit = true
	default:
		return fmt.Errorf("table: unsupported input %T", event)
	}
	return nil
}

// View returns the current state for rendering.
func (s *TableState) View() TableView {
	return TableView{
		Snapshot: s.tray.Snapshot(),
		Rolling:  s.roller.Rolling(),
		Palette:  dice.Palette(),
	}
}

// Subscribe registers fn to run after every tray change.
func (s *TableState) Subscribe(fn func(dice.Snapshot)) func() {
	return s.tray.Subscribe(fn)
}

// QuitRequested reports whether a Quit action was received.
func (s *TableState) QuitRequested() bool {
	return s.quit
}

func faces(ds []dice.Die) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[i] = d.Value
	}
	return out
}
