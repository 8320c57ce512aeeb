package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/dicebox/internal/game"
	"github.com/Faultbox/dicebox/internal/logger"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// App runs the dice table in a terminal.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *Renderer
	log      *zap.Logger

	mouseDown bool
}

// NewApp creates an app on an initialized screen.
func NewApp(screen tcell.Screen, g *game.Game) *App {
	return &App{
		screen:   screen,
		game:     g,
		renderer: NewRenderer(screen),
		log:      logger.Named("term"),
	}
}

// Run drives the loop until the user quits or ctx is done. All game access
// happens on the calling goroutine; events arrive through a channel.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			a.handleEvent(ev)
			if a.game.QuitRequested() {
				a.log.Info("quit requested")
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.game.Update(dt); err != nil {
				return err
			}
			a.draw()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if action, ok := KeyAction(ev); ok {
			a.game.Dispatch(action)
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !a.mouseDown
		a.mouseDown = down
		if !pressed {
			return
		}
		x, y := ev.Position()
		if action, ok := a.renderer.HitTest(x, y); ok {
			a.game.Dispatch(action)
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) draw() {
	a.renderer.Draw(a.game.View())
	a.screen.Show()
}
