// Package tui plays the game in a terminal with tcell, one character per
// grid cell.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"chosenoffset.com/slidey/internal/game"
	"chosenoffset.com/slidey/internal/render"
)

// App runs the terminal game loop.
type App struct {
	screen  tcell.Screen
	manager *game.Manager
	input   *Input
	tick    time.Duration
	log     zerolog.Logger
}

// New creates an app. The manager must have been built with input as its
// InputManager.
func New(screen tcell.Screen, manager *game.Manager, input *Input, tick time.Duration, log zerolog.Logger) *App {
	return &App{
		screen:  screen,
		manager: manager,
		input:   input,
		tick:    tick,
		log:     log,
	}
}

// Run steps the game once per tick until the player quits, Ctrl+C is pressed
// or ctx is cancelled. Key events are gathered on a separate goroutine and
// only applied at a step boundary.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.tick)
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

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			done, err := a.Step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// Step runs one game step and redraws. It reports true when the player quit.
func (a *App) Step() (bool, error) {
	a.input.BeginFrame()
	if err := a.manager.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return true, nil
		}
		return false, err
	}
	Draw(a.screen, a.manager)
	return false, nil
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.log.Info().Msg("interrupted")
			return false
		}
		a.input.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
