// Package game sequences the screens of a play session and drives the
// movement engine once per step.
package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/core/gamestate"
	"chosenoffset.com/slidey/internal/progression"
	"chosenoffset.com/slidey/internal/render"
	"chosenoffset.com/slidey/internal/ui/hud"
	"chosenoffset.com/slidey/internal/ui/menu"
	"chosenoffset.com/slidey/internal/world/levels"
)

// Manager handles the overall game state, including menu and gameplay. It
// implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	MainMenu     *menu.MainMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager

	cfg      *config.Config
	catalog  *levels.Catalog
	audio    Audio
	log      zerolog.Logger
	machine  *gamestate.Machine
	progress *progression.Controller
	sprites  *spriteSet

	splash  *gamestate.Timer
	card    *gamestate.Timer
	loadErr error
	err     error
}

// NewManager creates a new game manager in the Splash state.
func NewManager(opts Options) (*Manager, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = levels.Builtin()
	}
	if opts.Input == nil {
		return nil, errors.New("game: input manager is required")
	}

	progress, err := progression.New(catalog.Count())
	if err != nil {
		return nil, fmt.Errorf("invalid level catalog: %w", err)
	}

	sink := opts.Audio
	if sink == nil {
		sink = &silentAudio{musicOn: true}
	}

	m := &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		MainMenu:     menu.NewMainMenu(opts.Renderer, cfg.Window.Width, cfg.Window.Height),
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		cfg:          cfg,
		catalog:      catalog,
		audio:        sink,
		log:          opts.Logger,
		machine:      gamestate.NewMachine(gamestate.Splash),
		progress:     progress,
		sprites:      &spriteSet{},
		splash:       gamestate.NewTimer(cfg.Timers.SplashSeconds),
		card:         gamestate.NewTimer(cfg.Timers.LevelCardSeconds),
	}

	m.registerHooks()
	m.machine.Start()
	return m, nil
}

func (m *Manager) registerHooks() {
	for _, s := range []gamestate.State{gamestate.Splash, gamestate.Menu, gamestate.GameSetup, gamestate.GamePlay, gamestate.GameCompleted} {
		m.machine.OnEnter(s, func(from, to gamestate.State) {
			m.log.Debug().Str("from", from.String()).Str("state", to.String()).Msg("state changed")
		})
	}

	m.machine.OnEnter(gamestate.Splash, func(_, _ gamestate.State) {
		m.splash.Reset()
	})

	m.machine.OnEnter(gamestate.Menu, func(_, _ gamestate.State) {
		m.progress.Reset()
		m.MainMenu.Reset()
		m.Game = nil
		m.audio.ResumeMusic()
	})

	m.machine.OnEnter(gamestate.GameSetup, func(_, _ gamestate.State) {
		if m.progress.Completed() {
			m.Game = nil
			m.request(gamestate.GameCompleted)
			return
		}
		m.loadLevel(m.progress.Current())
	})

	m.machine.OnExit(gamestate.GameSetup, func(_, _ gamestate.State) {
		m.loadErr = nil
	})

	m.machine.OnEnter(gamestate.GamePlay, func(_, _ gamestate.State) {
		m.log.Info().Int("level_number", m.Game.Level).Int("potions", m.Game.World.Remaining()).Msg("level started")
	})

	m.machine.OnEnter(gamestate.GameCompleted, func(_, _ gamestate.State) {
		m.Game = nil
		m.audio.PauseMusic()
		m.log.Info().Int("levels", m.progress.Count()).Msg("game completed")
	})
}

// loadLevel builds the tile map for a level. A malformed descriptor leaves
// the manager on the level card with the diagnostic.
func (m *Manager) loadLevel(level int) {
	m.Game = nil
	m.card.Reset()

	tiles, err := m.catalog.Build(level, m.cfg.Grid.Width, m.cfg.Grid.Height)
	if err != nil {
		if errors.Is(err, levels.ErrOutOfRange) {
			m.fail(err)
			return
		}
		m.loadErr = err
		m.log.Error().Err(err).Int("level_number", level).Msg("failed to load level")
		return
	}

	m.Game = newGame(level, tiles, m.cfg, m.Renderer, m.sprites)
	m.Game.GameHUD.SetStatus(hud.Status{
		Level:     level,
		Count:     m.catalog.Count(),
		Remaining: m.Game.World.Remaining(),
		MusicOn:   m.audio.MusicOn(),
	})
	m.log.Info().Int("level_number", level).Str("source", m.catalog.Name(level)).Msg("level loaded")
}

// request schedules a transition; a rejected one is a programming error.
func (m *Manager) request(next gamestate.State) {
	if err := m.machine.Request(next); err != nil {
		m.fail(err)
	}
}

func (m *Manager) fail(err error) {
	if m.err == nil {
		m.log.Error().Err(err).Str("state", m.machine.Current().String()).Msg("game error")
		m.err = err
	}
}

// State returns the active game state.
func (m *Manager) State() gamestate.State {
	return m.machine.Current()
}

// Level returns the current level number.
func (m *Manager) Level() int {
	return m.progress.Current()
}

// LevelCount returns the number of levels in the catalog.
func (m *Manager) LevelCount() int {
	return m.catalog.Count()
}

// CardLine returns the subtitle of the level card.
func (m *Manager) CardLine() string {
	if m.progress.IsFinal() {
		return "Final level!"
	}
	return "Get ready!"
}

// LoadError returns the diagnostic of a level that failed to build.
func (m *Manager) LoadError() error {
	return m.loadErr
}

// Update runs one step: apply the pending transition, then run the active
// state. It returns render.ErrQuit when the player quits from the menu.
func (m *Manager) Update() error {
	m.machine.Apply()
	if m.err != nil {
		return m.err
	}

	dt := m.cfg.StepSeconds()
	in := m.InputMgr

	switch m.machine.Current() {
	case gamestate.Splash:
		if m.splash.Tick(dt) || in.IsKeyJustPressed(render.KeyEnter) {
			m.request(gamestate.Menu)
		}

	case gamestate.Menu:
		switch m.MainMenu.Update(in) {
		case menu.ActionNewGame:
			m.request(gamestate.GameSetup)
		case menu.ActionQuit:
			m.log.Info().Msg("quit from menu")
			return render.ErrQuit
		}

	case gamestate.GameSetup:
		if _, pending := m.machine.Pending(); pending {
			break
		}
		if m.loadErr != nil {
			if quitPressed(in) {
				m.request(gamestate.Menu)
			}
			break
		}
		if m.Game != nil && m.card.Tick(dt) {
			m.request(gamestate.GamePlay)
		}

	case gamestate.GamePlay:
		m.updatePlay(dt)

	case gamestate.GameCompleted:
		if in.IsKeyJustPressed(render.KeyEnter) || in.IsKeyJustPressed(render.KeySpace) {
			m.request(gamestate.Menu)
		}
	}

	return m.err
}

func (m *Manager) updatePlay(dt float64) {
	in := m.InputMgr

	if quitPressed(in) {
		m.request(gamestate.Menu)
		return
	}
	if in.IsKeyJustPressed(render.KeyM) {
		on := m.audio.ToggleMusic()
		m.log.Debug().Bool("music", on).Msg("music toggled")
	}

	ev := m.Game.Step(ReadInput(in), dt, m.catalog.Count(), m.audio.MusicOn())

	if ev.Teleported {
		m.audio.Play(audio.SoundTeleport)
	}
	if ev.Collected > 0 {
		m.audio.Play(audio.SoundPotion)
		m.log.Debug().Int("level_number", m.Game.Level).Int("potions", m.Game.World.Remaining()).Msg("potion collected")
	}
	if !ev.LevelCleared {
		return
	}

	m.audio.Play(audio.SoundLevelClear)
	cleared := m.Game.Level
	next, completed := m.progress.Advance()
	m.log.Info().Int("level_number", cleared).Bool("completed", completed).Int("next", next).Msg("level cleared")
	m.request(gamestate.GameSetup)
}

func quitPressed(in render.InputManager) bool {
	return in.IsKeyJustPressed(render.KeyEscape) || in.IsKeyJustPressed(render.KeyQ)
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.machine.Current() {
	case gamestate.Splash:
		hud.DrawCard(m.Renderer, screen, "SLIDEY", "Collect every potion. Slide until you hit a wall.")
	case gamestate.Menu:
		m.MainMenu.Draw(screen)
	case gamestate.GameSetup:
		if m.loadErr != nil {
			drawLoadError(m.Renderer, screen, m.progress.Current(), m.loadErr)
			return
		}
		hud.DrawCard(m.Renderer, screen, hud.LevelTitle(m.progress.Current(), m.catalog.Count()), m.CardLine())
	case gamestate.GamePlay:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	case gamestate.GameCompleted:
		hud.DrawCard(m.Renderer, screen, "Congratulations!",
			fmt.Sprintf("You cleared all %d levels", m.catalog.Count()),
			"Press ENTER to return to the menu")
	default:
		screen.Fill(color.Black)
	}
}

// Layout keeps the logical screen at the configured size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
