package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/core/gamestate"
	"chosenoffset.com/slidey/internal/core/geom"
	"chosenoffset.com/slidey/internal/movement"
	"chosenoffset.com/slidey/internal/render"
	"chosenoffset.com/slidey/internal/world/levels"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

const (
	levelOne = "#####\n#p.o#\n#t..#\n#####"
	levelTwo = "#####\n#o.p#\n#..t#\n#####"
)

// fakeInput reports the keys set for the current step as both just pressed
// and just released.
type fakeInput struct {
	keys map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool      { return f.keys[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool  { return f.keys[k] }
func (f *fakeInput) IsKeyJustReleased(k render.Key) bool { return f.keys[k] }

type fakeAudio struct {
	played  []audio.Sound
	musicOn bool
	paused  bool
}

func (f *fakeAudio) Play(s audio.Sound) bool { f.played = append(f.played, s); return true }
func (f *fakeAudio) ResumeMusic()            { f.paused = !f.musicOn }
func (f *fakeAudio) PauseMusic()             { f.paused = true }
func (f *fakeAudio) MusicOn() bool           { return f.musicOn }
func (f *fakeAudio) ToggleMusic() bool {
	f.musicOn = !f.musicOn
	f.paused = !f.musicOn
	return f.musicOn
}

func (f *fakeAudio) count(s audio.Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height = 5, 4
	cfg.Timers.SplashSeconds = 0.1
	cfg.Timers.LevelCardSeconds = 0
	return cfg
}

type harness struct {
	t     *testing.T
	m     *Manager
	in    *fakeInput
	audio *fakeAudio
}

func newHarness(t *testing.T, descriptors ...string) *harness {
	t.Helper()
	return newHarnessWithConfig(t, testConfig(), descriptors...)
}

func newHarnessWithConfig(t *testing.T, cfg *config.Config, descriptors ...string) *harness {
	t.Helper()
	h := &harness{t: t, in: &fakeInput{}, audio: &fakeAudio{musicOn: true}}
	m, err := NewManager(Options{
		Config:  cfg,
		Catalog: levels.New(descriptors...),
		Input:   h.in,
		Audio:   h.audio,
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	h.m = m
	return h
}

// step runs one update with the given keys held for that step only.
func (h *harness) step(keys ...render.Key) error {
	h.in.keys = make(map[render.Key]bool)
	for _, k := range keys {
		h.in.keys[k] = true
	}
	err := h.m.Update()
	h.in.keys = nil
	return err
}

func (h *harness) mustStep(keys ...render.Key) {
	h.t.Helper()
	if err := h.step(keys...); err != nil {
		h.t.Fatalf("Update failed: %v", err)
	}
}

// runUntil steps with no input until the manager reaches want.
func (h *harness) runUntil(want gamestate.State) {
	h.t.Helper()
	for i := 0; i < 400; i++ {
		if h.m.State() == want {
			return
		}
		h.mustStep()
	}
	h.t.Fatalf("Never reached %s, stuck in %s", want, h.m.State())
}

// startGame goes from the splash screen to playing level 1.
func (h *harness) startGame() {
	h.t.Helper()
	h.runUntil(gamestate.Menu)
	h.mustStep(render.KeyEnter)
	h.runUntil(gamestate.GameSetup)
	h.runUntil(gamestate.GamePlay)
}

// clearLevel slides in dir and waits for the next level setup.
func (h *harness) clearLevel(dir render.Key) {
	h.t.Helper()
	h.mustStep(dir)
	h.runUntil(gamestate.GameSetup)
}

func TestNewManagerRejectsEmptyCatalog(t *testing.T) {
	_, err := NewManager(Options{Catalog: levels.New(), Input: &fakeInput{}, Logger: zerolog.Nop()})
	if err == nil {
		t.Error("Expected error for a catalog without levels")
	}
}

func TestSplashLeadsToMenu(t *testing.T) {
	h := newHarness(t, levelOne)
	if h.m.State() != gamestate.Splash {
		t.Fatalf("Expected splash, got %s", h.m.State())
	}
	h.mustStep()
	if h.m.State() != gamestate.Splash {
		t.Error("Expected splash to last until its timer runs out")
	}
	h.runUntil(gamestate.Menu)
}

func TestNewGameLoadsFirstLevel(t *testing.T) {
	h := newHarness(t, levelOne, levelTwo)
	h.startGame()

	if h.m.Level() != 1 {
		t.Errorf("Expected level 1, got %d", h.m.Level())
	}
	if h.m.Game == nil || h.m.Game.World.Remaining() != 1 {
		t.Fatal("Expected level 1 to be loaded with one potion")
	}
	player, _ := h.m.Game.World.Player()
	if player.Pos != (geom.Point{X: 16, Y: 16}) {
		t.Errorf("Expected player at (16, 16), got %v", player.Pos)
	}
}

func TestFullRunCompletesAndReturnsToMenu(t *testing.T) {
	h := newHarness(t, levelOne, levelTwo)
	h.startGame()

	h.clearLevel(render.KeyRight)
	if h.m.Level() != 2 {
		t.Fatalf("Expected level 2 after clearing level 1, got %d", h.m.Level())
	}
	h.runUntil(gamestate.GamePlay)

	h.clearLevel(render.KeyLeft)
	h.runUntil(gamestate.GameCompleted)
	if h.m.Level() != 2 {
		t.Errorf("Expected level counter to stay at 2, got %d", h.m.Level())
	}
	if h.audio.count(audio.SoundLevelClear) != 2 {
		t.Errorf("Expected two level-clear cues, got %d", h.audio.count(audio.SoundLevelClear))
	}
	if h.audio.count(audio.SoundPotion) != 2 {
		t.Errorf("Expected two potion cues, got %d", h.audio.count(audio.SoundPotion))
	}
	if !h.audio.paused {
		t.Error("Expected music paused on the completion screen")
	}

	// Completion screen waits for the player
	for i := 0; i < 10; i++ {
		h.mustStep()
	}
	if h.m.State() != gamestate.GameCompleted {
		t.Fatalf("Expected to stay on completion screen, got %s", h.m.State())
	}

	h.mustStep(render.KeyEnter)
	h.runUntil(gamestate.Menu)
	if h.m.Level() != 1 {
		t.Errorf("Expected level reset to 1, got %d", h.m.Level())
	}
}

func TestCardLineMarksFinalLevel(t *testing.T) {
	h := newHarness(t, levelOne, levelTwo)
	h.startGame()
	if got := h.m.CardLine(); got != "Get ready!" {
		t.Errorf("Expected %q on level 1, got %q", "Get ready!", got)
	}

	h.clearLevel(render.KeyRight)
	if got := h.m.CardLine(); got != "Final level!" {
		t.Errorf("Expected %q on the last level, got %q", "Final level!", got)
	}
}

func TestQuitDuringPlayResetsProgress(t *testing.T) {
	for _, key := range []render.Key{render.KeyEscape, render.KeyQ} {
		h := newHarness(t, levelOne, levelTwo)
		h.startGame()
		h.clearLevel(render.KeyRight)
		h.runUntil(gamestate.GamePlay)

		h.mustStep(key)
		h.runUntil(gamestate.Menu)
		if h.m.Level() != 1 {
			t.Errorf("key %d: expected level reset to 1, got %d", key, h.m.Level())
		}
		if h.m.Game != nil {
			t.Errorf("key %d: expected level unloaded in the menu", key)
		}
	}
}

func TestTeleportPlaysCue(t *testing.T) {
	h := newHarness(t, levelOne)
	h.startGame()

	h.mustStep(render.KeySpace)
	player, _ := h.m.Game.World.Player()
	if player.Pos != (geom.Point{X: 16, Y: 32}) {
		t.Errorf("Expected player on the teleporter cell, got %v", player.Pos)
	}
	if h.audio.count(audio.SoundTeleport) != 1 {
		t.Error("Expected one teleport cue")
	}
	if h.m.Game.World.PlayerState() != gamestate.PlayerTeleport {
		t.Errorf("Expected teleport player state, got %s", h.m.Game.World.PlayerState())
	}
}

func TestMusicToggle(t *testing.T) {
	h := newHarness(t, levelOne)
	h.startGame()

	h.mustStep(render.KeyM)
	if h.audio.musicOn {
		t.Error("Expected M to switch music off")
	}
	if lines := h.m.Game.GameHUD.Lines(); !strings.Contains(lines[1], "Music: off") {
		t.Errorf("Expected HUD to show music off, got %q", lines[1])
	}
	h.mustStep(render.KeyM)
	if !h.audio.musicOn {
		t.Error("Expected second M to switch music on")
	}
}

func TestMalformedLevelShowsDiagnostic(t *testing.T) {
	h := newHarness(t, "#####\n#p.o\n#t..#\n#####")
	h.startGameExpectingSetup()

	err := h.m.LoadError()
	if !errors.Is(err, tilemap.ErrMalformedDescriptor) {
		t.Fatalf("Expected malformed descriptor error, got %v", err)
	}
	if !strings.Contains(err.Error(), "level 1") || !strings.Contains(err.Error(), "row 1") {
		t.Errorf("Expected diagnostic to name level and row, got %q", err)
	}

	for i := 0; i < 10; i++ {
		h.mustStep()
	}
	if h.m.State() != gamestate.GameSetup {
		t.Fatalf("Expected to stay on the level card, got %s", h.m.State())
	}

	h.mustStep(render.KeyEscape)
	h.runUntil(gamestate.Menu)
	if h.m.LoadError() != nil {
		t.Error("Expected diagnostic cleared after leaving setup")
	}
}

func (h *harness) startGameExpectingSetup() {
	h.t.Helper()
	h.runUntil(gamestate.Menu)
	h.mustStep(render.KeyEnter)
	h.runUntil(gamestate.GameSetup)
}

func TestQuitFromMenu(t *testing.T) {
	h := newHarness(t, levelOne)
	h.runUntil(gamestate.Menu)
	h.mustStep(render.KeyUp) // wraps to Quit

	if err := h.step(render.KeyEnter); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestZeroPotionLevelClearsImmediately(t *testing.T) {
	h := newHarness(t, "#####\n#p..#\n#t..#\n#####")
	h.startGame()

	h.mustStep()
	h.runUntil(gamestate.GameCompleted)
}

func TestCompletionWithDefaultTimers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height = 5, 4

	tests := []struct {
		name        string
		descriptors []string
		clears      []render.Key
	}{
		{"single level", []string{levelOne}, []render.Key{render.KeyRight}},
		{"two levels", []string{levelOne, levelTwo}, []render.Key{render.KeyRight, render.KeyLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarnessWithConfig(t, cfg, tt.descriptors...)
			h.startGame()

			for i, key := range tt.clears {
				if i > 0 {
					h.runUntil(gamestate.GamePlay)
				}
				h.clearLevel(key)
			}

			next, pending := h.m.machine.Pending()
			if !pending || next != gamestate.GameCompleted {
				t.Fatalf("Expected game_completed pending after the last level, got %s (pending=%v)", next, pending)
			}
			if h.m.Game != nil {
				t.Error("Expected the cleared level to be unloaded")
			}

			h.mustStep()
			if h.m.State() != gamestate.GameCompleted {
				t.Fatalf("Expected game_completed on the next step, got %s", h.m.State())
			}
			for i := 0; i < 400; i++ {
				h.mustStep()
			}
			if h.m.State() != gamestate.GameCompleted {
				t.Errorf("Expected to stay on the completion screen, got %s", h.m.State())
			}
		})
	}
}

func TestPendingTransitionSurvivesSetupStep(t *testing.T) {
	h := newHarness(t, levelOne)
	h.startGame()
	h.clearLevel(render.KeyRight)

	// Keys that would otherwise act on the level card
	h.mustStep(render.KeyEscape)
	if h.m.State() != gamestate.GameCompleted {
		t.Fatalf("Expected game_completed, got %s", h.m.State())
	}
}

func TestLevelNumberLogField(t *testing.T) {
	var buf bytes.Buffer
	h := &harness{t: t, in: &fakeInput{}, audio: &fakeAudio{musicOn: true}}
	m, err := NewManager(Options{
		Config:  testConfig(),
		Catalog: levels.New(levelOne),
		Input:   h.in,
		Audio:   h.audio,
		Logger:  zerolog.New(&buf),
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	h.m = m
	h.startGame()

	out := buf.String()
	if !strings.Contains(out, `"level_number":1`) {
		t.Errorf("Expected level_number field, got %s", out)
	}
	if strings.Contains(out, `"level":1`) {
		t.Errorf("Expected severity key left alone, got %s", out)
	}
}

func TestSilentAudioDefault(t *testing.T) {
	m, err := NewManager(Options{
		Config:  testConfig(),
		Catalog: levels.New(levelOne),
		Input:   &fakeInput{},
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if !m.audio.MusicOn() {
		t.Error("Expected music on by default")
	}
	if m.audio.ToggleMusic() {
		t.Error("Expected toggle to switch music off")
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		keys []render.Key
		want movement.Input
	}{
		{"nothing", nil, movement.Input{}},
		{"up", []render.Key{render.KeyUp}, movement.Input{Direction: movement.Up}},
		{"right", []render.Key{render.KeyRight}, movement.Input{Direction: movement.Right}},
		{"teleport", []render.Key{render.KeySpace}, movement.Input{Teleport: true}},
		{"first arrow wins", []render.Key{render.KeyLeft, render.KeyDown}, movement.Input{Direction: movement.Down}},
		{"slide and teleport", []render.Key{render.KeyLeft, render.KeySpace}, movement.Input{Direction: movement.Left, Teleport: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &fakeInput{keys: make(map[render.Key]bool)}
			for _, k := range tt.keys {
				in.keys[k] = true
			}
			if got := ReadInput(in); got != tt.want {
				t.Errorf("ReadInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
