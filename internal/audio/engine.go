// Package audio plays the background music and the gameplay sound cues.
//
// Sounds are synthesised from sine tones, so no audio assets are needed. If
// the output device cannot be opened the engine drops into silent mode and
// every call becomes a no-op; gameplay never depends on audio.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when Config.SampleRate is zero
const DefaultSampleRate = beep.SampleRate(44100)

// Config holds audio settings
type Config struct {
	Enabled    bool
	Volume     float64 // Base-2 exponent, 0 is unchanged
	SampleRate beep.SampleRate
}

// Engine owns the speaker and a mixer that every sound is added to
type Engine struct {
	cfg Config

	mu      sync.Mutex
	mixer   *beep.Mixer
	music   *beep.Ctrl
	running bool

	silent  atomic.Bool
	musicOn atomic.Bool
}

// NewEngine creates an engine. Call Start before playing anything.
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	e := &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	e.silent.Store(true)
	e.musicOn.Store(true)
	return e
}

// Start opens the speaker. A disabled engine stays silent without error. On
// device failure the engine also stays silent and the error is returned for
// the caller to report.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running || !e.cfg.Enabled {
		return nil
	}

	sr := e.cfg.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	theme, err := music(sr, e.cfg.Volume)
	if err != nil {
		speaker.Close()
		return err
	}
	e.music = &beep.Ctrl{Streamer: theme, Paused: true}
	e.mixer.Add(e.music)
	speaker.Play(e.mixer)

	e.running = true
	e.silent.Store(false)
	return nil
}

// Close stops playback and releases the device
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.running = false
	e.silent.Store(true)
}

// Silent reports whether the engine is discarding all sound
func (e *Engine) Silent() bool {
	return e.silent.Load()
}

// Play queues a sound effect. It returns false when nothing was queued.
func (e *Engine) Play(s Sound) bool {
	if e.silent.Load() {
		return false
	}
	streamer, err := effect(e.cfg.SampleRate, s, e.cfg.Volume)
	if err != nil {
		return false
	}
	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ResumeMusic plays the theme unless the player has switched music off
func (e *Engine) ResumeMusic() {
	e.setMusicPaused(!e.musicOn.Load())
}

// PauseMusic silences the theme without changing the music toggle
func (e *Engine) PauseMusic() {
	e.setMusicPaused(true)
}

// ToggleMusic flips the music toggle and returns true if music is now on
func (e *Engine) ToggleMusic() bool {
	on := !e.musicOn.Load()
	e.musicOn.Store(on)
	e.setMusicPaused(!on)
	return on
}

// MusicOn reports the music toggle
func (e *Engine) MusicOn() bool {
	return e.musicOn.Load()
}

func (e *Engine) setMusicPaused(paused bool) {
	if e.silent.Load() || e.music == nil {
		return
	}
	speaker.Lock()
	e.music.Paused = paused
	speaker.Unlock()
}
