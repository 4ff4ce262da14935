package game

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/render"
	"chosenoffset.com/slidey/internal/world/levels"
)

// Audio is the sound output the manager drives. *audio.Engine satisfies it.
type Audio interface {
	Play(s audio.Sound) bool
	ResumeMusic()
	PauseMusic()
	ToggleMusic() bool
	MusicOn() bool
}

// Options wires a Manager to its collaborators. Renderer may be nil when the
// manager is only stepped, never drawn.
type Options struct {
	Config   *config.Config
	Catalog  *levels.Catalog
	Renderer render.Renderer
	Input    render.InputManager
	Audio    Audio
	Logger   zerolog.Logger
}

// silentAudio is used when no audio output is supplied.
type silentAudio struct{ musicOn bool }

func (s *silentAudio) Play(audio.Sound) bool { return false }
func (s *silentAudio) ResumeMusic()          {}
func (s *silentAudio) PauseMusic()           {}
func (s *silentAudio) ToggleMusic() bool {
	s.musicOn = !s.musicOn
	return s.musicOn
}
func (s *silentAudio) MusicOn() bool { return s.musicOn }
