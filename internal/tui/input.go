package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/slidey/internal/render"
)

// Input adapts terminal key events to render.InputManager. Terminals report
// key presses only, so a key event counts as pressed and released in the
// same frame; a tap of an arrow key therefore issues one slide.
type Input struct {
	mu      sync.Mutex
	queued  map[render.Key]bool
	current map[render.Key]bool
}

// NewInput creates an input adapter with no keys down.
func NewInput() *Input {
	return &Input{
		queued:  make(map[render.Key]bool),
		current: make(map[render.Key]bool),
	}
}

// HandleKey records a key for the next frame. It reports whether the key is
// one the game reads.
func (in *Input) HandleKey(k tcell.Key, r rune) bool {
	key, ok := toKey(k, r)
	if !ok {
		return false
	}
	in.mu.Lock()
	in.queued[key] = true
	in.mu.Unlock()
	return true
}

// BeginFrame makes the keys received since the last frame visible.
func (in *Input) BeginFrame() {
	in.mu.Lock()
	in.current, in.queued = in.queued, make(map[render.Key]bool)
	in.mu.Unlock()
}

// IsKeyPressed returns whether the key arrived this frame.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.current[key]
}

// IsKeyJustPressed returns whether the key arrived this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.current[key]
}

// IsKeyJustReleased returns whether the key arrived this frame.
func (in *Input) IsKeyJustReleased(key render.Key) bool {
	return in.current[key]
}

func toKey(k tcell.Key, r rune) (render.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEnter:
		return render.KeyEnter, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return render.KeySpace, true
		case 'q', 'Q':
			return render.KeyQ, true
		case 'm', 'M':
			return render.KeyM, true
		case 'c', 'C':
			return render.KeyC, true
		}
	}
	return 0, false
}
