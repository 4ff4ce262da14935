// Package hud draws the in-game heads-up display and the full-screen cards
// shown between levels.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/slidey/internal/render"
)

// ControlsHelp is the controls reminder shown along the bottom of the HUD.
const ControlsHelp = "Move: ARROW KEYS, Teleport: SPACEBAR, Music toggle: M, Quit: Q"

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowControls bool    `yaml:"show_controls"` // Show the controls line
	Position     string  `yaml:"position"`      // "top" or "bottom"
	Opacity      float64 `yaml:"opacity"`       // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowControls: true,
		Position:     "top",
		Opacity:      0.7,
	}
}

// Status is the gameplay data the HUD shows.
type Status struct {
	Level     int
	Count     int
	Remaining int
	MusicOn   bool
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	status Status
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetStatus updates the displayed values
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// Lines returns the HUD text, top line first
func (h *HUD) Lines() []string {
	music := "on"
	if !h.status.MusicOn {
		music = "off"
	}
	lines := []string{
		LevelTitle(h.status.Level, h.status.Count),
		fmt.Sprintf("Potions left: %d   Music: %s", h.status.Remaining, music),
	}
	if h.config.ShowControls {
		lines = append(lines, ControlsHelp)
	}
	return lines
}

// LevelTitle formats the level counter, e.g. "Level 3 of 10"
func LevelTitle(level, count int) string {
	return fmt.Sprintf("Level %d of %d", level, count)
}

const (
	lineHeight = 18
	padding    = 6
	textScale  = 0.9
)

// Height returns the pixel height of the HUD panel
func (h *HUD) Height() int {
	return len(h.Lines())*lineHeight + 2*padding
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	y := 0
	if h.config.Position == "bottom" {
		y = h.screenHeight - h.Height()
	}

	// Draw panel background
	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, 0, float32(y), float32(h.screenWidth), float32(h.Height()), color.RGBA{20, 20, 30, alpha})
	h.renderer.FillRect(screen, 0, float32(y+h.Height()-1), float32(h.screenWidth), 1, color.RGBA{80, 80, 100, 200})

	currentY := y + padding
	for i, line := range h.Lines() {
		clr := color.RGBA{230, 204, 179, 255}
		if i == len(h.Lines())-1 && h.config.ShowControls {
			clr = color.RGBA{150, 150, 150, 255}
		}
		h.drawText(screen, line, padding, currentY, clr)
		currentY += lineHeight
	}
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.Color) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 200}, textScale)
	h.renderer.DrawText(screen, text, x, y, clr, textScale)
}

// DrawCard fills the screen and centers a title with optional detail lines
// beneath it. It is used for the splash, level and completion screens.
func DrawCard(r render.Renderer, screen render.Image, title string, lines ...string) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	width, height := screen.Size()

	tw, th := r.MeasureText(title, 2.5)
	y := height/2 - th - len(lines)*lineHeight/2
	r.DrawText(screen, title, (width-tw)/2, y, color.RGBA{255, 255, 255, 255}, 2.5)

	y += th + lineHeight
	for _, line := range lines {
		lw, _ := r.MeasureText(line, 1.0)
		r.DrawText(screen, line, (width-lw)/2, y, color.RGBA{200, 200, 200, 255}, 1.0)
		y += lineHeight + 4
	}
}
