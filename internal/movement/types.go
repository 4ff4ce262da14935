package movement

import (
	"fmt"

	"chosenoffset.com/slidey/internal/core/geom"
)

// Direction is the single motion state of a moveable entity. Stopped is both
// the initial state and the state between moves.
type Direction uint8

const (
	Stopped Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = [...]string{
	Stopped: "stopped",
	Up:      "up",
	Down:    "down",
	Left:    "left",
	Right:   "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit vector for the direction. World y grows downwards.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Moveable is the player's continuous position plus its motion state.
type Moveable struct {
	Pos       geom.Point
	Direction Direction
	Speed     float64
}

// Stop halts the entity.
func (m *Moveable) Stop() {
	m.Direction = Stopped
	m.Speed = 0
}

// Input is the intake for one simulation step.
type Input struct {
	Direction Direction // directional command released this step, or Stopped
	Teleport  bool
}

// Events reports what happened during a step. Presentation uses it for sound
// and animation hooks; nothing in the engine waits on it.
type Events struct {
	Started      bool // a directional command was accepted
	Teleported   bool
	HitWall      bool
	Collected    int
	LevelCleared bool
}

// Config holds the movement tuning.
type Config struct {
	TileSize    float64 // world units per grid cell
	PlayerSpeed float64 // world units per second
}

// DefaultConfig returns the standard tuning: 16 unit tiles, 10 tiles per second.
func DefaultConfig() Config {
	return Config{
		TileSize:    16,
		PlayerSpeed: 160,
	}
}
