// Package movement advances the player through a level one simulation step at
// a time.
//
// Every step runs four phases in a fixed order: controls intake, position
// integration, wall correction and pickup detection. Reordering them changes
// behaviour, e.g. checking pickups before wall correction would let the player
// collect a potion through a wall corner.
package movement

import (
	"chosenoffset.com/slidey/internal/core/gamestate"
	"chosenoffset.com/slidey/internal/core/geom"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

// World holds the dynamic entities of one loaded level. Entities live in plain
// index-addressable slices; walls are read-only, potions shrink on pickup.
type World struct {
	cfg           Config
	width, height int

	player    Moveable
	hasPlayer bool
	state     gamestate.PlayerState

	teleporter    geom.Point
	hasTeleporter bool

	walls   []geom.Point
	potions []geom.Point
	cleared bool
}

// NewWorld spawns the entities described by a tile map.
func NewWorld(m *tilemap.TileMap, cfg Config) *World {
	w := &World{
		cfg:    cfg,
		width:  m.Width(),
		height: m.Height(),
		state:  gamestate.PlayerIdle,
	}

	for _, c := range m.Find(tilemap.Wall) {
		w.walls = append(w.walls, c.ToWorld(cfg.TileSize))
	}
	for _, c := range m.Find(tilemap.Potion) {
		w.potions = append(w.potions, c.ToWorld(cfg.TileSize))
	}
	if players := m.Find(tilemap.Player); len(players) > 0 {
		w.player = Moveable{Pos: players[0].ToWorld(cfg.TileSize)}
		w.hasPlayer = true
	}
	if teleporters := m.Find(tilemap.Teleport); len(teleporters) > 0 {
		w.teleporter = teleporters[0].ToWorld(cfg.TileSize)
		w.hasTeleporter = true
	}

	return w
}

// Player returns the player entity, if one was spawned.
func (w *World) Player() (Moveable, bool) {
	return w.player, w.hasPlayer
}

// Teleporter returns the teleporter position, if one was spawned.
func (w *World) Teleporter() (geom.Point, bool) {
	return w.teleporter, w.hasTeleporter
}

// Potions returns the positions of the remaining collectables.
func (w *World) Potions() []geom.Point {
	out := make([]geom.Point, len(w.potions))
	copy(out, w.potions)
	return out
}

// Walls returns the positions of every wall tile.
func (w *World) Walls() []geom.Point {
	out := make([]geom.Point, len(w.walls))
	copy(out, w.walls)
	return out
}

// Remaining returns how many potions are left.
func (w *World) Remaining() int {
	return len(w.potions)
}

// PlayerState returns the current player-level state.
func (w *World) PlayerState() gamestate.PlayerState {
	return w.state
}

// Cleared reports whether the level-cleared event has fired.
func (w *World) Cleared() bool {
	return w.cleared
}

// TileSize returns the world size of one grid cell.
func (w *World) TileSize() float64 {
	return w.cfg.TileSize
}

// Step runs one simulation step. With no player spawned it does nothing.
func (w *World) Step(in Input, dt float64) Events {
	var ev Events
	if !w.hasPlayer {
		return ev
	}

	w.settle()
	w.controls(in, &ev)
	w.integrate(dt)
	w.correctWalls(&ev)
	w.collect(&ev)

	return ev
}

// settle resolves transient player states left over from the previous step.
func (w *World) settle() {
	if !w.state.Transient() {
		return
	}
	if w.player.Direction == Stopped {
		w.state = gamestate.PlayerIdle
	} else {
		w.state = gamestate.PlayerMoving
	}
}

func (w *World) controls(in Input, ev *Events) {
	if in.Direction != Stopped && w.player.Direction == Stopped {
		w.player.Direction = in.Direction
		w.player.Speed = w.cfg.PlayerSpeed
		w.state = gamestate.PlayerMoving
		ev.Started = true
	}

	if in.Teleport && w.hasTeleporter {
		// The pad lands on the nearest cell so both ends of a swap stay on
		// the grid.
		w.player.Pos, w.teleporter = w.teleporter, geom.Snap(w.player.Pos, w.cfg.TileSize)
		w.player.Stop()
		w.state = gamestate.PlayerTeleport
		ev.Teleported = true
	}
}

func (w *World) integrate(dt float64) {
	if w.player.Direction == Stopped || dt <= 0 {
		return
	}

	// A step never covers more than one tile so the overlap test below
	// cannot skip over a wall.
	dist := w.player.Speed * dt
	if dist > w.cfg.TileSize {
		dist = w.cfg.TileSize
	}

	dx, dy := w.player.Direction.Delta()
	w.player.Pos = w.player.Pos.Add(dx*dist, dy*dist)
}

func (w *World) correctWalls(ev *Events) {
	dir := w.player.Direction
	if dir == Stopped {
		return
	}

	size := w.cfg.TileSize
	box := geom.Square(w.player.Pos, size)
	snapped := false
	target := w.player.Pos

	// When several walls overlap, the nearest face along the direction of
	// travel wins.
	for _, wall := range w.walls {
		if !box.Overlaps(geom.Square(wall, size)) {
			continue
		}
		switch dir {
		case Left:
			if x := wall.X + size; !snapped || x > target.X {
				target.X = x
			}
		case Right:
			if x := wall.X - size; !snapped || x < target.X {
				target.X = x
			}
		case Up:
			if y := wall.Y + size; !snapped || y > target.Y {
				target.Y = y
			}
		case Down:
			if y := wall.Y - size; !snapped || y < target.Y {
				target.Y = y
			}
		}
		snapped = true
	}

	// The grid edge acts as a wall for levels without a border.
	maxX := float64(w.width-1) * size
	maxY := float64(w.height-1) * size
	switch {
	case dir == Left && target.X < 0:
		target.X, snapped = 0, true
	case dir == Right && target.X > maxX:
		target.X, snapped = maxX, true
	case dir == Up && target.Y < 0:
		target.Y, snapped = 0, true
	case dir == Down && target.Y > maxY:
		target.Y, snapped = maxY, true
	}

	if !snapped {
		return
	}
	w.player.Pos = target
	w.player.Stop()
	w.state = gamestate.PlayerIdle
	ev.HitWall = true
}

func (w *World) collect(ev *Events) {
	box := geom.Square(w.player.Pos, w.cfg.TileSize)

	kept := w.potions[:0]
	for _, p := range w.potions {
		if box.Overlaps(geom.Square(p, w.cfg.TileSize)) {
			ev.Collected++
			continue
		}
		kept = append(kept, p)
	}
	w.potions = kept

	if ev.Collected > 0 {
		w.state = gamestate.PlayerCollectPotion
	}

	if len(w.potions) == 0 && !w.cleared {
		w.cleared = true
		ev.LevelCleared = true
	}
}
