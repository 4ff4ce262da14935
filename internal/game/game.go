package game

import (
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/movement"
	"chosenoffset.com/slidey/internal/render"
	"chosenoffset.com/slidey/internal/ui/hud"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

// Game is one loaded level: its tile map, the live entities and the HUD.
type Game struct {
	Level   int
	Map     *tilemap.TileMap
	World   *movement.World
	GameHUD *hud.HUD

	Renderer     render.Renderer
	ScreenWidth  int
	ScreenHeight int
	MaxScale     float64 // Screen pixels per world unit, upper bound

	sprites *spriteSet
}

// newGame spawns the entities of a freshly built tile map.
func newGame(level int, m *tilemap.TileMap, cfg *config.Config, r render.Renderer, sprites *spriteSet) *Game {
	return &Game{
		Level:        level,
		Map:          m,
		World:        movement.NewWorld(m, cfg.Movement()),
		GameHUD:      hud.New(hud.DefaultConfig(), r, cfg.Window.Width, cfg.Window.Height),
		Renderer:     r,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		MaxScale:     cfg.Grid.Scale,
		sprites:      sprites,
	}
}

// directionKeys maps arrow keys to slide directions, checked in this order.
var directionKeys = []struct {
	key render.Key
	dir movement.Direction
}{
	{render.KeyUp, movement.Up},
	{render.KeyDown, movement.Down},
	{render.KeyLeft, movement.Left},
	{render.KeyRight, movement.Right},
}

// ReadInput collects the movement intake for one step. A slide is issued when
// an arrow key is released, so holding a key does nothing until it comes up.
func ReadInput(input render.InputManager) movement.Input {
	var in movement.Input
	for _, dk := range directionKeys {
		if input.IsKeyJustReleased(dk.key) {
			in.Direction = dk.dir
			break
		}
	}
	in.Teleport = input.IsKeyJustPressed(render.KeySpace)
	return in
}

// Step advances the level by one step and refreshes the HUD.
func (g *Game) Step(in movement.Input, dt float64, count int, musicOn bool) movement.Events {
	ev := g.World.Step(in, dt)
	g.GameHUD.SetStatus(hud.Status{
		Level:     g.Level,
		Count:     count,
		Remaining: g.World.Remaining(),
		MusicOn:   musicOn,
	})
	return ev
}
