package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/slidey/internal/core/geom"
	"chosenoffset.com/slidey/internal/placeholders"
	"chosenoffset.com/slidey/internal/render"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

// spriteSet uploads the placeholder sprites on first use and keeps them for
// every level.
type spriteSet struct {
	images map[tilemap.TileType]render.Image
}

func (s *spriteSet) get(r render.Renderer, t tilemap.TileType) render.Image {
	if s.images == nil {
		s.images = make(map[tilemap.TileType]render.Image)
		for tile, img := range placeholders.Sprites() {
			s.images[tile] = r.NewImageFromImage(img)
		}
	}
	return s.images[t]
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(placeholders.ColorPalette.Background)

	scale, originX, originY := g.layout()
	tileSize := g.World.TileSize()

	// Structural layer
	structure := g.Map.Structure()
	for i, tile := range structure {
		cell := geom.Coord{X: i % g.Map.Width(), Y: i / g.Map.Width()}
		g.drawSprite(screen, tile, cell.ToWorld(tileSize), scale, originX, originY)
	}

	// Live entities
	for _, p := range g.World.Potions() {
		g.drawSprite(screen, tilemap.Potion, p, scale, originX, originY)
	}
	if pos, ok := g.World.Teleporter(); ok {
		g.drawSprite(screen, tilemap.Teleport, pos, scale, originX, originY)
	}
	if player, ok := g.World.Player(); ok {
		g.drawSprite(screen, tilemap.Player, player.Pos, scale, originX, originY)
	}

	g.GameHUD.Draw(screen)
}

// layout fits the board below the HUD and centers it horizontally. It
// returns screen pixels per world unit and the board's top-left corner.
func (g *Game) layout() (scale, originX, originY float64) {
	tileSize := g.World.TileSize()
	boardW := float64(g.Map.Width()) * tileSize
	boardH := float64(g.Map.Height()) * tileSize
	hudH := float64(g.GameHUD.Height())

	scale = g.MaxScale
	if s := float64(g.ScreenWidth) / boardW; s < scale {
		scale = s
	}
	if s := (float64(g.ScreenHeight) - hudH) / boardH; s < scale {
		scale = s
	}

	originX = (float64(g.ScreenWidth) - boardW*scale) / 2
	originY = hudH
	return scale, originX, originY
}

func (g *Game) drawSprite(screen render.Image, tile tilemap.TileType, pos geom.Point, scale, originX, originY float64) {
	img := g.sprites.get(g.Renderer, tile)
	if img == nil {
		return
	}
	spriteScale := scale * g.World.TileSize() / placeholders.TileSize

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(spriteScale, spriteScale)
	opts.GeoM.Translate(originX+pos.X*scale, originY+pos.Y*scale)
	screen.DrawImage(img, opts)
}

// drawLoadError shows why a level could not be built.
func drawLoadError(r render.Renderer, screen render.Image, level int, err error) {
	screen.Fill(color.RGBA{40, 10, 10, 255})
	r.DrawText(screen, fmt.Sprintf("Level %d failed to load", level), 20, 40, color.RGBA{255, 100, 100, 255}, 2.0)
	r.DrawText(screen, err.Error(), 20, 100, color.RGBA{255, 255, 255, 255}, 0.9)
	r.DrawText(screen, "Press ESCAPE to return to the menu", 20, 140, color.RGBA{150, 150, 150, 255}, 1.0)
}
