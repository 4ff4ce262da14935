// Package placeholders draws the game's sprites in code so the game runs
// without any image assets on disk.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"chosenoffset.com/slidey/internal/world/tilemap"
)

// TileSize is the pixel size of every placeholder sprite
const TileSize = 16

// ColorPalette defines colors for each tile type (dungeon theme)
var ColorPalette = struct {
	Floor    color.RGBA
	Wall     color.RGBA
	Mortar   color.RGBA
	Potion   color.RGBA
	Flask    color.RGBA
	Player   color.RGBA
	Teleport color.RGBA

	// UI
	Border     color.RGBA
	Background color.RGBA
	Text       color.RGBA
}{
	Floor:    color.RGBA{60, 55, 50, 255},    // Dark stone
	Wall:     color.RGBA{130, 125, 115, 255}, // Light stone
	Mortar:   color.RGBA{90, 85, 78, 255},
	Potion:   color.RGBA{200, 40, 120, 255}, // Magenta brew
	Flask:    color.RGBA{220, 220, 235, 255},
	Player:   color.RGBA{0, 255, 100, 255},  // Bright green
	Teleport: color.RGBA{80, 160, 255, 255}, // Portal blue

	Border:     color.RGBA{200, 200, 200, 255},
	Background: color.RGBA{30, 28, 25, 255},
	Text:       color.RGBA{230, 204, 179, 255},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}

	return img
}

// CreateBrickTile creates a wall tile with staggered mortar lines
func CreateBrickTile(brickColor, mortarColor color.RGBA) *image.RGBA {
	img := CreateSolidTile(brickColor)
	course := TileSize / 4

	for row := 0; row < 4; row++ {
		y := row * course
		for x := 0; x < TileSize; x++ {
			img.Set(x, y, mortarColor)
		}
		offset := 0
		if row%2 == 1 {
			offset = TileSize / 4
		}
		for dy := 0; dy < course; dy++ {
			img.Set(offset, y+dy, mortarColor)
			img.Set(offset+TileSize/2, y+dy, mortarColor)
		}
	}

	return img
}

// CreateCircle creates a circular sprite on a transparent background
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	radius := TileSize/2 - 2

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateRing creates a hollow ring, used for the teleporter pad
func CreateRing(ringColor color.RGBA, thickness int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	outer := TileSize/2 - 1
	inner := outer - thickness

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy
			if distSq <= outer*outer && distSq > inner*inner {
				img.Set(x, y, ringColor)
			}
		}
	}

	return img
}

// CreateFlask creates a potion bottle: a round body with a narrow neck
func CreateFlask(liquidColor, glassColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	// Neck
	for y := 2; y < 6; y++ {
		for x := TileSize/2 - 1; x <= TileSize/2; x++ {
			img.Set(x, y, glassColor)
		}
	}

	// Body
	cx, cy, r := TileSize/2, TileSize/2+2, TileSize/2-3
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx, dy := x-cx, y-cy
			distSq := dx*dx + dy*dy
			if distSq <= (r-1)*(r-1) {
				img.Set(x, y, liquidColor)
			} else if distSq <= r*r {
				img.Set(x, y, glassColor)
			}
		}
	}

	return img
}

// Sprites returns one sprite per tile type. Floor and Wall are opaque; the
// asset sprites are transparent so they can be drawn over the floor.
func Sprites() map[tilemap.TileType]*image.RGBA {
	return map[tilemap.TileType]*image.RGBA{
		tilemap.Floor:    CreateBorderedTile(ColorPalette.Floor, Darken(ColorPalette.Floor, 0.8), 1),
		tilemap.Wall:     CreateBrickTile(ColorPalette.Wall, ColorPalette.Mortar),
		tilemap.Potion:   CreateFlask(ColorPalette.Potion, ColorPalette.Flask),
		tilemap.Player:   CreateCircle(ColorPalette.Player, Darken(ColorPalette.Player, 0.5)),
		tilemap.Teleport: CreateRing(ColorPalette.Teleport, 3),
	}
}

// RenderLevel composes a full-size preview image of a tile map: the
// structural layer first, then the asset layer on top.
func RenderLevel(m *tilemap.TileMap) *image.RGBA {
	sprites := Sprites()
	out := image.NewRGBA(image.Rect(0, 0, m.Width()*TileSize, m.Height()*TileSize))

	structure := m.Structure()
	assets := m.Assets()

	for i, tile := range structure {
		x := (i % m.Width()) * TileSize
		y := (i / m.Width()) * TileSize
		dest := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(out, dest, sprites[tile], image.Point{}, draw.Src)

		if asset := assets[i]; asset.IsAsset() {
			draw.Draw(out, dest, sprites[asset], image.Point{}, draw.Over)
		}
	}

	return out
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
