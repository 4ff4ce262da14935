package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/slidey/internal/core/gamestate"
	"chosenoffset.com/slidey/internal/core/geom"
	"chosenoffset.com/slidey/internal/game"
	"chosenoffset.com/slidey/internal/ui/hud"
	"chosenoffset.com/slidey/internal/ui/menu"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)

	tileStyles = map[tilemap.TileType]tcell.Style{
		tilemap.Wall:     tcell.StyleDefault.Foreground(tcell.ColorSilver),
		tilemap.Floor:    tcell.StyleDefault.Foreground(tcell.ColorDimGray),
		tilemap.Potion:   tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tilemap.Player:   tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
		tilemap.Teleport: tcell.StyleDefault.Foreground(tcell.ColorAqua),
	}
)

// playerGlyph replaces the descriptor's 'p' on screen.
const playerGlyph = '@'

// Draw renders the manager's current state to the screen.
func Draw(screen tcell.Screen, m *game.Manager) {
	screen.Clear()

	switch m.State() {
	case gamestate.Splash:
		drawLines(screen, 2, 1, styleTitle, "SLIDEY")
		drawLines(screen, 2, 3, styleDefault, "Collect every potion. Slide until you hit a wall.")
	case gamestate.Menu:
		drawMenu(screen, m.MainMenu)
	case gamestate.GameSetup:
		if err := m.LoadError(); err != nil {
			drawLines(screen, 2, 1, styleError, fmt.Sprintf("Level %d failed to load", m.Level()))
			drawLines(screen, 2, 3, styleDefault, err.Error())
			drawLines(screen, 2, 5, styleDim, "Press ESCAPE to return to the menu")
			break
		}
		drawLines(screen, 2, 1, styleTitle, hud.LevelTitle(m.Level(), m.LevelCount()))
		drawLines(screen, 2, 3, styleDefault, m.CardLine())
	case gamestate.GamePlay:
		if m.Game != nil {
			drawLines(screen, 0, 0, styleDefault, m.Game.GameHUD.Lines()...)
			drawBoard(screen, m.Game, 0, len(m.Game.GameHUD.Lines())+1)
		}
	case gamestate.GameCompleted:
		drawLines(screen, 2, 1, styleTitle, "Congratulations!")
		drawLines(screen, 2, 3, styleDefault, fmt.Sprintf("You cleared all %d levels", m.LevelCount()))
		drawLines(screen, 2, 5, styleDim, "Press ENTER to return to the menu")
	}

	screen.Show()
}

func drawMenu(screen tcell.Screen, mm *menu.MainMenu) {
	if mm.ShowingCredits() {
		drawLines(screen, 2, 1, styleDefault, menu.Credits...)
		drawLines(screen, 2, len(menu.Credits)+2, styleDim, "Press ESCAPE to return")
		return
	}

	drawLines(screen, 2, 1, styleTitle, "SLIDEY")
	for i, item := range []menu.Item{menu.ItemNewGame, menu.ItemCredits, menu.ItemQuit} {
		style, label := styleDefault, "  "+item.String()
		if item == mm.Selected() {
			style, label = styleSelected, "> "+item.String()
		}
		drawLines(screen, 2, 3+i, style, label)
	}
	drawLines(screen, 2, 7, styleDim, "UP/DOWN to choose, ENTER or SPACE to select, C for credits")
}

// drawBoard draws one character per cell: the structural layer, then the
// live potions, teleporter and player.
func drawBoard(screen tcell.Screen, g *game.Game, x0, y0 int) {
	tileSize := g.World.TileSize()

	for i, tile := range g.Map.Structure() {
		x, y := i%g.Map.Width(), i/g.Map.Width()
		screen.SetContent(x0+x, y0+y, tile.Glyph(), nil, tileStyles[tile])
	}

	put := func(p geom.Point, r rune, tile tilemap.TileType) {
		cx := int(math.Round(p.X / tileSize))
		cy := int(math.Round(p.Y / tileSize))
		screen.SetContent(x0+cx, y0+cy, r, nil, tileStyles[tile])
	}

	for _, p := range g.World.Potions() {
		put(p, tilemap.Potion.Glyph(), tilemap.Potion)
	}
	if pos, ok := g.World.Teleporter(); ok {
		put(pos, tilemap.Teleport.Glyph(), tilemap.Teleport)
	}
	if player, ok := g.World.Player(); ok {
		put(player.Pos, playerGlyph, tilemap.Player)
	}
}

func drawLines(screen tcell.Screen, x, y int, style tcell.Style, lines ...string) {
	for i, line := range lines {
		col := x
		for _, r := range line {
			screen.SetContent(col, y+i, r, nil, style)
			col++
		}
	}
}
