package menu

import (
	"image/color"

	"chosenoffset.com/slidey/internal/render"
)

// Action is what the player chose from the menu.
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionQuit
)

// Item is one selectable menu entry.
type Item int

const (
	ItemNewGame Item = iota
	ItemCredits
	ItemQuit
)

var itemLabels = [...]string{
	ItemNewGame: "New Game",
	ItemCredits: "Credits",
	ItemQuit:    "Quit",
}

func (i Item) String() string {
	return itemLabels[i]
}

// Credits are shown on the credits screen, one line each.
var Credits = []string{
	"Slidey",
	"",
	"Design and code: Slidey contributors",
	"Music and sound: synthesised in game",
	"Built with Ebitengine",
}

// MainMenu represents the main menu screen and its credits sub-screen.
type MainMenu struct {
	selected     Item
	showCredits  bool
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates a new main menu.
func NewMainMenu(r render.Renderer, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Reset returns the cursor to the first entry and closes the credits.
func (m *MainMenu) Reset() {
	m.selected = ItemNewGame
	m.showCredits = false
}

// Selected returns the highlighted entry.
func (m *MainMenu) Selected() Item {
	return m.selected
}

// ShowingCredits reports whether the credits screen is open.
func (m *MainMenu) ShowingCredits() bool {
	return m.showCredits
}

// Update updates the menu state based on user input.
func (m *MainMenu) Update(input render.InputManager) Action {
	if m.showCredits {
		if input.IsKeyJustPressed(render.KeyEscape) ||
			input.IsKeyJustPressed(render.KeyEnter) ||
			input.IsKeyJustPressed(render.KeySpace) ||
			input.IsKeyJustPressed(render.KeyC) {
			m.showCredits = false
		}
		return ActionNone
	}

	switch {
	case input.IsKeyJustPressed(render.KeyUp):
		m.selected = (m.selected + Item(len(itemLabels)) - 1) % Item(len(itemLabels))
	case input.IsKeyJustPressed(render.KeyDown):
		m.selected = (m.selected + 1) % Item(len(itemLabels))
	case input.IsKeyJustPressed(render.KeyC):
		m.showCredits = true
	case input.IsKeyJustPressed(render.KeyEnter), input.IsKeyJustPressed(render.KeySpace):
		return m.activate()
	}

	return ActionNone
}

func (m *MainMenu) activate() Action {
	switch m.selected {
	case ItemNewGame:
		return ActionNewGame
	case ItemCredits:
		m.showCredits = true
	case ItemQuit:
		return ActionQuit
	}
	return ActionNone
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	// Clear screen with dark background
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if m.showCredits {
		m.drawCredits(screen)
		return
	}

	titleColor := color.RGBA{255, 255, 255, 255}
	m.drawCentered(screen, "SLIDEY", 60, titleColor, 3.0)

	y := 180
	for i, label := range itemLabels {
		itemColor := color.RGBA{180, 180, 180, 255}
		if Item(i) == m.selected {
			itemColor = color.RGBA{255, 255, 100, 255}
			label = "> " + label + " <"
		}
		m.drawCentered(screen, label, y, itemColor, 1.5)
		y += 40
	}

	// Draw instructions
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.drawCentered(screen, "UP/DOWN to choose, ENTER or SPACE to select, C for credits", m.screenHeight-40, instructionColor, 0.9)
}

func (m *MainMenu) drawCredits(screen render.Image) {
	y := 80
	for _, line := range Credits {
		m.drawCentered(screen, line, y, color.RGBA{200, 200, 255, 255}, 1.2)
		y += 30
	}
	m.drawCentered(screen, "Press ESCAPE to return", m.screenHeight-40, color.RGBA{150, 150, 150, 255}, 0.9)
}

func (m *MainMenu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, (m.screenWidth-w)/2, y, clr, scale)
}
