package tilemap

import "fmt"

// TileType classifies a single grid cell.
type TileType uint8

const (
	Wall TileType = iota
	Floor
	Potion
	Player
	Teleport
)

var tileNames = [...]string{
	Wall:     "wall",
	Floor:    "floor",
	Potion:   "potion",
	Player:   "player",
	Teleport: "teleport",
}

var tileGlyphs = [...]rune{
	Wall:     '#',
	Floor:    '.',
	Potion:   'o',
	Player:   'p',
	Teleport: 't',
}

func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("TileType(%d)", uint8(t))
}

// Glyph returns the descriptor character for the tile type.
func (t TileType) Glyph() rune {
	if int(t) < len(tileGlyphs) {
		return tileGlyphs[t]
	}
	return '?'
}

// IsAsset reports whether the tile lives on the foreground (asset) layer.
func (t TileType) IsAsset() bool {
	return t == Potion || t == Player || t == Teleport
}

// ParseGlyph maps a descriptor character to its tile type.
func ParseGlyph(r rune) (TileType, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Floor, true
	case 'o':
		return Potion, true
	case 'p':
		return Player, true
	case 't':
		return Teleport, true
	default:
		return Floor, false
	}
}
