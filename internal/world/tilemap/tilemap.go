// Package tilemap parses level descriptors into a fixed-size grid of typed tiles.
//
// A descriptor is a block of newline-separated rows using the characters
//
//	#  wall
//	.  floor
//	o  potion
//	p  player start
//	t  teleporter
//
// Blank lines are ignored. Every row must be exactly as wide as the grid and
// the number of rows must equal the grid height; anything else is rejected
// rather than padded or truncated.
package tilemap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"chosenoffset.com/slidey/internal/core/geom"
)

// Default grid dimensions shared by all built-in levels.
const (
	DefaultWidth  = 12
	DefaultHeight = 9
)

var (
	// ErrMalformedDescriptor is returned when a descriptor does not match the grid.
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	// ErrIndexOutOfBounds is returned for lookups outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// DescriptorError describes why a descriptor was rejected.
type DescriptorError struct {
	Row    int // zero-based row of the offending line, -1 for row-count errors
	Reason string
}

func (e *DescriptorError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedDescriptor, e.Reason)
	}
	return fmt.Sprintf("%v: row %d: %s", ErrMalformedDescriptor, e.Row, e.Reason)
}

func (e *DescriptorError) Unwrap() error {
	return ErrMalformedDescriptor
}

// TileMap is a dense, row-major grid of tiles. The structural layer (walls and
// floors) and the asset layer (potions, player, teleporter) are stored
// separately so each can be rebuilt without touching the other.
type TileMap struct {
	width, height int
	structure     []TileType
	assets        []TileType
}

// Rows splits a descriptor into its non-blank rows.
func Rows(descriptor string) []string {
	var rows []string
	for _, line := range strings.Split(descriptor, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// Build parses a descriptor into a width x height TileMap.
func Build(descriptor string, width, height int) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}

	rows := Rows(descriptor)
	if len(rows) != height {
		return nil, &DescriptorError{
			Row:    -1,
			Reason: fmt.Sprintf("expected %d rows, got %d", height, len(rows)),
		}
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, &DescriptorError{
				Row:    y,
				Reason: fmt.Sprintf("expected width %d, got %d", width, n),
			}
		}
	}

	m := &TileMap{
		width:     width,
		height:    height,
		structure: make([]TileType, width*height),
		assets:    make([]TileType, width*height),
	}

	// Pass 1: structural layer
	for y, row := range rows {
		x := 0
		for _, r := range row {
			tile, ok := ParseGlyph(r)
			if !ok {
				return nil, &DescriptorError{
					Row:    y,
					Reason: fmt.Sprintf("unknown tile %q at column %d", r, x),
				}
			}
			if tile == Wall {
				m.structure[m.index(x, y)] = Wall
			} else {
				m.structure[m.index(x, y)] = Floor
			}
			x++
		}
	}

	// Pass 2: asset layer
	for y, row := range rows {
		x := 0
		for _, r := range row {
			tile, _ := ParseGlyph(r)
			if tile.IsAsset() {
				m.assets[m.index(x, y)] = tile
			} else {
				m.assets[m.index(x, y)] = Floor
			}
			x++
		}
	}

	return m, nil
}

func (m *TileMap) index(x, y int) int {
	return y*m.width + x
}

// Width returns the grid width in cells.
func (m *TileMap) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *TileMap) Height() int { return m.height }

// Len returns the number of cells.
func (m *TileMap) Len() int { return len(m.structure) }

// InBounds reports whether (x, y) is a valid grid coordinate.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// TileAt returns the tile at the given grid coordinates. Asset tiles take
// precedence over the floor beneath them.
func (m *TileMap) TileAt(x, y int) (TileType, error) {
	if !m.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrIndexOutOfBounds, x, y, m.width, m.height)
	}
	i := m.index(x, y)
	if m.assets[i].IsAsset() {
		return m.assets[i], nil
	}
	return m.structure[i], nil
}

// Structure returns a copy of the structural layer (Wall or Floor per cell).
func (m *TileMap) Structure() []TileType {
	out := make([]TileType, len(m.structure))
	copy(out, m.structure)
	return out
}

// Assets returns a copy of the asset layer. Cells without an asset hold Floor.
func (m *TileMap) Assets() []TileType {
	out := make([]TileType, len(m.assets))
	copy(out, m.assets)
	return out
}

// Find returns the coordinates of every cell holding the given tile type,
// in row-major order.
func (m *TileMap) Find(tile TileType) []geom.Coord {
	var coords []geom.Coord
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if t, _ := m.TileAt(x, y); t == tile {
				coords = append(coords, geom.Coord{X: x, Y: y})
			}
		}
	}
	return coords
}

// Count returns how many cells hold the given tile type.
func (m *TileMap) Count(tile TileType) int {
	return len(m.Find(tile))
}

// String renders the map back into descriptor form.
func (m *TileMap) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			t, _ := m.TileAt(x, y)
			b.WriteRune(t.Glyph())
		}
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
