package world

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the map.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSize is returned when a map is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid map size")
)

// Map represents the static game world.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]
}

// NewMap creates a new map filled with empty tiles.
// Negative dimensions are clamped to zero.
func NewMap(width, height int) *Map {
	width, height = max(width, 0), max(height, 0)
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Empty()
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds returns true if the position lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at the given position.
func (m *Map) Tile(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return Tile{}, fmt.Errorf("tile %s on %dx%d map: %w", Point{x, y}, m.Width, m.Height, ErrOutOfBounds)
	}
	return m.Tiles[y][x], nil
}

// SetTile places a tile. Only map generation should call this.
func (m *Map) SetTile(x, y int, t Tile) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("set tile %s on %dx%d map: %w", Point{x, y}, m.Width, m.Height, ErrOutOfBounds)
	}
	m.Tiles[y][x] = t
	return nil
}

// IsBlocked returns true if the position cannot be entered.
// Positions off the map are always blocked.
func (m *Map) IsBlocked(x, y int) bool {
	t, err := m.Tile(x, y)
	if err != nil {
		return true
	}
	return t.Blocked
}

// BlocksSight returns true if the position is opaque.
// Positions off the map are treated as opaque.
func (m *Map) BlocksSight(x, y int) bool {
	t, err := m.Tile(x, y)
	if err != nil {
		return true
	}
	return t.BlockSight
}
