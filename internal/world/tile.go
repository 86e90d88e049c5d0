// Package world provides the tile grid the game is played on.
package world

// Tile represents a single map cell.
// Blocked and BlockSight are independent; a tile may stop movement
// without stopping sight, or the other way around.
type Tile struct {
	Blocked    bool // Entities cannot enter the tile
	BlockSight bool // The tile is opaque
}

// Empty returns an open floor tile.
func Empty() Tile {
	return Tile{Blocked: false, BlockSight: false}
}

// Wall returns a tile that blocks both movement and sight.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}
