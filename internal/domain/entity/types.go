package entity

import "fmt"

// Position is an integer grid coordinate
type Position struct {
	X, Y int
}

// Add returns the position offset by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position one tile away in the given direction.
// DirNone returns p unchanged.
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a facing / movement direction on the grid
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movable directions in a fixed order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit grid offset of the direction (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts a direction name back to a Direction.
// Unknown or empty names yield DirNone.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	default:
		return DirNone
	}
}

// TileType represents the terrain of a tile
type TileType int

const (
	TileGrass TileType = iota
	TileWater
	TileTree
	TileSand
	TileMountain
)

// Walkable reports whether entities may stand on this terrain
func (t TileType) Walkable() bool {
	return t == TileGrass || t == TileSand
}

func (t TileType) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileWater:
		return "water"
	case TileTree:
		return "tree"
	case TileSand:
		return "sand"
	case TileMountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Tile represents a single cell of the map
type Tile struct {
	Type     TileType
	Position Position
	Walkable bool
}

// NewTile creates a tile whose walkability follows its terrain
func NewTile(tileType TileType, pos Position) Tile {
	return Tile{Type: tileType, Position: pos, Walkable: tileType.Walkable()}
}

// Map is the immutable tile grid of a world.
// Tiles are stored row-major: index = y*Width + x.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// InBounds reports whether pos lies inside [0,Width)x[0,Height)
func (m Map) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// TileAt returns the tile at pos. Out of bounds positions report false.
func (m Map) TileAt(pos Position) (Tile, bool) {
	if !m.InBounds(pos) {
		return Tile{}, false
	}
	return m.Tiles[pos.Y*m.Width+pos.X], true
}

// IsWalkable reports whether the tile at pos exists and is walkable
func (m Map) IsWalkable(pos Position) bool {
	tile, ok := m.TileAt(pos)
	return ok && tile.Walkable
}

// CanEnter reports whether an entity may step onto pos
func (m Map) CanEnter(pos Position) bool {
	return m.InBounds(pos) && m.IsWalkable(pos)
}

// IsBorder reports whether pos is on the outer ring of the map
func (m Map) IsBorder(pos Position) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == m.Width-1 || pos.Y == m.Height-1
}

// Center returns the geometric center cell (integer division)
func (m Map) Center() Position {
	return Position{X: m.Width / 2, Y: m.Height / 2}
}

// WalkableCount returns the number of walkable tiles
func (m Map) WalkableCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.Walkable {
			n++
		}
	}
	return n
}

// Glyph returns the single-character text form used by map layouts and the terminal host
func (t TileType) Glyph() rune {
	switch t {
	case TileGrass:
		return '.'
	case TileWater:
		return '~'
	case TileTree:
		return 'T'
	case TileSand:
		return ':'
	case TileMountain:
		return '^'
	default:
		return '?'
	}
}

// TileTypeFromGlyph is the inverse of Glyph
func TileTypeFromGlyph(r rune) (TileType, bool) {
	switch r {
	case '.':
		return TileGrass, true
	case '~':
		return TileWater, true
	case 'T':
		return TileTree, true
	case ':':
		return TileSand, true
	case '^':
		return TileMountain, true
	default:
		return 0, false
	}
}
