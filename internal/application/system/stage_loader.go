package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/overworld/internal/domain/entity"
)

// LoadMap converts glyph rows (see entity.TileType.Glyph) into a Map.
// Every row must have the same width and the border must not be walkable.
func LoadMap(rows []string) (entity.Map, error) {
	if len(rows) == 0 {
		return entity.Map{}, fmt.Errorf("layout has no rows")
	}

	height := len(rows)
	width := len([]rune(rows[0]))
	m := entity.Map{
		Width:  width,
		Height: height,
		Tiles:  make([]entity.Tile, 0, width*height),
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return entity.Map{}, fmt.Errorf("row %d has %d tiles, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			tileType, ok := entity.TileTypeFromGlyph(r)
			if !ok {
				return entity.Map{}, fmt.Errorf("unknown tile %q at (%d,%d)", r, x, y)
			}
			pos := entity.Position{X: x, Y: y}
			tile := entity.NewTile(tileType, pos)
			if tile.Walkable && m.IsBorder(pos) {
				return entity.Map{}, fmt.Errorf("walkable border tile at %s", pos)
			}
			m.Tiles = append(m.Tiles, tile)
		}
	}

	return m, nil
}

// FormatMap renders a Map back into glyph rows
func FormatMap(m entity.Map) []string {
	rows := make([]string, m.Height)
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		sb.Reset()
		for x := 0; x < m.Width; x++ {
			tile, _ := m.TileAt(entity.Position{X: x, Y: y})
			sb.WriteRune(tile.Type.Glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}
