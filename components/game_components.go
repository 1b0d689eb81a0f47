package components

import (
	"image/color"
)

// PlayerColor is the fill colour of the player marker
var PlayerColor = color.RGBA{255, 0, 0, 255}

// TileDefinition describes how a cell kind looks on a character display
type TileDefinition struct {
	Glyph rune        // Character drawn for the cell
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition from a glyph and foreground color
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
	}
}

// TileMapping maps cell kinds to their character-display appearance
type TileMapping struct {
	Definitions map[Cell]TileDefinition
}

// NewTileMapping creates the default wall/floor mapping
func NewTileMapping() *TileMapping {
	mapping := &TileMapping{
		Definitions: make(map[Cell]TileDefinition),
	}
	mapping.Definitions[CellFloor] = NewTileDefinition(GlyphFloor, color.RGBA{64, 64, 64, 255})
	mapping.Definitions[CellWall] = NewTileDefinition(GlyphWall, color.RGBA{128, 128, 128, 255})
	return mapping
}

// SetBackground sets the background color used for a cell kind
func (t *TileMapping) SetBackground(cell Cell, bg color.Color) {
	def := t.GetTileDefinition(cell)
	def.BG = bg
	t.Definitions[cell] = def
}

// GetTileDefinition returns the definition for a cell kind
func (t *TileMapping) GetTileDefinition(cell Cell) TileDefinition {
	if def, exists := t.Definitions[cell]; exists {
		return def
	}

	// Magenta for undefined cells
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
	}
}
