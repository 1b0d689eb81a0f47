package components

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the terrain kind of one grid position
type Cell uint8

// Cell kinds
const (
	CellWall Cell = iota
	CellFloor
)

// Map literal glyphs
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

var (
	ErrEmptyMaze   = errors.New("maze has no cells")
	ErrRaggedMaze  = errors.New("maze rows differ in length")
	ErrUnknownCell = errors.New("unknown cell glyph")
)

// String returns the cell kind name
func (c Cell) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellFloor:
		return "floor"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Glyph returns the map literal character for the cell
func (c Cell) Glyph() rune {
	if c == CellFloor {
		return GlyphFloor
	}
	return GlyphWall
}

// CellFromGlyph converts a map literal character to a cell kind
func CellFromGlyph(r rune) (Cell, error) {
	switch r {
	case GlyphWall:
		return CellWall, nil
	case GlyphFloor:
		return CellFloor, nil
	default:
		return CellWall, fmt.Errorf("%w %q", ErrUnknownCell, r)
	}
}

// Maze is the fixed rectangular grid of cells. It is never modified after
// construction.
type Maze struct {
	Width  int
	Height int
	cells  [][]Cell
}

// DefaultRows is the built-in 10x9 maze layout
var DefaultRows = []string{
	"##########",
	"#........#",
	"#.######.#",
	"#......#.#",
	"#.#.##.#.#",
	"#.#..#.#.#",
	"#.##.#.#.#",
	"#......#.#",
	"##########",
}

// NewMaze builds a maze from rows of cells. The rows are copied.
func NewMaze(rows [][]Cell) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}

	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMaze, y, len(row), width)
		}
		cells[y] = append([]Cell(nil), row...)
	}

	return &Maze{
		Width:  width,
		Height: len(cells),
		cells:  cells,
	}, nil
}

// ParseMaze builds a maze from text rows of '#' and '.'
func ParseMaze(lines []string) (*Maze, error) {
	rows := make([][]Cell, 0, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for x, r := range line {
			cell, err := CellFromGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return NewMaze(rows)
}

// DefaultMaze returns the built-in maze
func DefaultMaze() *Maze {
	m, err := ParseMaze(DefaultRows)
	if err != nil {
		panic(err)
	}
	return m
}

// InBounds reports whether (x, y) lies inside the grid
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns the cell at (x, y). Coordinates outside the grid read as walls.
func (m *Maze) CellAt(x, y int) Cell {
	if !m.InBounds(x, y) {
		return CellWall
	}
	return m.cells[y][x]
}

// IsWalkable reports whether the player may stand on (x, y)
func (m *Maze) IsWalkable(x, y int) bool {
	return m.CellAt(x, y) == CellFloor
}

// Rows renders the maze back to its text form
func (m *Maze) Rows() []string {
	rows := make([]string, m.Height)
	for y := 0; y < m.Height; y++ {
		var b strings.Builder
		b.Grow(m.Width)
		for x := 0; x < m.Width; x++ {
			b.WriteRune(m.cells[y][x].Glyph())
		}
		rows[y] = b.String()
	}
	return rows
}
