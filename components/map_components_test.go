package components

import (
	"errors"
	"testing"
)

func TestDefaultMazeDimensions(t *testing.T) {
	m := DefaultMaze()
	if m.Width != 10 || m.Height != 9 {
		t.Fatalf("DefaultMaze() = %dx%d, want 10x9", m.Width, m.Height)
	}
}

func TestDefaultMazeOuterRingIsWall(t *testing.T) {
	m := DefaultMaze()
	for x := 0; x < m.Width; x++ {
		if m.CellAt(x, 0) != CellWall || m.CellAt(x, m.Height-1) != CellWall {
			t.Errorf("column %d: border is not wall", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.CellAt(0, y) != CellWall || m.CellAt(m.Width-1, y) != CellWall {
			t.Errorf("row %d: border is not wall", y)
		}
	}
}

func TestCellAtMatchesLiteral(t *testing.T) {
	m := DefaultMaze()
	for y, row := range DefaultRows {
		for x, r := range row {
			want := CellWall
			if r == GlyphFloor {
				want = CellFloor
			}
			if got := m.CellAt(x, y); got != want {
				t.Errorf("CellAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCellAtOutOfBoundsIsWall(t *testing.T) {
	m := DefaultMaze()
	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 1},
		{"above", 1, -1},
		{"right", m.Width, 1},
		{"below", 1, m.Height},
		{"far", 1000, -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m.InBounds(tt.x, tt.y) {
				t.Fatalf("InBounds(%d, %d) = true", tt.x, tt.y)
			}
			if got := m.CellAt(tt.x, tt.y); got != CellWall {
				t.Errorf("CellAt(%d, %d) = %v, want wall", tt.x, tt.y, got)
			}
		})
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"empty", nil, ErrEmptyMaze},
		{"empty row", []string{""}, ErrEmptyMaze},
		{"ragged", []string{"###", "#.", "###"}, ErrRaggedMaze},
		{"unknown glyph", []string{"###", "#x#", "###"}, ErrUnknownCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze(tt.lines)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseMaze() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMazeAcceptsOpenBorder(t *testing.T) {
	m, err := ParseMaze([]string{"..", ".#"})
	if err != nil {
		t.Fatalf("ParseMaze() error = %v", err)
	}
	if !m.IsWalkable(0, 0) || m.IsWalkable(1, 1) {
		t.Error("unexpected walkability on open-border maze")
	}
}

func TestNewMazeCopiesRows(t *testing.T) {
	rows := [][]Cell{{CellFloor, CellFloor}}
	m, err := NewMaze(rows)
	if err != nil {
		t.Fatalf("NewMaze() error = %v", err)
	}
	rows[0][0] = CellWall
	if m.CellAt(0, 0) != CellFloor {
		t.Error("maze changed after caller mutated its input")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	m := DefaultMaze()
	got := m.Rows()
	if len(got) != len(DefaultRows) {
		t.Fatalf("Rows() len = %d, want %d", len(got), len(DefaultRows))
	}
	for i := range got {
		if got[i] != DefaultRows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], DefaultRows[i])
		}
	}
}

func TestNewGameState(t *testing.T) {
	m := DefaultMaze()

	state, err := NewGameState(m, DefaultStart)
	if err != nil {
		t.Fatalf("NewGameState() error = %v", err)
	}
	if state.Player.Position != DefaultStart {
		t.Errorf("player at %v, want %v", state.Player.Position, DefaultStart)
	}
	if !state.PlayerOnFloor() {
		t.Error("player does not start on floor")
	}

	if _, err := NewGameState(m, Position{X: 0, Y: 0}); !errors.Is(err, ErrStartOnWall) {
		t.Errorf("start on wall: error = %v, want %v", err, ErrStartOnWall)
	}
	if _, err := NewGameState(m, Position{X: -3, Y: 4}); !errors.Is(err, ErrStartOnWall) {
		t.Errorf("start out of bounds: error = %v, want %v", err, ErrStartOnWall)
	}
}

func TestTileMappingBackground(t *testing.T) {
	mapping := NewTileMapping()
	mapping.SetBackground(CellWall, PlayerColor)

	def := mapping.GetTileDefinition(CellWall)
	if def.Glyph != GlyphWall {
		t.Errorf("wall glyph = %q, want %q", def.Glyph, GlyphWall)
	}
	if def.BG != PlayerColor {
		t.Errorf("wall background = %v, want %v", def.BG, PlayerColor)
	}
	if got := mapping.GetTileDefinition(Cell(42)).Glyph; got != '?' {
		t.Errorf("undefined cell glyph = %q, want '?'", got)
	}
}
