package game

import "fmt"

// Board dimensions. Each side owns three home rows: Red rows 0-2, Blue rows 6-8.
const (
	Rows = 9
	Cols = 7

	HomeRows      = 3
	PiecesPerSide = HomeRows * Cols // 21
)

// Side identifies one of the two players.
type Side int8

const (
	NoSide Side = -1
	Red    Side = 0 // Top of the board, rows 0-2
	Blue   Side = 1 // Bottom of the board, rows 6-8
)

func (s Side) Other() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

// Position is a cell on the 9x7 grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Adjacent reports orthogonal adjacency (Manhattan distance exactly 1).
func (p Position) Adjacent(q Position) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a single-step relocation between two cells. Value type, usable as
// a map key.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}

// orthogonal step offsets, in generation order
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
