package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const noPiece = -1

// Combat summarizes the most recent battle for clients and logs. Names are
// display names; the reveal flags drive what the UI may show afterwards.
type Combat struct {
	Attacker         string `json:"attacker"`
	Defender         string `json:"defender"`
	AttackerSurvives bool   `json:"attacker_survives"`
	DefenderSurvives bool   `json:"defender_survives"`
	AttackerRevealed bool   `json:"attacker_revealed"`
	DefenderRevealed bool   `json:"defender_revealed"`
}

// Board is the game's state machine. All pieces live in a flat arena and
// the grid holds arena indices, so a clone is a copy of two slices with no
// shared references. Dead pieces leave the grid but stay in the arena.
type Board struct {
	pieces     []Piece              // arena: NewBoard fills 0-20 Red, 21-41 Blue
	grid       [Rows * Cols]int16   // arena index per cell, noPiece if empty
	current    Side
	over       bool
	winner     Side
	lastCombat *Combat
}

// NewBoard returns an empty board with both rosters created but not yet
// placed. Blue moves first.
func NewBoard() *Board {
	b := &Board{
		pieces:  append(newRoster(Red), newRoster(Blue)...),
		current: Blue,
		winner:  NoSide,
	}
	for i := range b.grid {
		b.grid[i] = noPiece
	}
	return b
}

func rosterBase(s Side) int {
	if s == Red {
		return 0
	}
	return PiecesPerSide
}

func cellIndex(p Position) int { return p.Row*Cols + p.Col }

// homeCells yields a side's 21 home cells in row-major order: rows 0-2 for
// Red, rows 6-8 for Blue.
func homeCells(s Side) []Position {
	start := 0
	if s == Blue {
		start = Rows - HomeRows
	}
	cells := make([]Position, 0, PiecesPerSide)
	for r := start; r < start+HomeRows; r++ {
		for c := 0; c < Cols; c++ {
			cells = append(cells, Position{Row: r, Col: c})
		}
	}
	return cells
}

// Setup places both rosters into their home rows. Red is always arranged
// randomly from rng. Blue follows blueOrder, a permutation of 0..20 mapping
// home cells (row-major) to roster indices; nil means a random arrangement.
func (b *Board) Setup(rng *rand.Rand, blueOrder []int) error {
	redOrder := rng.Perm(PiecesPerSide)

	if blueOrder == nil {
		blueOrder = rng.Perm(PiecesPerSide)
	} else if err := validateArrangement(blueOrder); err != nil {
		return err
	}

	for i, pos := range homeCells(Red) {
		b.grid[cellIndex(pos)] = int16(rosterBase(Red) + redOrder[i])
	}
	for i, pos := range homeCells(Blue) {
		b.grid[cellIndex(pos)] = int16(rosterBase(Blue) + blueOrder[i])
	}
	return nil
}

func validateArrangement(order []int) error {
	if len(order) != PiecesPerSide {
		return fmt.Errorf("arrangement has %d entries, want %d", len(order), PiecesPerSide)
	}
	var seen [PiecesPerSide]bool
	for _, idx := range order {
		if idx < 0 || idx >= PiecesPerSide {
			return fmt.Errorf("arrangement index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("arrangement index %d duplicated", idx)
		}
		seen[idx] = true
	}
	return nil
}

// Placement pins one piece to a cell when constructing a position directly.
type Placement struct {
	Pos      Position
	Category Category
	Owner    Side
	Revealed bool
}

// NewBoardFromPlacements builds a board holding exactly the given pieces,
// bypassing Setup. Used for puzzles and constructed positions.
func NewBoardFromPlacements(current Side, placements []Placement) (*Board, error) {
	b := &Board{current: current, winner: NoSide}
	for i := range b.grid {
		b.grid[i] = noPiece
	}
	for _, pl := range placements {
		if !pl.Pos.InBounds() {
			return nil, fmt.Errorf("placement %s out of bounds", pl.Pos)
		}
		cell := cellIndex(pl.Pos)
		if b.grid[cell] != noPiece {
			return nil, fmt.Errorf("cell %s occupied twice", pl.Pos)
		}
		b.pieces = append(b.pieces, Piece{
			Category: pl.Category,
			Owner:    pl.Owner,
			Alive:    true,
			Revealed: pl.Revealed,
		})
		b.grid[cell] = int16(len(b.pieces) - 1)
	}
	return b, nil
}

// PieceAt returns the piece occupying pos, if any.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	idx := b.grid[cellIndex(pos)]
	if idx == noPiece {
		return Piece{}, false
	}
	return b.pieces[idx], true
}

// LegalMovesFrom generates the legal moves for the piece at pos: the up-to-4
// orthogonal neighbors that are empty or enemy-occupied. Empty when there is
// no piece, the piece is dead or immovable, it is not the mover's turn, or
// the game is over.
func (b *Board) LegalMovesFrom(pos Position) []Move {
	if b.over {
		return nil
	}
	piece, ok := b.PieceAt(pos)
	if !ok || !piece.Alive || !piece.Category.CanMove() || piece.Owner != b.current {
		return nil
	}

	var moves []Move
	for _, d := range directions {
		to := Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}
		if !to.InBounds() {
			continue
		}
		if target, occupied := b.PieceAt(to); occupied && target.Owner == piece.Owner {
			continue
		}
		moves = append(moves, Move{From: pos, To: to})
	}
	return moves
}

// LegalMovesFor unions LegalMovesFrom over every living piece of side.
// Empty when it is not that side's turn.
func (b *Board) LegalMovesFor(side Side) []Move {
	if side != b.current {
		return nil
	}
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			moves = append(moves, b.LegalMovesFrom(Position{Row: r, Col: c})...)
		}
	}
	return moves
}

// Apply executes a move. Illegal moves are rejected with no mutation.
// On a battle the mover is the attacker; survivorship and reveal flags come
// from Resolve, and capturing the flag ends the game. The turn flips after
// every accepted move, even the final one.
func (b *Board) Apply(m Move) bool {
	if !b.isLegal(m) {
		return false
	}

	fromCell := cellIndex(m.From)
	toCell := cellIndex(m.To)
	moverIdx := b.grid[fromCell]
	targetIdx := b.grid[toCell]

	if targetIdx == noPiece {
		b.grid[toCell] = moverIdx
		b.grid[fromCell] = noPiece
		b.lastCombat = nil
		b.current = b.current.Other()
		return true
	}

	attacker := b.pieces[moverIdx]
	defender := b.pieces[targetIdx]
	out := Resolve(attacker, defender)

	b.lastCombat = &Combat{
		Attacker:         attacker.Category.Name(),
		Defender:         defender.Category.Name(),
		AttackerSurvives: out.AttackerSurvives,
		DefenderSurvives: out.DefenderSurvives,
		AttackerRevealed: out.AttackerRevealed,
		DefenderRevealed: out.DefenderRevealed,
	}

	if !out.AttackerSurvives {
		b.pieces[moverIdx].Alive = false
		b.grid[fromCell] = noPiece
	}
	if !out.DefenderSurvives {
		b.pieces[targetIdx].Alive = false
		b.grid[toCell] = noPiece
	}
	if out.AttackerSurvives {
		b.grid[toCell] = moverIdx
		b.grid[fromCell] = noPiece
	}
	if out.AttackerRevealed {
		b.pieces[moverIdx].Revealed = true
	}
	if out.DefenderRevealed {
		b.pieces[targetIdx].Revealed = true
	}

	if defender.Category == Flag && !out.DefenderSurvives {
		b.over = true
		b.winner = attacker.Owner
	}

	b.current = b.current.Other()
	return true
}

func (b *Board) isLegal(m Move) bool {
	for _, legal := range b.LegalMovesFrom(m.From) {
		if legal == m {
			return true
		}
	}
	return false
}

func (b *Board) CurrentPlayer() Side { return b.current }
func (b *Board) Over() bool          { return b.over }

// Winner returns the capturing side once the game is over, NoSide before.
func (b *Board) Winner() Side { return b.winner }

// LastCombat returns a copy of the most recent battle summary, nil if the
// last accepted move was a plain relocation.
func (b *Board) LastCombat() *Combat {
	if b.lastCombat == nil {
		return nil
	}
	c := *b.lastCombat
	return &c
}

// Clone returns a deep, alias-free copy usable as an independent branch.
func (b *Board) Clone() *Board {
	c := &Board{
		pieces:  make([]Piece, len(b.pieces)),
		grid:    b.grid,
		current: b.current,
		over:    b.over,
		winner:  b.winner,
	}
	copy(c.pieces, b.pieces)
	if b.lastCombat != nil {
		combat := *b.lastCombat
		c.lastCombat = &combat
	}
	return c
}

// HiddenPositions lists cells holding living, unrevealed pieces of the
// observer's opponent, in row-major order. This is the information set a
// determinization resamples.
func (b *Board) HiddenPositions(observer Side) []Position {
	enemy := observer.Other()
	var hidden []Position
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pos := Position{Row: r, Col: c}
			if p, ok := b.PieceAt(pos); ok && p.Owner == enemy && p.Alive && !p.Revealed {
				hidden = append(hidden, pos)
			}
		}
	}
	return hidden
}

// AssignCategory reassigns the category of the piece at pos. It exists for
// information-set sampling: a determinized clone permutes hidden identities
// without inventing new information. Returns false if the cell is empty.
func (b *Board) AssignCategory(pos Position, c Category) bool {
	if !pos.InBounds() {
		return false
	}
	idx := b.grid[cellIndex(pos)]
	if idx == noPiece {
		return false
	}
	b.pieces[idx].Category = c
	return true
}

// AliveCount tallies a side's living pieces.
func (b *Board) AliveCount(side Side) int {
	count := 0
	for _, p := range b.pieces {
		if p.Owner == side && p.Alive {
			count++
		}
	}
	return count
}
