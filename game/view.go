package game

// CellView is the per-cell serialization contract handed to clients. For a
// redacted enemy piece only the owner and aliveness survive: name "unknown",
// category "HIDDEN", rank null.
type CellView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Owner    Side   `json:"owner"`
	Alive    bool   `json:"alive"`
	Revealed bool   `json:"revealed"`
	Rank     *int   `json:"rank"`
}

// View projects the board from one side's perspective: full detail for that
// side's own pieces and anything already revealed, a redacted record for
// unrevealed enemy pieces, nil for empty cells.
func (b *Board) View(observer Side) [][]*CellView {
	view := make([][]*CellView, Rows)
	for r := 0; r < Rows; r++ {
		view[r] = make([]*CellView, Cols)
		for c := 0; c < Cols; c++ {
			piece, ok := b.PieceAt(Position{Row: r, Col: c})
			if !ok {
				continue
			}
			if piece.Owner == observer || piece.Revealed {
				rank := piece.Category.Rank()
				view[r][c] = &CellView{
					Name:     piece.Category.Name(),
					Category: piece.Category.String(),
					Owner:    piece.Owner,
					Alive:    piece.Alive,
					Revealed: piece.Revealed,
					Rank:     &rank,
				}
			} else {
				view[r][c] = &CellView{
					Name:     "unknown",
					Category: "HIDDEN",
					Owner:    piece.Owner,
					Alive:    piece.Alive,
					Revealed: false,
					Rank:     nil,
				}
			}
		}
	}
	return view
}
