package server

import "flagfall/game"

type newGameRequest struct {
	Difficulty  string `json:"ai_difficulty"` // "basic" or "advanced"
	Arrangement []int  `json:"arrangement"`   // optional permutation of 0..20
}

type moveRequest struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

func (r moveRequest) move() game.Move {
	return game.Move{
		From: game.Position{Row: r.FromRow, Col: r.FromCol},
		To:   game.Position{Row: r.ToRow, Col: r.ToCol},
	}
}

type moveDTO struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

func toMoveDTO(m game.Move) moveDTO {
	return moveDTO{
		FromRow: m.From.Row,
		FromCol: m.From.Col,
		ToRow:   m.To.Row,
		ToCol:   m.To.Col,
	}
}

// gameResponse is the full client-facing state, always projected from
// Blue's (the human's) perspective.
type gameResponse struct {
	GameID        string             `json:"game_id"`
	Board         [][]*game.CellView `json:"board"`
	CurrentPlayer game.Side          `json:"current_player"`
	GameOver      bool               `json:"game_over"`
	Winner        *game.Side         `json:"winner"`
	LastCombat    *game.Combat       `json:"last_combat"`
	ValidMoves    []moveDTO          `json:"valid_moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toGameResponse(s *Session) gameResponse {
	board := s.Board

	var winner *game.Side
	if board.Over() {
		w := board.Winner()
		winner = &w
	}

	valid := []moveDTO{}
	if !board.Over() && board.CurrentPlayer() == game.Blue {
		for _, mv := range board.LegalMovesFor(game.Blue) {
			valid = append(valid, toMoveDTO(mv))
		}
	}

	return gameResponse{
		GameID:        s.ID,
		Board:         board.View(game.Blue),
		CurrentPlayer: board.CurrentPlayer(),
		GameOver:      board.Over(),
		Winner:        winner,
		LastCombat:    board.LastCombat(),
		ValidMoves:    valid,
	}
}
