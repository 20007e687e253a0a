package agent

import (
	"context"

	"flagfall/game"
	"flagfall/searcher"
)

// Search is the MCTS-backed opponent.
type Search struct {
	mcts *searcher.MCTS
}

func NewSearch(options ...searcher.Option) *Search {
	return &Search{mcts: searcher.NewMCTS(options...)}
}

func (s *Search) Name() string { return "mcts" }

func (s *Search) ChooseMove(ctx context.Context, b *game.Board, side game.Side) (game.Move, bool) {
	return s.mcts.ChooseMove(ctx, b, side)
}
