package agent

import (
	"context"

	"flagfall/game"
)

// Agent is the capability every opponent implements, search-based or not.
type Agent interface {
	// ChooseMove returns the agent's move for side on the current board.
	// false means the side has no legal move at all.
	ChooseMove(ctx context.Context, b *game.Board, side game.Side) (game.Move, bool)
	Name() string
}
