package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"flagfall/agent"
	"flagfall/game"
)

// Result is the outcome of one local game. Winner is NoSide on a draw
// (turn cap reached, stall, or cancellation).
type Result struct {
	Winner     game.Side
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
}

func (r Result) Duration() time.Duration { return r.EndTime.Sub(r.StartTime) }

// Local drives a full game between two agents on a live board.
type Local struct {
	board    *game.Board
	agents   map[game.Side]agent.Agent
	maxTurns int
}

func NewLocal(b *game.Board, red, blue agent.Agent, maxTurns int) *Local {
	if maxTurns <= 0 {
		panic("need a positive turn cap")
	}
	return &Local{
		board:    b,
		agents:   map[game.Side]agent.Agent{game.Red: red, game.Blue: blue},
		maxTurns: maxTurns,
	}
}

// Run loops until a winner, a stall, the turn cap, or ctx cancellation.
// A side whose agent finds no legal move stalls the game into a draw; the
// board itself never forces a pass or a loss.
func (e *Local) Run(ctx context.Context) Result {
	result := Result{Winner: game.NoSide, StartTime: time.Now()}

	log.Info().Stringer("starting", e.board.CurrentPlayer()).Msg("local game starting")

	for !e.board.Over() && result.TotalMoves < e.maxTurns {
		if ctx.Err() != nil {
			break
		}

		side := e.board.CurrentPlayer()
		mover := e.agents[side]

		mv, ok := mover.ChooseMove(ctx, e.board, side)
		if !ok {
			log.Info().Stringer("side", side).Msg("no legal moves, game drawn")
			break
		}
		if !e.board.Apply(mv) {
			// Agents are not trusted blindly: fall back to the first
			// legal move rather than corrupting the game.
			legal := e.board.LegalMovesFor(side)
			if len(legal) == 0 {
				break
			}
			log.Warn().Stringer("side", side).Stringer("move", mv).
				Msgf("agent %s returned an illegal move, substituting", mover.Name())
			e.board.Apply(legal[0])
		}
		result.TotalMoves++
	}

	if e.board.Over() {
		result.Winner = e.board.Winner()
	}
	result.EndTime = time.Now()

	log.Info().Stringer("winner", result.Winner).Int("moves", result.TotalMoves).
		Msg("local game over")
	return result
}
