package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flagfall/game"
)

func TestChooseMoveTakesTheFlag(t *testing.T) {
	// Blue stands next to the revealed red flag while red threatens to
	// capture blue's flag on the reply. Everything is revealed, so every
	// determinization is the true position and only the immediate capture
	// avoids the loss.
	b := mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 4, Col: 3}, Category: game.Captain, Owner: game.Blue, Revealed: true},
		{Pos: game.Position{Row: 3, Col: 3}, Category: game.Flag, Owner: game.Red, Revealed: true},
		{Pos: game.Position{Row: 8, Col: 0}, Category: game.Flag, Owner: game.Blue, Revealed: true},
		{Pos: game.Position{Row: 7, Col: 0}, Category: game.Marshal, Owner: game.Red, Revealed: true},
	})

	m := NewMCTS(
		WithDuration(100*time.Millisecond),
		WithSamples(1),
		WithSeed(11),
	)
	mv, ok := m.ChooseMove(context.Background(), b, game.Blue)

	require.True(t, ok)
	require.Equal(t, game.Move{
		From: game.Position{Row: 4, Col: 3},
		To:   game.Position{Row: 3, Col: 3},
	}, mv)
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	b := mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 8, Col: 0}, Category: game.BombA, Owner: game.Blue},
		{Pos: game.Position{Row: 8, Col: 1}, Category: game.Flag, Owner: game.Blue},
		{Pos: game.Position{Row: 0, Col: 0}, Category: game.Captain, Owner: game.Red},
	})

	m := NewMCTS(WithDuration(10*time.Millisecond), WithSamples(1), WithSeed(1))
	_, ok := m.ChooseMove(context.Background(), b, game.Blue)
	require.False(t, ok, "immovable pieces only means no recommendation")

	_, ok = m.ChooseMove(context.Background(), b, game.Red)
	require.False(t, ok, "out of turn means no legal moves at all")
}

func TestChooseMoveCancelledContext(t *testing.T) {
	b := mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 4, Col: 3}, Category: game.Captain, Owner: game.Blue},
		{Pos: game.Position{Row: 0, Col: 0}, Category: game.Captain, Owner: game.Red},
	})
	legal := b.LegalMovesFor(game.Blue)
	require.NotEmpty(t, legal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMCTS(WithDuration(10*time.Second), WithSamples(2), WithSeed(5))
	start := time.Now()
	mv, ok := m.ChooseMove(ctx, b, game.Blue)

	require.True(t, ok, "cancellation still yields some legal move")
	require.Contains(t, legal, mv)
	require.Less(t, time.Since(start), 5*time.Second,
		"a cancelled context must cut the search short of its budget")
}

func TestOptionDefaultsAndGuards(t *testing.T) {
	m := NewMCTS(WithDuration(-1), WithSamples(0), WithPlayoutCap(-3))
	require.Equal(t, 2*time.Second, m.duration, "non-positive durations are ignored")
	require.Equal(t, 3, m.samples)
	require.Equal(t, 100, m.maxPlies)
}

func TestPlayoutPrefersFlagCapture(t *testing.T) {
	b := mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 4, Col: 3}, Category: game.Captain, Owner: game.Blue},
		{Pos: game.Position{Row: 3, Col: 3}, Category: game.Flag, Owner: game.Red},
	})
	moves := b.LegalMovesFor(game.Blue)

	for seed := uint64(0); seed < 10; seed++ {
		mv := pickPlayoutMove(b, moves, testRNG(seed))
		require.Equal(t, game.Position{Row: 3, Col: 3}, mv.To,
			"a flag capture is always taken over a random move")
	}
}

func TestPlayoutDrawSentinel(t *testing.T) {
	// Two distant movers and no flags: a tiny ply cap expires with the game
	// still in progress, which scores as the draw sentinel.
	b := mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 8, Col: 0}, Category: game.Captain, Owner: game.Blue},
		{Pos: game.Position{Row: 0, Col: 6}, Category: game.Captain, Owner: game.Red},
	})

	m := NewMCTS(WithPlayoutCap(4), WithSeed(3))
	winner := m.playout(b, testRNG(3))
	require.Equal(t, game.NoSide, winner)
}
