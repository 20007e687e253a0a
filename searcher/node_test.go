package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flagfall/game"
)

// twoMoverBoard: one blue mover in a corner with exactly two legal moves.
func twoMoverBoard(t *testing.T) *game.Board {
	return mustBoard(t, game.Blue, []game.Placement{
		{Pos: game.Position{Row: 8, Col: 0}, Category: game.Captain, Owner: game.Blue},
		{Pos: game.Position{Row: 0, Col: 0}, Category: game.Captain, Owner: game.Red},
	})
}

func TestTreeExpansion(t *testing.T) {
	tr := newTree(twoMoverBoard(t), game.Blue)

	root := &tr.nodes[rootID]
	require.Len(t, root.untried, 2, "the root starts with every legal move untried")
	require.Empty(t, root.children)

	rng := testRNG(1)
	first := tr.expand(rootID, rng)
	require.NotEqual(t, rootID, first)
	require.Len(t, tr.nodes[rootID].untried, 1)
	require.Equal(t, rootID, tr.nodes[first].parent)
	require.Equal(t, game.Red, tr.nodes[first].state.CurrentPlayer(),
		"the child state reflects the applied move")

	second := tr.expand(rootID, rng)
	require.Empty(t, tr.nodes[rootID].untried)
	require.ElementsMatch(t, []nodeID{first, second}, tr.nodes[rootID].children)

	// A fully expanded node expands to itself.
	require.Equal(t, rootID, tr.expand(rootID, rng))
}

func TestTreeSelection(t *testing.T) {
	tr := newTree(twoMoverBoard(t), game.Blue)
	rng := testRNG(1)

	require.Equal(t, rootID, tr.selectNode(), "a root with untried moves selects itself")

	first := tr.expand(rootID, rng)
	second := tr.expand(rootID, rng)
	tr.backup(first, game.Blue)

	require.Equal(t, second, tr.selectNode(),
		"an unvisited child is selected before any UCT comparison")

	// Give second many losing visits; first's win rate dominates.
	for i := 0; i < 5; i++ {
		tr.backup(second, game.Red)
	}
	require.Equal(t, first, tr.selectNode(),
		"selection descends to the max-UCT child and stops at its untried moves")
}

func TestBackupIsFixedAgent(t *testing.T) {
	tr := newTree(twoMoverBoard(t), game.Blue)
	rng := testRNG(1)
	child := tr.expand(rootID, rng)
	grandchild := tr.expand(child, rng)

	tr.backup(grandchild, game.Blue)
	tr.backup(grandchild, game.Red)
	tr.backup(grandchild, game.NoSide)

	// Blue win 1.0 + red win 0.0 + draw 0.5, identical at every depth: the
	// reward is credited to the searching side, never flipped per ply.
	for _, id := range []nodeID{rootID, child, grandchild} {
		require.Equal(t, 3, tr.nodes[id].visits)
		require.InDelta(t, 1.5, tr.nodes[id].wins, 1e-9)
	}
}

func TestBestMove(t *testing.T) {
	tr := newTree(twoMoverBoard(t), game.Blue)
	rng := testRNG(1)

	_, ok := tr.bestMove()
	require.False(t, ok, "no recommendation before any expansion")

	first := tr.expand(rootID, rng)
	second := tr.expand(rootID, rng)
	tr.backup(second, game.Blue)
	tr.backup(second, game.Blue)
	tr.backup(first, game.Blue)

	mv, ok := tr.bestMove()
	require.True(t, ok)
	require.Equal(t, tr.nodes[second].move, mv, "most-visited child wins")
}

func TestUCTScore(t *testing.T) {
	// q/n + sqrt(normalizer/n) with q=3, n=4, normalizer=16: 0.75 + 2.
	require.InDelta(t, 2.75, uctScore(3, 4, 16), 1e-9)
	require.Panics(t, func() { uctScore(1, 0, 1) })
}
