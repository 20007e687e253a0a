package searcher

import (
	"golang.org/x/exp/rand"

	"flagfall/game"
)

// Determinize returns a fully-observable clone of b for the observer: every
// living, unrevealed enemy piece has its category reassigned by shuffling
// the multiset of categories still unseen by the observer. Revealed and
// dead pieces are excluded from the pool, so per-category counts among the
// hidden population are preserved - this is a permutation of the
// information set, not invention of new information. The observer's own
// pieces are untouched. With no hidden enemy pieces the clone comes back
// unmodified.
func Determinize(b *game.Board, observer game.Side, rng *rand.Rand) *game.Board {
	clone := b.Clone()

	hidden := clone.HiddenPositions(observer)
	if len(hidden) == 0 {
		return clone
	}

	pool := make([]game.Category, len(hidden))
	for i, pos := range hidden {
		piece, _ := clone.PieceAt(pos)
		pool[i] = piece.Category
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for i, pos := range hidden {
		clone.AssignCategory(pos, pool[i])
	}
	return clone
}
