package searcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"flagfall/game"
)

type Option func(m *MCTS)

// MCTS searches under hidden information by determinization: the true board
// is resampled into several fully-observable guesses, a UCT search runs on
// each, and the per-sample recommendations vote on the final move. Each
// sample owns an isolated clone, so samples run on independent goroutines.
type MCTS struct {
	duration time.Duration // wall-clock budget per sample
	samples  int           // number of determinizations
	maxPlies int           // playout cap before calling a draw
	seed     uint64
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithSamples(samples int) Option {
	return func(m *MCTS) {
		if samples > 0 {
			m.samples = samples
		}
	}
}

func WithPlayoutCap(plies int) Option {
	return func(m *MCTS) {
		if plies > 0 {
			m.maxPlies = plies
		}
	}
}

// WithSeed fixes the random source for reproducible searches.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		duration: 2 * time.Second,
		samples:  3,
		maxPlies: 100,
		seed:     uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove runs one full determinized search for side and returns the
// winning vote. With an empty tally it falls back to a uniformly random
// legal move; false means no legal move exists at all.
func (m *MCTS) ChooseMove(ctx context.Context, b *game.Board, side game.Side) (game.Move, bool) {
	legal := b.LegalMovesFor(side)
	if len(legal) == 0 {
		return game.Move{}, false
	}

	var (
		mu    sync.Mutex
		votes = make(map[game.Move]int)
		order []game.Move // tally iteration order, for a stable tie-break
	)

	var wg sync.WaitGroup
	for i := 0; i < m.samples; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed))
			sample := Determinize(b, side, rng)
			mv, ok := m.searchOnce(ctx, sample, side, rng)
			if !ok {
				return
			}

			mu.Lock()
			if _, seen := votes[mv]; !seen {
				order = append(order, mv)
			}
			votes[mv]++
			mu.Unlock()
		}(m.seed + uint64(i))
	}
	wg.Wait()

	var best game.Move
	bestVotes := 0
	for _, mv := range order {
		if votes[mv] > bestVotes {
			bestVotes = votes[mv]
			best = mv
		}
	}
	if bestVotes > 0 {
		log.Debug().Stringer("move", best).Int("votes", bestVotes).Int("samples", m.samples).
			Msg("determinization vote complete")
		return best, true
	}

	// No sample produced a recommendation within budget
	rng := rand.New(rand.NewSource(m.seed))
	return legal[rng.Intn(len(legal))], true
}

// searchOnce runs selection, expansion, simulation and backpropagation on
// one determinized board until the budget or ctx expires, then returns the
// most-visited root move.
func (m *MCTS) searchOnce(ctx context.Context, b *game.Board, side game.Side, rng *rand.Rand) (game.Move, bool) {
	t := newTree(b, side)
	deadline := time.Now().Add(m.duration)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return t.bestMove()
		default:
		}

		id := t.selectNode()
		id = t.expand(id, rng)
		winner := m.playout(t.nodes[id].state, rng)
		t.backup(id, winner)
	}

	return t.bestMove()
}

// playout plays uncontrolled moves for both sides until the game ends or
// the ply cap is hit. Returns the winner, or NoSide as the draw sentinel on
// a cap or a stalled position.
func (m *MCTS) playout(state *game.Board, rng *rand.Rand) game.Side {
	sim := state.Clone()
	for plies := 0; plies < m.maxPlies && !sim.Over(); plies++ {
		moves := sim.LegalMovesFor(sim.CurrentPlayer())
		if len(moves) == 0 {
			return game.NoSide
		}
		sim.Apply(pickPlayoutMove(sim, moves, rng))
	}
	if sim.Over() {
		return sim.Winner()
	}
	return game.NoSide
}

// pickPlayoutMove takes any immediate flag capture, otherwise a uniformly
// random move. The one heuristic the playout carries.
func pickPlayoutMove(b *game.Board, moves []game.Move, rng *rand.Rand) game.Move {
	for _, mv := range moves {
		if target, ok := b.PieceAt(mv.To); ok && target.Category == game.Flag {
			return mv
		}
	}
	return moves[rng.Intn(len(moves))]
}
