package agent

import (
	"context"
	"sort"

	"golang.org/x/exp/rand"

	"flagfall/game"
)

// Basic is the rule-of-thumb opponent: no search, just priority-ordered
// move filters. The first non-empty filter wins:
// capture the enemy flag, take a battle it is certain to win, guard its own
// flag, attack where it cannot lose outright, push forward, move at random.
type Basic struct {
	rng *rand.Rand
}

func NewBasic(rng *rand.Rand) *Basic {
	return &Basic{rng: rng}
}

func (a *Basic) Name() string { return "basic" }

func (a *Basic) ChooseMove(_ context.Context, b *game.Board, side game.Side) (game.Move, bool) {
	moves := b.LegalMovesFor(side)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	if captures := flagCaptures(b, moves); len(captures) > 0 {
		return a.pick(captures), true
	}
	if winning := winningBattles(b, moves); len(winning) > 0 {
		return winning[0], true
	}
	if guards := flagGuards(b, moves, side); len(guards) > 0 {
		return a.pick(guards), true
	}
	if attacks := safeAttacks(b, moves); len(attacks) > 0 {
		return a.pick(attacks), true
	}
	if forward := forwardMoves(b, moves, side); len(forward) > 0 {
		return a.pick(forward), true
	}
	return a.pick(moves), true
}

func (a *Basic) pick(moves []game.Move) game.Move {
	return moves[a.rng.Intn(len(moves))]
}

func flagCaptures(b *game.Board, moves []game.Move) []game.Move {
	var captures []game.Move
	for _, mv := range moves {
		if target, ok := b.PieceAt(mv.To); ok && target.Category == game.Flag {
			captures = append(captures, mv)
		}
	}
	return captures
}

// winningBattles returns attacks the mover wins outright, strongest victim
// first. An unrevealed victim counts as a mid-rank guess.
func winningBattles(b *game.Board, moves []game.Move) []game.Move {
	const unknownRank = 10

	type scored struct {
		move game.Move
		rank int
	}
	var winning []scored
	for _, mv := range moves {
		target, ok := b.PieceAt(mv.To)
		if !ok {
			continue
		}
		attacker, _ := b.PieceAt(mv.From)
		if !game.Resolve(attacker, target).AttackerWins() {
			continue
		}
		rank := unknownRank
		if target.Revealed {
			rank = target.Category.Rank()
		}
		winning = append(winning, scored{move: mv, rank: rank})
	}

	sort.SliceStable(winning, func(i, j int) bool { return winning[i].rank < winning[j].rank })
	ordered := make([]game.Move, len(winning))
	for i, s := range winning {
		ordered[i] = s.move
	}
	return ordered
}

// flagGuards returns moves ending next to the mover's own flag.
func flagGuards(b *game.Board, moves []game.Move, side game.Side) []game.Move {
	flagPos, ok := findFlag(b, side)
	if !ok {
		return nil
	}
	var guards []game.Move
	for _, mv := range moves {
		if mv.To.Adjacent(flagPos) {
			guards = append(guards, mv)
		}
	}
	return guards
}

// safeAttacks returns attacks that at worst trade: against an unrevealed
// target only a rank-8-or-stronger attacker qualifies; against a revealed
// one any battle the defender does not win outright.
func safeAttacks(b *game.Board, moves []game.Move) []game.Move {
	var attacks []game.Move
	for _, mv := range moves {
		target, ok := b.PieceAt(mv.To)
		if !ok {
			continue
		}
		attacker, _ := b.PieceAt(mv.From)
		if !target.Revealed {
			if !attacker.Category.IsSpecial() && attacker.Category.Rank() <= 8 {
				attacks = append(attacks, mv)
			}
			continue
		}
		if !game.Resolve(attacker, target).DefenderWins() {
			attacks = append(attacks, mv)
		}
	}
	return attacks
}

// forwardMoves returns relocations into empty cells toward the enemy home
// rows: Red advances down the board, Blue up.
func forwardMoves(b *game.Board, moves []game.Move, side game.Side) []game.Move {
	direction := 1
	if side == game.Blue {
		direction = -1
	}
	var forward []game.Move
	for _, mv := range moves {
		if _, occupied := b.PieceAt(mv.To); occupied {
			continue
		}
		if (mv.To.Row-mv.From.Row)*direction > 0 {
			forward = append(forward, mv)
		}
	}
	return forward
}

func findFlag(b *game.Board, side game.Side) (game.Position, bool) {
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			pos := game.Position{Row: r, Col: c}
			if p, ok := b.PieceAt(pos); ok && p.Owner == side && p.Category == game.Flag {
				return pos, true
			}
		}
	}
	return game.Position{}, false
}
