package game

// Outcome is the result of one battle. The resolver never mutates the
// participants; the board applies survivorship and reveal flags afterwards.
type Outcome struct {
	AttackerSurvives bool
	DefenderSurvives bool
	AttackerRevealed bool
	DefenderRevealed bool
}

func (o Outcome) AttackerWins() bool { return o.AttackerSurvives && !o.DefenderSurvives }
func (o Outcome) DefenderWins() bool { return !o.AttackerSurvives && o.DefenderSurvives }
func (o Outcome) BothDie() bool      { return !o.AttackerSurvives && !o.DefenderSurvives }

// Resolve decides a battle between two pieces. Rules apply in strict
// precedence order, first match wins:
//
//  1. military police on either side: the opposing piece is force-revealed
//     and the battle falls through to a plain rank comparison (the MP fights
//     at its own rank 18 - this also short-circuits the bomb and raider
//     rules, so an MP loses to a bomb by rank)
//  2. defender is the flag: any attacker captures it
//  3. engineer vs bomb: the engineer wins, either direction
//  4. bomb vs anything else: the bomb wins
//  5. raider vs ranks 1-5: the raider wins, either direction
//  6. plain rank comparison: lower rank wins, equal ranks destroy each other
//
// Both participants come out revealed on every branch; the MP's forced
// reveal of its opponent is subsumed by that.
func Resolve(attacker, defender Piece) Outcome {
	if attacker.Category == MilitaryPolice || defender.Category == MilitaryPolice {
		return resolveByRank(attacker, defender)
	}

	if out, ok := resolveSpecial(attacker, defender); ok {
		return out
	}

	return resolveByRank(attacker, defender)
}

func resolveSpecial(attacker, defender Piece) (Outcome, bool) {
	// The flag loses to everything.
	if defender.Category == Flag {
		return outcome(true, false), true
	}

	// Engineer disarms bombs.
	if attacker.Category == Engineer && defender.Category.IsBomb() {
		return outcome(true, false), true
	}
	if defender.Category == Engineer && attacker.Category.IsBomb() {
		return outcome(false, true), true
	}

	// A bomb destroys any non-engineer attacker or defender. Bomb vs bomb
	// falls through to the rank rule (0 vs 0, mutual destruction).
	if attacker.Category.IsBomb() && !defender.Category.IsBomb() {
		return outcome(true, false), true
	}
	if defender.Category.IsBomb() && !attacker.Category.IsBomb() {
		return outcome(false, true), true
	}

	// Raiders beat the five strongest regular ranks.
	if attacker.Category.IsRaider() && defender.Category.IsTopRank() {
		return outcome(true, false), true
	}
	if defender.Category.IsRaider() && attacker.Category.IsTopRank() {
		return outcome(false, true), true
	}

	return Outcome{}, false
}

func resolveByRank(attacker, defender Piece) Outcome {
	ar, dr := attacker.Category.Rank(), defender.Category.Rank()
	switch {
	case ar < dr:
		return outcome(true, false)
	case ar > dr:
		return outcome(false, true)
	default:
		return outcome(false, false)
	}
}

func outcome(attackerSurvives, defenderSurvives bool) Outcome {
	return Outcome{
		AttackerSurvives: attackerSurvives,
		DefenderSurvives: defenderSurvives,
		AttackerRevealed: true,
		DefenderRevealed: true,
	}
}
