package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func piece(c Category, owner Side) Piece {
	return Piece{Category: c, Owner: owner, Alive: true}
}

var regulars = []Category{
	Marshal, General, LieutenantGeneral, MajorGeneral, Brigadier,
	Colonel, LieutenantColonel, Major, Captain, FirstLieutenant,
	SecondLieutenant, MasterSergeant, Sergeant, Corporal,
}

func TestResolveRankComparison(t *testing.T) {
	t.Run("lower rank wins in both directions", func(t *testing.T) {
		for i, stronger := range regulars {
			for _, weaker := range regulars[i+1:] {
				out := Resolve(piece(stronger, Red), piece(weaker, Blue))
				require.True(t, out.AttackerWins(),
					"%v attacking %v should win", stronger, weaker)

				out = Resolve(piece(weaker, Blue), piece(stronger, Red))
				require.True(t, out.DefenderWins(),
					"%v defending against %v should win", stronger, weaker)
			}
		}
	})

	t.Run("equal ranks destroy each other", func(t *testing.T) {
		for _, c := range regulars {
			out := Resolve(piece(c, Red), piece(c, Blue))
			require.True(t, out.BothDie(), "%v vs %v should be mutual destruction", c, c)
			require.True(t, out.AttackerRevealed)
			require.True(t, out.DefenderRevealed)
		}
	})
}

func TestResolveFlag(t *testing.T) {
	// Any attacker captures an undefended flag, even the weakest.
	attackers := append([]Category{}, regulars...)
	attackers = append(attackers, BombA, Engineer, RaiderA, MilitaryPolice)
	for _, c := range attackers {
		out := Resolve(piece(c, Blue), piece(Flag, Red))
		require.True(t, out.AttackerWins(), "%v should capture the flag", c)
	}
}

func TestResolveBombs(t *testing.T) {
	t.Run("engineer disarms bomb in both directions", func(t *testing.T) {
		out := Resolve(piece(Engineer, Blue), piece(BombA, Red))
		require.True(t, out.AttackerWins())

		out = Resolve(piece(BombB, Red), piece(Engineer, Blue))
		require.True(t, out.DefenderWins())
	})

	t.Run("bomb beats every non-engineer mover", func(t *testing.T) {
		for _, c := range regulars {
			out := Resolve(piece(c, Blue), piece(BombA, Red))
			require.True(t, out.DefenderWins(), "bomb should destroy %v", c)

			out = Resolve(piece(BombA, Red), piece(c, Blue))
			require.True(t, out.AttackerWins(), "bomb should destroy %v", c)
		}
		out := Resolve(piece(RaiderA, Blue), piece(BombB, Red))
		require.True(t, out.DefenderWins(), "bomb should destroy a raider")
	})

	t.Run("bomb vs bomb is mutual destruction", func(t *testing.T) {
		out := Resolve(piece(BombA, Blue), piece(BombB, Red))
		require.True(t, out.BothDie())
	})
}

func TestResolveRaider(t *testing.T) {
	topRanks := []Category{Marshal, General, LieutenantGeneral, MajorGeneral, Brigadier}

	t.Run("raider beats the five strongest ranks either direction", func(t *testing.T) {
		for _, c := range topRanks {
			out := Resolve(piece(RaiderA, Blue), piece(c, Red))
			require.True(t, out.AttackerWins(), "raider attacking %v should win", c)

			out = Resolve(piece(c, Red), piece(RaiderB, Blue))
			require.True(t, out.DefenderWins(), "raider defending against %v should win", c)
		}
	})

	t.Run("raider falls back to rank rule otherwise", func(t *testing.T) {
		// Rank 17 loses to any regular rank 6-14.
		out := Resolve(piece(RaiderA, Blue), piece(Colonel, Red))
		require.True(t, out.DefenderWins())

		out = Resolve(piece(RaiderA, Blue), piece(RaiderB, Red))
		require.True(t, out.BothDie(), "raider vs raider is an equal-rank trade")
	})
}

func TestResolveMilitaryPolice(t *testing.T) {
	t.Run("always reveals the opposing piece", func(t *testing.T) {
		cases := []struct {
			name               string
			attacker, defender Piece
		}{
			{"MP attacks strong rank", piece(MilitaryPolice, Blue), piece(Marshal, Red)},
			{"MP attacks weak rank", piece(MilitaryPolice, Blue), piece(Corporal, Red)},
			{"MP defends", piece(Corporal, Red), piece(MilitaryPolice, Blue)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				out := Resolve(tc.attacker, tc.defender)
				require.True(t, out.AttackerRevealed, "battle outcome must reveal the attacker")
				require.True(t, out.DefenderRevealed, "battle outcome must reveal the defender")
			})
		}
	})

	t.Run("fights at rank 18, no auto-win", func(t *testing.T) {
		out := Resolve(piece(MilitaryPolice, Blue), piece(Corporal, Red))
		require.True(t, out.DefenderWins(), "rank 14 beats rank 18")
	})

	t.Run("short-circuits the bomb rule", func(t *testing.T) {
		// The MP branch resolves by rank, so the bomb's sentinel 0 wins.
		out := Resolve(piece(MilitaryPolice, Blue), piece(BombA, Red))
		require.True(t, out.DefenderWins())
	})

	t.Run("still captures a defending flag by rank", func(t *testing.T) {
		out := Resolve(piece(MilitaryPolice, Blue), piece(Flag, Red))
		require.True(t, out.AttackerWins(), "rank 18 beats the flag's 19")
	})
}
