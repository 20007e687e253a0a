package searcher

import "math"

// Hyperparameters for MCTS

// CSquared is the squared exploration constant, C = sqrt(2).
const CSquared = 2.0

// Rewards credited during backpropagation.
const (
	Win  = 1.0
	Draw = 0.5
)

// uctScore computes q/n + sqrt(c^2*ln(N)/n). The normalizer c^2*ln(N) is
// precomputed once per parent.
func uctScore(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(normalizer/n)
}
