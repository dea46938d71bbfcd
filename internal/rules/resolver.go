package rules

import (
	"github.com/KirkDiggler/duelarena/internal/models"
)

// Outcome is the result of resolving one round
type Outcome int

const (
	// OutcomeTie means neither side scores
	OutcomeTie Outcome = iota

	// OutcomeFirst means the first move wins the round
	OutcomeFirst

	// OutcomeSecond means the second move wins the round
	OutcomeSecond
)

// Beats returns the move the given move defeats. The dominance cycle is
// Sword > Shield > Magic > Sword; every move has exactly one counter and
// is countered by exactly one move.
func Beats(m models.Move) models.Move {
	return models.Move((uint8(m) + 1) % 3)
}

// Resolve maps a pair of revealed moves to a round outcome. It is pure
// and mirror-consistent: Resolve(a, b) == OutcomeFirst iff
// Resolve(b, a) == OutcomeSecond.
func Resolve(first, second models.Move) Outcome {
	if first == second {
		return OutcomeTie
	}
	if Beats(first) == second {
		return OutcomeFirst
	}
	return OutcomeSecond
}

// MajorityThreshold returns the score that secures a strict majority of
// totalRounds, allowing early settlement (2 of 3, 3 of 5, 4 of 7).
func MajorityThreshold(totalRounds int) int {
	return totalRounds/2 + 1
}

// ValidRoundCount reports whether the round count is a playable duel
// length. Only 3, 5 and 7 are allowed.
func ValidRoundCount(n int) bool {
	return n == 3 || n == 5 || n == 7
}
