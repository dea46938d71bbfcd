package rules

import (
	"testing"

	"github.com/KirkDiggler/duelarena/internal/models"
	"github.com/stretchr/testify/assert"
)

var allMoves = []models.Move{models.MoveSword, models.MoveShield, models.MoveMagic}

func TestResolveDominanceCycle(t *testing.T) {
	assert.Equal(t, OutcomeFirst, Resolve(models.MoveSword, models.MoveShield))
	assert.Equal(t, OutcomeFirst, Resolve(models.MoveShield, models.MoveMagic))
	assert.Equal(t, OutcomeFirst, Resolve(models.MoveMagic, models.MoveSword))
}

func TestResolveEqualMovesTie(t *testing.T) {
	for _, m := range allMoves {
		assert.Equal(t, OutcomeTie, Resolve(m, m))
	}
}

func TestResolveIsMirrorConsistent(t *testing.T) {
	for _, a := range allMoves {
		for _, b := range allMoves {
			forward := Resolve(a, b)
			backward := Resolve(b, a)

			switch forward {
			case OutcomeTie:
				assert.Equal(t, OutcomeTie, backward)
			case OutcomeFirst:
				assert.Equal(t, OutcomeSecond, backward)
			case OutcomeSecond:
				assert.Equal(t, OutcomeFirst, backward)
			}
		}
	}
}

func TestEveryMoveHasOneCounterAndOneCounterBy(t *testing.T) {
	for _, m := range allMoves {
		beats := 0
		beatenBy := 0
		for _, other := range allMoves {
			switch Resolve(m, other) {
			case OutcomeFirst:
				beats++
			case OutcomeSecond:
				beatenBy++
			}
		}
		assert.Equal(t, 1, beats)
		assert.Equal(t, 1, beatenBy)
	}
}

func TestMajorityThreshold(t *testing.T) {
	assert.Equal(t, 2, MajorityThreshold(3))
	assert.Equal(t, 3, MajorityThreshold(5))
	assert.Equal(t, 4, MajorityThreshold(7))
}

func TestValidRoundCount(t *testing.T) {
	assert.True(t, ValidRoundCount(3))
	assert.True(t, ValidRoundCount(5))
	assert.True(t, ValidRoundCount(7))

	for _, n := range []int{0, 1, 2, 4, 6, 8, 9, -3} {
		assert.False(t, ValidRoundCount(n))
	}
}
