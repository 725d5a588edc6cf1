package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/random"
)

func TestRollFirstRollRollsAllFive(t *testing.T) {
	rolled := Roll(random.New("dice-seed"), nil, nil)
	require.Len(t, rolled, DiceCount)
	for _, die := range rolled {
		assert.GreaterOrEqual(t, die, 1)
		assert.LessOrEqual(t, die, 6)
	}
}

func TestRollIsDeterministicForSeed(t *testing.T) {
	first := Roll(random.New("dice-seed"), nil, nil)
	second := Roll(random.New("dice-seed"), nil, nil)
	assert.Equal(t, first, second)
}

func TestRollKeepsHeldDice(t *testing.T) {
	dice := []int{6, 6, 1, 1, 1}
	held := []bool{true, true, false, false, true}
	rolled := Roll(random.New("dice-seed"), dice, held)
	require.Len(t, rolled, DiceCount)
	assert.Equal(t, 6, rolled[0])
	assert.Equal(t, 6, rolled[1])
	assert.Equal(t, 1, rolled[4])
	for _, die := range rolled {
		assert.GreaterOrEqual(t, die, 1)
		assert.LessOrEqual(t, die, 6)
	}
	// Input dice are untouched.
	assert.Equal(t, []int{6, 6, 1, 1, 1}, dice)
}

func TestRollAllHeldChangesNothing(t *testing.T) {
	dice := []int{2, 3, 4, 5, 6}
	held := []bool{true, true, true, true, true}
	rolled := Roll(random.New("dice-seed"), dice, held)
	assert.Equal(t, dice, rolled)
}
