package yahtzee

import "math/rand"

// DiceCount is the number of dice in play.
const DiceCount = 5

// Roll rolls the dice with the given generator. On the first roll of a
// turn (empty dice) all five are rolled and the held mask is ignored;
// afterwards only dice not flagged held are re-rolled. The input slice
// is not mutated.
func Roll(rng *rand.Rand, dice []int, held []bool) []int {
	rolled := make([]int, DiceCount)
	if len(dice) == 0 {
		for i := range rolled {
			rolled[i] = rng.Intn(6) + 1
		}
		return rolled
	}
	copy(rolled, dice)
	for i := range rolled {
		if !held[i] {
			rolled[i] = rng.Intn(6) + 1
		}
	}
	return rolled
}
