package yahtzee

// Category names one of the 13 scorecard slots. The string values are
// the persisted and wire form.
type Category string

const (
	Ones   Category = "ones"
	Twos   Category = "twos"
	Threes Category = "threes"
	Fours  Category = "fours"
	Fives  Category = "fives"
	Sixes  Category = "sixes"

	ThreeOfAKind  Category = "threeOfAKind"
	FourOfAKind   Category = "fourOfAKind"
	FullHouse     Category = "fullHouse"
	SmallStraight Category = "smallStraight"
	LargeStraight Category = "largeStraight"
	Yahtzee       Category = "yahtzee"
	Chance        Category = "chance"
)

// Categories lists all 13 slots in scorecard order.
var Categories = []Category{
	Ones, Twos, Threes, Fours, Fives, Sixes,
	ThreeOfAKind, FourOfAKind, FullHouse,
	SmallStraight, LargeStraight, Yahtzee, Chance,
}

// UpperCategories are the six number slots counted toward the
// 35-point upper-section bonus.
var UpperCategories = []Category{Ones, Twos, Threes, Fours, Fives, Sixes}

var upperValues = map[Category]int{
	Ones:   1,
	Twos:   2,
	Threes: 3,
	Fours:  4,
	Fives:  5,
	Sixes:  6,
}

const (
	fullHouseScore     = 25
	smallStraightScore = 30
	largeStraightScore = 40
	yahtzeeScore       = 50

	// UpperBonus is added when the six upper entries sum to at least
	// UpperBonusThreshold.
	UpperBonus          = 35
	UpperBonusThreshold = 63

	// YahtzeeBonus is worth 100 points per extra yahtzee rolled after
	// the yahtzee slot is filled with a positive score.
	YahtzeeBonus = 100
)

// Valid reports whether name is one of the 13 categories.
func Valid(name Category) bool {
	_, ok := upperValues[name]
	if ok {
		return true
	}
	switch name {
	case ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yahtzee, Chance:
		return true
	}
	return false
}

// Score computes the category score for the current five dice. This is
// the single authoritative scoring implementation; presentation tiers
// previewing scores must call it rather than re-derive the formulas.
func Score(category Category, dice []int) int {
	if value, ok := upperValues[category]; ok {
		sum := 0
		for _, die := range dice {
			if die == value {
				sum += die
			}
		}
		return sum
	}

	counts := diceCounts(dice)
	switch category {
	case ThreeOfAKind:
		if maxCount(counts) >= 3 {
			return sumDice(dice)
		}
	case FourOfAKind:
		if maxCount(counts) >= 4 {
			return sumDice(dice)
		}
	case FullHouse:
		hasThree, hasTwo := false, false
		for _, count := range counts {
			switch count {
			case 3:
				hasThree = true
			case 2:
				hasTwo = true
			}
		}
		if hasThree && hasTwo {
			return fullHouseScore
		}
	case SmallStraight:
		if hasRun(counts, 4) {
			return smallStraightScore
		}
	case LargeStraight:
		if hasRun(counts, 5) {
			return largeStraightScore
		}
	case Yahtzee:
		if IsYahtzee(dice) {
			return yahtzeeScore
		}
	case Chance:
		return sumDice(dice)
	}
	return 0
}

// IsYahtzee reports whether all five dice show the same value.
func IsYahtzee(dice []int) bool {
	if len(dice) != 5 {
		return false
	}
	for _, die := range dice[1:] {
		if die != dice[0] {
			return false
		}
	}
	return true
}

// UpperSum totals the scored upper-section entries of a scorecard.
func UpperSum(scorecard map[string]int) int {
	sum := 0
	for _, category := range UpperCategories {
		sum += scorecard[string(category)]
	}
	return sum
}

// FinalScore tallies a finished scorecard: all scored entries, the
// upper-section bonus when earned, and 100 points per yahtzee bonus.
func FinalScore(scorecard map[string]int, bonusCount int) int {
	total := 0
	for _, score := range scorecard {
		total += score
	}
	if UpperSum(scorecard) >= UpperBonusThreshold {
		total += UpperBonus
	}
	return total + YahtzeeBonus*bonusCount
}

func sumDice(dice []int) int {
	sum := 0
	for _, die := range dice {
		sum += die
	}
	return sum
}

func diceCounts(dice []int) [7]int {
	var counts [7]int
	for _, die := range dice {
		if die >= 1 && die <= 6 {
			counts[die]++
		}
	}
	return counts
}

func maxCount(counts [7]int) int {
	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	return max
}

// hasRun reports whether the dice contain length consecutive distinct
// values.
func hasRun(counts [7]int, length int) bool {
	run := 0
	for value := 1; value <= 6; value++ {
		if counts[value] > 0 {
			run++
			if run >= length {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
