package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/cards"
)

func hand(t *testing.T, codes ...string) []cards.Card {
	t.Helper()
	parsed, err := cards.ParseAll(codes)
	require.NoError(t, err)
	return parsed
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		category Category
	}{
		{"high card", []string{"AS", "KD", "9C", "7H", "2S"}, HighCard},
		{"pair", []string{"AS", "AD", "9C", "7H", "2S"}, Pair},
		{"two pair", []string{"AS", "AD", "9C", "9H", "2S"}, TwoPair},
		{"trips", []string{"AS", "AD", "AC", "9H", "2S"}, ThreeOfAKind},
		{"straight", []string{"9S", "8D", "7C", "6H", "5S"}, Straight},
		{"wheel straight", []string{"AS", "2D", "3C", "4H", "5S"}, Straight},
		{"ace high straight", []string{"AS", "KD", "QC", "JH", "TS"}, Straight},
		{"flush", []string{"AS", "JS", "9S", "7S", "2S"}, Flush},
		{"full house", []string{"AS", "AD", "AC", "9H", "9S"}, FullHouse},
		{"quads", []string{"AS", "AD", "AC", "AH", "2S"}, FourOfAKind},
		{"straight flush", []string{"9S", "8S", "7S", "6S", "5S"}, StraightFlush},
		{"steel wheel", []string{"AS", "2S", "3S", "4S", "5S"}, StraightFlush},
		{"not a straight", []string{"AS", "KD", "QC", "JH", "9S"}, HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := Evaluate(hand(t, tt.codes...))
			assert.Equal(t, tt.category, rank.Category)
		})
	}
}

func TestWheelRanksBelowSixHighStraight(t *testing.T) {
	wheel := Evaluate(hand(t, "AS", "2D", "3C", "4H", "5S"))
	sixHigh := Evaluate(hand(t, "2S", "3D", "4C", "5H", "6S"))
	assert.Equal(t, -1, Compare(wheel, sixHigh))
	assert.Equal(t, 1, Compare(sixHigh, wheel))
}

func TestCompareKickers(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{
			"higher pair wins",
			[]string{"KS", "KD", "9C", "7H", "2S"},
			[]string{"QS", "QD", "AC", "KH", "JS"},
			1,
		},
		{
			"same pair decided by kicker",
			[]string{"KS", "KD", "AC", "7H", "2S"},
			[]string{"KC", "KH", "QC", "JH", "9S"},
			1,
		},
		{
			"two pair decided by low pair",
			[]string{"KS", "KD", "9C", "9H", "2S"},
			[]string{"KC", "KH", "8C", "8H", "AS"},
			1,
		},
		{
			"full house decided by trips",
			[]string{"9S", "9D", "9C", "2H", "2S"},
			[]string{"8S", "8D", "8C", "AH", "AS"},
			1,
		},
		{
			"identical ranks tie",
			[]string{"KS", "KD", "9C", "7H", "2S"},
			[]string{"KC", "KH", "9D", "7S", "2C"},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rankA := Evaluate(hand(t, tt.a...))
			rankB := Evaluate(hand(t, tt.b...))
			assert.Equal(t, tt.want, Compare(rankA, rankB))
			assert.Equal(t, -tt.want, Compare(rankB, rankA))
		})
	}
}

func TestCompareReflexive(t *testing.T) {
	for _, codes := range [][]string{
		{"AS", "KD", "9C", "7H", "2S"},
		{"AS", "AD", "AC", "9H", "9S"},
		{"9S", "8S", "7S", "6S", "5S"},
	} {
		rank := Evaluate(hand(t, codes...))
		assert.Equal(t, 0, Compare(rank, rank))
	}
}

func TestBestHandPicksStrongestSubset(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		category Category
	}{
		{
			"flush hidden in seven",
			[]string{"AS", "JS", "9S", "7S", "2S", "AD", "AC"},
			Flush,
		},
		{
			"full house hidden in seven",
			[]string{"AS", "AD", "AC", "9H", "9S", "2C", "3D"},
			FullHouse,
		},
		{
			"straight hidden in seven",
			[]string{"9S", "8D", "7C", "6H", "5S", "KD", "KC"},
			Straight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seven := hand(t, tt.codes...)
			best, rank := BestHand(seven)
			require.Len(t, best, 5)
			assert.Equal(t, tt.category, rank.Category)
		})
	}
}

// BestHand must never be beaten by any other 5-card subset of the same
// seven cards.
func TestBestHandIsMaximal(t *testing.T) {
	decks := []string{"test-1", "test-2", "test-3"}
	for _, seed := range decks {
		deck := cards.Shuffled(seed)
		seven := deck[:7]
		_, best := BestHand(seven)
		n := len(seven)
		for a := 0; a < n-4; a++ {
			for b := a + 1; b < n-3; b++ {
				for c := b + 1; c < n-2; c++ {
					for d := c + 1; d < n-1; d++ {
						for e := d + 1; e < n; e++ {
							subset := []cards.Card{seven[a], seven[b], seven[c], seven[d], seven[e]}
							assert.GreaterOrEqual(t, Compare(best, Evaluate(subset)), 0,
								"seed %s: subset %v beats best hand", seed, subset)
						}
					}
				}
			}
		}
	}
}
