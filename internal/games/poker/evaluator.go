package poker

import (
	"sort"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/cards"
)

// Category orders hand types from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	}
	return "Unknown"
}

// HandRank is a comparable rank for a 5-card hand: the category plus a
// kicker chain, highest-significance first. Two ranks compare by
// category, then kicker by kicker.
type HandRank struct {
	Category Category
	Kickers  []cards.Rank
}

// Evaluate ranks exactly five cards.
func Evaluate(hand []cards.Card) HandRank {
	counts := make(map[cards.Rank]int, 5)
	flush := true
	for i, card := range hand {
		counts[card.Rank]++
		if i > 0 && card.Suit != hand[0].Suit {
			flush = false
		}
	}

	straight, straightHigh := straightHigh(counts)

	if straight && flush {
		return HandRank{Category: StraightFlush, Kickers: []cards.Rank{straightHigh}}
	}

	// Group ranks by multiplicity, larger groups and higher ranks first.
	type group struct {
		rank  cards.Rank
		count int
	}
	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	kickers := make([]cards.Rank, len(groups))
	for i, g := range groups {
		kickers[i] = g.rank
	}

	switch {
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, Kickers: kickers}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, Kickers: kickers}
	case flush:
		return HandRank{Category: Flush, Kickers: kickers}
	case straight:
		return HandRank{Category: Straight, Kickers: []cards.Rank{straightHigh}}
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, Kickers: kickers}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, Kickers: kickers}
	case groups[0].count == 2:
		return HandRank{Category: Pair, Kickers: kickers}
	}
	return HandRank{Category: HighCard, Kickers: kickers}
}

// straightHigh reports whether the ranks form a straight and, if so,
// its top card. The wheel (A-2-3-4-5) tops at Five, below the 6-high
// straight.
func straightHigh(counts map[cards.Rank]int) (bool, cards.Rank) {
	if len(counts) != 5 {
		return false, 0
	}
	low, high := cards.Ace, cards.Two
	for rank := range counts {
		if rank < low {
			low = rank
		}
		if rank > high {
			high = rank
		}
	}
	if high-low == 4 {
		return true, high
	}
	// Wheel: ace plays low.
	if counts[cards.Ace] == 1 && counts[cards.Two] == 1 &&
		counts[cards.Three] == 1 && counts[cards.Four] == 1 &&
		counts[cards.Five] == 1 {
		return true, cards.Five
	}
	return false, 0
}

// Compare is a total order over hand ranks: 1 if a beats b, -1 if b
// beats a, 0 only on a true tie.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// BestHand picks the strongest 5-card subset of a 5 to 7 card hand,
// enumerating every subset (21 for a 7-card hand).
func BestHand(hand []cards.Card) ([]cards.Card, HandRank) {
	if len(hand) == 5 {
		return append([]cards.Card(nil), hand...), Evaluate(hand)
	}
	var bestCards []cards.Card
	var best HandRank
	n := len(hand)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five := []cards.Card{hand[a], hand[b], hand[c], hand[d], hand[e]}
						rank := Evaluate(five)
						if bestCards == nil || Compare(rank, best) > 0 {
							bestCards = five
							best = rank
						}
					}
				}
			}
		}
	}
	return bestCards, best
}
