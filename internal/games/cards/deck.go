package cards

import "github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/random"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// NewDeck returns all 52 cards in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Shuffled returns the full deck permuted by the given seed.
// It is a pure function: the same seed always yields the same order,
// so a stored seed reconstructs the exact deck a round was dealt from.
func Shuffled(seed string) []Card {
	deck := NewDeck()
	rng := random.New(seed)
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
