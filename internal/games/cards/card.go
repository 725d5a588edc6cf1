package cards

import "fmt"

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitCodes = [...]byte{'S', 'H', 'D', 'C'}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	}
	return "unknown"
}

// Rank runs from Two (2) to Ace (14). Aces rank high; the evaluator
// handles the wheel straight where an ace plays low.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankCodes = [...]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// Card is an immutable value type. The 52 distinct values form a deck.
type Card struct {
	Rank Rank
	Suit Suit
}

// Code returns the two-character form used for persistence, e.g. "AS"
// for the ace of spades or "TD" for the ten of diamonds.
func (c Card) Code() string {
	return string([]byte{rankCodes[c.Rank-Two], suitCodes[c.Suit]})
}

func (c Card) String() string {
	return c.Code()
}

// Parse is the inverse of Code.
func Parse(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}
	var card Card
	found := false
	for i, rc := range rankCodes {
		if rc == code[0] {
			card.Rank = Rank(i) + Two
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("invalid card rank: %q", code)
	}
	found = false
	for i, sc := range suitCodes {
		if sc == code[1] {
			card.Suit = Suit(i)
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("invalid card suit: %q", code)
	}
	return card, nil
}

// Codes converts a hand to its persisted form.
func Codes(hand []Card) []string {
	codes := make([]string, len(hand))
	for i, card := range hand {
		codes[i] = card.Code()
	}
	return codes
}

// ParseAll converts a persisted hand back to cards.
func ParseAll(codes []string) ([]Card, error) {
	hand := make([]Card, len(codes))
	for i, code := range codes {
		card, err := Parse(code)
		if err != nil {
			return nil, err
		}
		hand[i] = card
	}
	return hand, nil
}
