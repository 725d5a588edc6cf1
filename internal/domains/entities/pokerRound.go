package entities

import "time"

type RoundStatus string

const (
	// RoundFirstPlayerTurn: dealt, waiting on the first player's
	// discard.
	RoundFirstPlayerTurn RoundStatus = "first_player_turn"
	// RoundFirstPlayerDone: waiting on the second player's discard.
	RoundFirstPlayerDone RoundStatus = "first_player_done"
	RoundComplete        RoundStatus = "complete"
)

// PokerRound is one deal-discard-draw-evaluate cycle. Hands hold seven
// cards each, dealt deterministically from the deck shuffled by
// DeckSeed: positions 0-6 to player A, 7-13 to player B. Replacement
// cards come from the remaining deck tail in order, the second player's
// draws offset by however many the first player drew so the two never
// overlap.
type PokerRound struct {
	Id            string      `dynamodbav:"Id"`
	MatchId       string      `dynamodbav:"MatchId"`
	RoundNumber   int         `dynamodbav:"RoundNumber"`
	Status        RoundStatus `dynamodbav:"Status"`
	FirstPlayerId string      `dynamodbav:"FirstPlayerId"`
	DeckSeed      string      `dynamodbav:"DeckSeed"`
	HandA         []string    `dynamodbav:"HandA"`
	HandB         []string    `dynamodbav:"HandB"`
	DiscardsA     []int       `dynamodbav:"DiscardsA"`
	DiscardsB     []int       `dynamodbav:"DiscardsB"`
	BestHandA     []string    `dynamodbav:"BestHandA"`
	BestHandB     []string    `dynamodbav:"BestHandB"`
	RankNameA     string      `dynamodbav:"RankNameA"`
	RankNameB     string      `dynamodbav:"RankNameB"`
	RoundWinner   string      `dynamodbav:"RoundWinner"`
	IsTie         bool        `dynamodbav:"IsTie"`
	CreatedAt     time.Time   `dynamodbav:"CreatedAt"`
	UpdatedAt     time.Time   `dynamodbav:"UpdatedAt"`
}
