package entities

import "time"

type MatchStatus string

const (
	MatchActive    MatchStatus = "active"
	MatchCompleted MatchStatus = "completed"
)

// PokerWinThreshold is the round-win count that ends a best-of-19
// match.
const PokerWinThreshold = 10

type PokerMatch struct {
	Id          string      `dynamodbav:"Id"`
	PlayerA     string      `dynamodbav:"PlayerA"`
	PlayerB     string      `dynamodbav:"PlayerB"`
	WinsA       int         `dynamodbav:"WinsA"`
	WinsB       int         `dynamodbav:"WinsB"`
	RoundNumber int         `dynamodbav:"RoundNumber"`
	Status      MatchStatus `dynamodbav:"Status"`
	Winner      string      `dynamodbav:"Winner"`
	CreatedAt   time.Time   `dynamodbav:"CreatedAt"`
	UpdatedAt   time.Time   `dynamodbav:"UpdatedAt"`
}

// Opponent returns the other participant, or "" if playerId is not in
// the match.
func (m PokerMatch) Opponent(playerId string) string {
	switch playerId {
	case m.PlayerA:
		return m.PlayerB
	case m.PlayerB:
		return m.PlayerA
	}
	return ""
}

func (m PokerMatch) HasPlayer(playerId string) bool {
	return playerId == m.PlayerA || playerId == m.PlayerB
}
