package entities

import "time"

// YahtzeeMatch holds the full state of one match: whose turn it is,
// the dice on the table, both scorecards and both yahtzee-bonus
// counters. Scorecards map category name to score; a missing key means
// the slot is still open, and a slot once written is never rewritten.
//
// Dice rolls derive from DiceSeed and RollCount, so a stored match
// replays identically.
type YahtzeeMatch struct {
	Id              string         `dynamodbav:"Id"`
	PlayerA         string         `dynamodbav:"PlayerA"`
	PlayerB         string         `dynamodbav:"PlayerB"`
	CurrentPlayerId string         `dynamodbav:"CurrentPlayerId"`
	Dice            []int          `dynamodbav:"Dice"`
	HeldDice        []bool         `dynamodbav:"HeldDice"`
	RollsRemaining  int            `dynamodbav:"RollsRemaining"`
	ScorecardA      map[string]int `dynamodbav:"ScorecardA"`
	ScorecardB      map[string]int `dynamodbav:"ScorecardB"`
	BonusCountA     int            `dynamodbav:"BonusCountA"`
	BonusCountB     int            `dynamodbav:"BonusCountB"`
	DiceSeed        string         `dynamodbav:"DiceSeed"`
	RollCount       int            `dynamodbav:"RollCount"`
	Status          MatchStatus    `dynamodbav:"Status"`
	Winner          string         `dynamodbav:"Winner"`
	FinalScoreA     *int           `dynamodbav:"FinalScoreA"`
	FinalScoreB     *int           `dynamodbav:"FinalScoreB"`
	CreatedAt       time.Time      `dynamodbav:"CreatedAt"`
	UpdatedAt       time.Time      `dynamodbav:"UpdatedAt"`
}

func (m YahtzeeMatch) Opponent(playerId string) string {
	switch playerId {
	case m.PlayerA:
		return m.PlayerB
	case m.PlayerB:
		return m.PlayerA
	}
	return ""
}

func (m YahtzeeMatch) HasPlayer(playerId string) bool {
	return playerId == m.PlayerA || playerId == m.PlayerB
}

// Scorecard returns the player's scorecard, allocating it on first
// use.
func (m *YahtzeeMatch) Scorecard(playerId string) map[string]int {
	switch playerId {
	case m.PlayerA:
		if m.ScorecardA == nil {
			m.ScorecardA = map[string]int{}
		}
		return m.ScorecardA
	case m.PlayerB:
		if m.ScorecardB == nil {
			m.ScorecardB = map[string]int{}
		}
		return m.ScorecardB
	}
	return nil
}
