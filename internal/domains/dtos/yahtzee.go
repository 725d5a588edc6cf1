package dtos

import (
	"time"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/usecases"
)

type YahtzeeMatchStartRequest struct {
	OpponentId string `json:"opponentId"`
}

type YahtzeeRollRequest struct {
	MatchId  string `json:"matchId"`
	HeldDice []bool `json:"heldDice"`
}

type YahtzeeScoreRequest struct {
	MatchId  string `json:"matchId"`
	Category string `json:"category"`
}

type YahtzeeMatchResponse struct {
	Id              string         `json:"id"`
	PlayerA         string         `json:"playerA"`
	PlayerB         string         `json:"playerB"`
	CurrentPlayerId string         `json:"currentPlayerId,omitempty"`
	Dice            []int          `json:"dice"`
	HeldDice        []bool         `json:"heldDice"`
	RollsRemaining  int            `json:"rollsRemaining"`
	ScorecardA      map[string]int `json:"scorecardA"`
	ScorecardB      map[string]int `json:"scorecardB"`
	BonusCountA     int            `json:"bonusCountA"`
	BonusCountB     int            `json:"bonusCountB"`
	Status          string         `json:"status"`
	Winner          string         `json:"winner,omitempty"`
	FinalScoreA     *int           `json:"finalScoreA,omitempty"`
	FinalScoreB     *int           `json:"finalScoreB,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type YahtzeeScoreResponse struct {
	Match         YahtzeeMatchResponse `json:"match"`
	Score         int                  `json:"score"`
	BonusEarned   bool                 `json:"bonusEarned"`
	TurnChanged   bool                 `json:"turnChanged"`
	MatchComplete bool                 `json:"matchComplete"`
}

func YahtzeeMatchResponseFromEntity(match entities.YahtzeeMatch) YahtzeeMatchResponse {
	return YahtzeeMatchResponse{
		Id:              match.Id,
		PlayerA:         match.PlayerA,
		PlayerB:         match.PlayerB,
		CurrentPlayerId: match.CurrentPlayerId,
		Dice:            match.Dice,
		HeldDice:        match.HeldDice,
		RollsRemaining:  match.RollsRemaining,
		ScorecardA:      match.ScorecardA,
		ScorecardB:      match.ScorecardB,
		BonusCountA:     match.BonusCountA,
		BonusCountB:     match.BonusCountB,
		Status:          string(match.Status),
		Winner:          match.Winner,
		FinalScoreA:     match.FinalScoreA,
		FinalScoreB:     match.FinalScoreB,
		CreatedAt:       match.CreatedAt,
		UpdatedAt:       match.UpdatedAt,
	}
}

func YahtzeeScoreResponseFromResult(result usecases.ScoreResult) YahtzeeScoreResponse {
	return YahtzeeScoreResponse{
		Match:         YahtzeeMatchResponseFromEntity(result.Match),
		Score:         result.Score,
		BonusEarned:   result.BonusEarned,
		TurnChanged:   result.TurnChanged,
		MatchComplete: result.MatchComplete,
	}
}
