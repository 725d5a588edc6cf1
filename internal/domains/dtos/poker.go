package dtos

import (
	"time"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/usecases"
)

type PokerMatchStartRequest struct {
	OpponentId string `json:"opponentId"`
}

type PokerDiscardRequest struct {
	MatchId        string `json:"matchId"`
	DiscardIndices []int  `json:"discardIndices"`
}

type PokerMatchResponse struct {
	Id          string    `json:"id"`
	PlayerA     string    `json:"playerA"`
	PlayerB     string    `json:"playerB"`
	WinsA       int       `json:"winsA"`
	WinsB       int       `json:"winsB"`
	RoundNumber int       `json:"roundNumber"`
	Status      string    `json:"status"`
	Winner      string    `json:"winner,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PokerRoundResponse struct {
	Id            string   `json:"id"`
	MatchId       string   `json:"matchId"`
	RoundNumber   int      `json:"roundNumber"`
	Status        string   `json:"status"`
	FirstPlayerId string   `json:"firstPlayerId"`
	HandA         []string `json:"handA,omitempty"`
	HandB         []string `json:"handB,omitempty"`
	BestHandA     []string `json:"bestHandA,omitempty"`
	BestHandB     []string `json:"bestHandB,omitempty"`
	RankNameA     string   `json:"rankNameA,omitempty"`
	RankNameB     string   `json:"rankNameB,omitempty"`
	RoundWinner   string   `json:"roundWinner,omitempty"`
	IsTie         bool     `json:"isTie"`
}

// PokerMatchStateResponse pairs a match with its current round. Both
// the start and lookup operations return it.
type PokerMatchStateResponse struct {
	Match PokerMatchResponse `json:"match"`
	Round PokerRoundResponse `json:"round"`
}

type PokerDiscardResponse struct {
	Match           PokerMatchResponse  `json:"match"`
	Round           PokerRoundResponse  `json:"round"`
	FirstPlayerDone bool                `json:"firstPlayerDone"`
	RoundComplete   bool                `json:"roundComplete"`
	MatchComplete   bool                `json:"matchComplete"`
	NextRound       *PokerRoundResponse `json:"nextRound,omitempty"`
}

func PokerMatchResponseFromEntity(match entities.PokerMatch) PokerMatchResponse {
	return PokerMatchResponse{
		Id:          match.Id,
		PlayerA:     match.PlayerA,
		PlayerB:     match.PlayerB,
		WinsA:       match.WinsA,
		WinsB:       match.WinsB,
		RoundNumber: match.RoundNumber,
		Status:      string(match.Status),
		Winner:      match.Winner,
		CreatedAt:   match.CreatedAt,
		UpdatedAt:   match.UpdatedAt,
	}
}

// PokerRoundResponseFromEntity renders a round for one viewer. A
// player's cards become visible once they are locked in: a player
// always sees their own, the second player sees the first player's
// hand after the first draw, and everything is open when the round
// completes.
func PokerRoundResponseFromEntity(round entities.PokerRound, match entities.PokerMatch, viewerId string) PokerRoundResponse {
	response := PokerRoundResponse{
		Id:            round.Id,
		MatchId:       round.MatchId,
		RoundNumber:   round.RoundNumber,
		Status:        string(round.Status),
		FirstPlayerId: round.FirstPlayerId,
		HandA:         round.HandA,
		HandB:         round.HandB,
		BestHandA:     round.BestHandA,
		BestHandB:     round.BestHandB,
		RankNameA:     round.RankNameA,
		RankNameB:     round.RankNameB,
		RoundWinner:   round.RoundWinner,
		IsTie:         round.IsTie,
	}
	visible := func(playerId string) bool {
		if viewerId == playerId || round.Status == entities.RoundComplete {
			return true
		}
		return round.Status == entities.RoundFirstPlayerDone && round.FirstPlayerId == playerId
	}
	if !visible(match.PlayerA) {
		response.HandA = nil
		response.BestHandA = nil
		response.RankNameA = ""
	}
	if !visible(match.PlayerB) {
		response.HandB = nil
		response.BestHandB = nil
		response.RankNameB = ""
	}
	return response
}

func PokerDiscardResponseFromResult(result usecases.DiscardResult, viewerId string) PokerDiscardResponse {
	response := PokerDiscardResponse{
		Match:           PokerMatchResponseFromEntity(result.Match),
		Round:           PokerRoundResponseFromEntity(result.Round, result.Match, viewerId),
		FirstPlayerDone: result.FirstPlayerDone,
		RoundComplete:   result.RoundComplete,
		MatchComplete:   result.MatchComplete,
	}
	if result.NextRound != nil {
		next := PokerRoundResponseFromEntity(*result.NextRound, result.Match, viewerId)
		response.NextRound = &next
	}
	return response
}
