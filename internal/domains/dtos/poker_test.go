package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

func TestPokerRoundResponseCardVisibility(t *testing.T) {
	match := entities.PokerMatch{Id: "m1", PlayerA: "alice", PlayerB: "bob"}
	round := entities.PokerRound{
		MatchId:       "m1",
		Status:        entities.RoundFirstPlayerTurn,
		FirstPlayerId: "alice",
		HandA:         []string{"AS", "KS", "QS", "JS", "TS", "2H", "3D"},
		HandB:         []string{"KC", "KH", "9D", "7S", "4C", "3H", "2D"},
	}

	// Before anyone has drawn, each player sees only their own cards.
	forAlice := PokerRoundResponseFromEntity(round, match, "alice")
	assert.Equal(t, round.HandA, forAlice.HandA)
	assert.Empty(t, forAlice.HandB)

	forBob := PokerRoundResponseFromEntity(round, match, "bob")
	assert.Empty(t, forBob.HandA)
	assert.Equal(t, round.HandB, forBob.HandB)

	// Once the first player has locked in, the second player sees the
	// locked-in hand before drawing their own.
	round.Status = entities.RoundFirstPlayerDone
	round.BestHandA = []string{"AS", "KS", "QS", "JS", "TS"}
	round.RankNameA = "Straight Flush"

	forBob = PokerRoundResponseFromEntity(round, match, "bob")
	assert.Equal(t, round.HandA, forBob.HandA)
	assert.Equal(t, round.BestHandA, forBob.BestHandA)
	assert.Equal(t, "Straight Flush", forBob.RankNameA)
	assert.Equal(t, round.HandB, forBob.HandB)

	// The second player's cards stay hidden from the first player.
	forAlice = PokerRoundResponseFromEntity(round, match, "alice")
	assert.Empty(t, forAlice.HandB)
	assert.Equal(t, round.HandA, forAlice.HandA)

	round.Status = entities.RoundComplete
	round.BestHandB = []string{"KC", "KH", "9D", "7S", "4C"}
	round.RankNameB = "Pair"
	revealed := PokerRoundResponseFromEntity(round, match, "alice")
	assert.Equal(t, round.HandB, revealed.HandB)
	assert.Equal(t, "Pair", revealed.RankNameB)
}
