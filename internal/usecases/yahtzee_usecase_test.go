package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/apperrors"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/yahtzee"
)

func newTestYahtzeeUsecase(store *fakeStorage, ledger *fakeLedger, notifier *fakeNotifier) *YahtzeeUsecase {
	usecase := NewYahtzeeUsecase(store, ledger, notifier)
	usecase.newSeed = func() string { return "dice-test" }
	usecase.now = fixedTime
	return usecase
}

// seedYahtzeeMatch stores a mid-game match where alice holds the turn
// with dice already rolled, then applies the caller's tweaks.
func seedYahtzeeMatch(store *fakeStorage, mutate func(*entities.YahtzeeMatch)) {
	match := entities.YahtzeeMatch{
		Id:              "y1",
		PlayerA:         "alice",
		PlayerB:         "bob",
		CurrentPlayerId: "alice",
		Dice:            []int{6, 6, 6, 1, 2},
		HeldDice:        make([]bool, yahtzee.DiceCount),
		RollsRemaining:  1,
		RollCount:       2,
		ScorecardA:      map[string]int{},
		ScorecardB:      map[string]int{},
		DiceSeed:        "seeded",
		Status:          entities.MatchActive,
	}
	if mutate != nil {
		mutate(&match)
	}
	store.yahtzeeMatches[match.Id] = match
	store.userYahtzeeMatches["alice"] = entities.UserMatch{UserId: "alice", MatchId: match.Id}
	store.userYahtzeeMatches["bob"] = entities.UserMatch{UserId: "bob", MatchId: match.Id}
}

func TestYahtzeeStartMatch(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice", Username: "alice"},
		entities.User{Id: "bob", Username: "bob"},
	)
	notifier := &fakeNotifier{}
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, notifier)

	match, err := usecase.StartMatch(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, "alice", match.PlayerA)
	assert.Equal(t, "bob", match.PlayerB)
	assert.Equal(t, "alice", match.CurrentPlayerId)
	assert.Equal(t, rollsPerTurn, match.RollsRemaining)
	assert.Empty(t, match.Dice)
	assert.Empty(t, match.ScorecardA)
	assert.Empty(t, match.ScorecardB)
	assert.Equal(t, entities.MatchActive, match.Status)

	for _, playerId := range []string{"alice", "bob"} {
		userMatch, ok := store.userYahtzeeMatches[playerId]
		require.True(t, ok)
		assert.Equal(t, match.Id, userMatch.MatchId)
	}
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "bob", notifier.notifications[0].userId)
}

func TestYahtzeeStartMatchRejections(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})
	ctx := context.Background()

	_, err := usecase.StartMatch(ctx, "alice", "alice")
	assert.True(t, apperrors.IsValidation(err))

	_, err = usecase.StartMatch(ctx, "alice", "nobody")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = usecase.StartMatch(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = usecase.StartMatch(ctx, "bob", "alice")
	assert.True(t, apperrors.IsStateConflict(err))
}

func TestYahtzeeCurrentMatch(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})
	ctx := context.Background()

	_, err := usecase.CurrentMatch(ctx, "bob")
	assert.True(t, apperrors.IsNotFound(err))

	started, err := usecase.StartMatch(ctx, "alice", "bob")
	require.NoError(t, err)

	match, err := usecase.CurrentMatch(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, started.Id, match.Id)
}

func TestYahtzeeRollGates(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})
	ctx := context.Background()

	match, err := usecase.StartMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	noHolds := make([]bool, yahtzee.DiceCount)

	_, err = usecase.Roll(ctx, match.Id, "alice", make([]bool, 4))
	assert.True(t, apperrors.IsValidation(err))

	_, err = usecase.Roll(ctx, "no-such-match", "alice", noHolds)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = usecase.Roll(ctx, match.Id, "carol", noHolds)
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 403, apperrors.StatusOf(err))

	_, err = usecase.Roll(ctx, match.Id, "bob", noHolds)
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 403, apperrors.StatusOf(err))
}

func TestYahtzeeRollSequence(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})
	ctx := context.Background()

	started, err := usecase.StartMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	noHolds := make([]bool, yahtzee.DiceCount)

	match, err := usecase.Roll(ctx, started.Id, "alice", noHolds)
	require.NoError(t, err)
	require.Len(t, match.Dice, yahtzee.DiceCount)
	for _, die := range match.Dice {
		assert.GreaterOrEqual(t, die, 1)
		assert.LessOrEqual(t, die, 6)
	}
	assert.Equal(t, 2, match.RollsRemaining)
	assert.Equal(t, 1, match.RollCount)

	// Holding everything makes a re-roll a no-op on the dice.
	allHeld := []bool{true, true, true, true, true}
	firstDice := append([]int(nil), match.Dice...)
	match, err = usecase.Roll(ctx, started.Id, "alice", allHeld)
	require.NoError(t, err)
	assert.Equal(t, firstDice, match.Dice)
	assert.Equal(t, 1, match.RollsRemaining)

	_, err = usecase.Roll(ctx, started.Id, "alice", noHolds)
	require.NoError(t, err)

	_, err = usecase.Roll(ctx, started.Id, "alice", noHolds)
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 409, apperrors.StatusOf(err))
}

func TestYahtzeeScoreCategoryPassesTurn(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	seedYahtzeeMatch(store, nil)
	notifier := &fakeNotifier{}
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, notifier)

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Sixes))
	require.NoError(t, err)
	assert.Equal(t, 18, result.Score)
	assert.True(t, result.TurnChanged)
	assert.False(t, result.MatchComplete)
	assert.False(t, result.BonusEarned)

	match := store.yahtzeeMatches["y1"]
	assert.Equal(t, 18, match.ScorecardA[string(yahtzee.Sixes)])
	assert.Equal(t, "bob", match.CurrentPlayerId)
	assert.Empty(t, match.Dice)
	assert.Equal(t, rollsPerTurn, match.RollsRemaining)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "bob", notifier.notifications[0].userId)
}

func TestYahtzeeScoreCategoryRejections(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.ScorecardA[string(yahtzee.Ones)] = 2
	})
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})
	ctx := context.Background()

	_, err := usecase.ScoreCategory(ctx, "y1", "alice", "sevens")
	assert.True(t, apperrors.IsValidation(err))

	_, err = usecase.ScoreCategory(ctx, "y1", "bob", string(yahtzee.Chance))
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 403, apperrors.StatusOf(err))

	_, err = usecase.ScoreCategory(ctx, "y1", "alice", string(yahtzee.Ones))
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 409, apperrors.StatusOf(err))

	store.yahtzeeMatches["y1"] = func() entities.YahtzeeMatch {
		match := store.yahtzeeMatches["y1"]
		match.Dice = []int{}
		return match
	}()
	_, err = usecase.ScoreCategory(ctx, "y1", "alice", string(yahtzee.Chance))
	assert.True(t, apperrors.IsStateConflict(err))
	assert.Equal(t, 409, apperrors.StatusOf(err))
}

func TestYahtzeeBonusStacksAfterFiftyPointYahtzee(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.Dice = []int{5, 5, 5, 5, 5}
		match.ScorecardA[string(yahtzee.Yahtzee)] = yahtzee.Score(yahtzee.Yahtzee, []int{2, 2, 2, 2, 2})
	})
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Fives))
	require.NoError(t, err)
	assert.Equal(t, 25, result.Score)
	assert.True(t, result.BonusEarned)
	assert.Equal(t, 1, store.yahtzeeMatches["y1"].BonusCountA)
}

func TestYahtzeeNoBonusAfterZeroedYahtzeeSlot(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.Dice = []int{5, 5, 5, 5, 5}
		match.ScorecardA[string(yahtzee.Yahtzee)] = 0
	})
	usecase := newTestYahtzeeUsecase(store, &fakeLedger{}, &fakeNotifier{})

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Fives))
	require.NoError(t, err)
	assert.False(t, result.BonusEarned)
	assert.Equal(t, 0, store.yahtzeeMatches["y1"].BonusCountA)
}

// nearlyDoneCards returns a full scorecard for bob and one missing only
// chance for alice.
func nearlyDoneCards() (scorecardA, scorecardB map[string]int) {
	scorecardA = map[string]int{
		string(yahtzee.Ones): 1, string(yahtzee.Twos): 4,
		string(yahtzee.Threes): 6, string(yahtzee.Fours): 8,
		string(yahtzee.Fives): 10, string(yahtzee.Sixes): 12,
		string(yahtzee.ThreeOfAKind): 22, string(yahtzee.FourOfAKind): 24,
		string(yahtzee.FullHouse): 25, string(yahtzee.SmallStraight): 0,
		string(yahtzee.LargeStraight): 40, string(yahtzee.Yahtzee): 0,
	}
	scorecardB = map[string]int{
		string(yahtzee.Ones): 3, string(yahtzee.Twos): 6,
		string(yahtzee.Threes): 9, string(yahtzee.Fours): 12,
		string(yahtzee.Fives): 15, string(yahtzee.Sixes): 18,
		string(yahtzee.ThreeOfAKind): 20, string(yahtzee.FourOfAKind): 0,
		string(yahtzee.FullHouse): 25, string(yahtzee.SmallStraight): 30,
		string(yahtzee.LargeStraight): 0, string(yahtzee.Yahtzee): 0,
		string(yahtzee.Chance): 16,
	}
	return scorecardA, scorecardB
}

func TestYahtzeeFinalCategoryCompletesMatch(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	scorecardA, scorecardB := nearlyDoneCards()
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.ScorecardA = scorecardA
		match.ScorecardB = scorecardB
		match.Dice = []int{1, 2, 3, 4, 6}
	})
	ledger := &fakeLedger{}
	usecase := newTestYahtzeeUsecase(store, ledger, &fakeNotifier{})

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Chance))
	require.NoError(t, err)
	assert.Equal(t, 16, result.Score)
	assert.True(t, result.MatchComplete)
	assert.False(t, result.TurnChanged)

	match := store.yahtzeeMatches["y1"]
	assert.Equal(t, entities.MatchCompleted, match.Status)
	require.NotNil(t, match.FinalScoreA)
	require.NotNil(t, match.FinalScoreB)

	finalA := yahtzee.FinalScore(match.ScorecardA, 0)
	finalB := yahtzee.FinalScore(match.ScorecardB, 0)
	assert.Equal(t, finalA, *match.FinalScoreA)
	assert.Equal(t, finalB, *match.FinalScoreB)
	require.Greater(t, finalB, finalA)
	assert.Equal(t, "bob", match.Winner)

	assert.Empty(t, store.userYahtzeeMatches)

	require.Len(t, ledger.credits, 1)
	assert.Equal(t, "bob", ledger.credits[0].userId)
	assert.Equal(t, 1+(finalB-finalA)/10, ledger.credits[0].amount)

	require.Len(t, ledger.penalties, 1)
	assert.Equal(t, "alice", ledger.penalties[0].userId)
}

func TestYahtzeeTiedMatchPaysBothByScore(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice"},
		entities.User{Id: "bob"},
	)
	_, scorecardB := nearlyDoneCards()
	scorecardA := map[string]int{}
	for category, value := range scorecardB {
		scorecardA[category] = value
	}
	delete(scorecardA, string(yahtzee.Chance))
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.ScorecardA = scorecardA
		match.ScorecardB = scorecardB
		// Chance on these dice matches bob's 16, so the totals tie.
		match.Dice = []int{1, 2, 3, 4, 6}
	})
	ledger := &fakeLedger{}
	usecase := newTestYahtzeeUsecase(store, ledger, &fakeNotifier{})

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Chance))
	require.NoError(t, err)
	assert.True(t, result.MatchComplete)

	match := store.yahtzeeMatches["y1"]
	assert.Empty(t, match.Winner)
	require.NotNil(t, match.FinalScoreA)
	assert.Equal(t, *match.FinalScoreA, *match.FinalScoreB)

	require.Len(t, ledger.credits, 2)
	expected := *match.FinalScoreA / 10
	for _, credit := range ledger.credits {
		assert.Equal(t, expected, credit.amount)
	}
	assert.Empty(t, ledger.penalties)
}

func TestYahtzeeSettlementSkipsExemptPlayers(t *testing.T) {
	store := newFakeStorage(
		entities.User{Id: "alice", Role: entities.RoleAdmin},
		entities.User{Id: "bob", Role: entities.RoleAdmin},
	)
	scorecardA, scorecardB := nearlyDoneCards()
	seedYahtzeeMatch(store, func(match *entities.YahtzeeMatch) {
		match.ScorecardA = scorecardA
		match.ScorecardB = scorecardB
		match.Dice = []int{1, 2, 3, 4, 6}
	})
	ledger := &fakeLedger{}
	usecase := newTestYahtzeeUsecase(store, ledger, &fakeNotifier{})

	result, err := usecase.ScoreCategory(context.Background(), "y1", "alice", string(yahtzee.Chance))
	require.NoError(t, err)
	assert.True(t, result.MatchComplete)
	assert.Empty(t, ledger.credits)
	assert.Empty(t, ledger.penalties)
}
