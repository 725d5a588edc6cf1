package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/storage"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/apperrors"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/yahtzee"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/logging"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/random"
)

const rollsPerTurn = 3

type YahtzeeUsecase struct {
	storage  YahtzeeStorage
	ledger   Ledger
	notifier Notifier

	newSeed func() string
	now     func() time.Time
}

func NewYahtzeeUsecase(yahtzeeStorage YahtzeeStorage, pointsLedger Ledger, notifier Notifier) *YahtzeeUsecase {
	return &YahtzeeUsecase{
		storage:  yahtzeeStorage,
		ledger:   pointsLedger,
		notifier: notifier,
		newSeed:  random.NewSeed,
		now:      time.Now,
	}
}

// ScoreResult reports what scoring a category did to the match.
type ScoreResult struct {
	Match         entities.YahtzeeMatch
	Score         int
	BonusEarned   bool
	TurnChanged   bool
	MatchComplete bool
}

// StartMatch creates a yahtzee match with two blank scorecards. The
// starter rolls first.
func (u *YahtzeeUsecase) StartMatch(ctx context.Context, starterId, opponentId string) (entities.YahtzeeMatch, error) {
	if starterId == opponentId {
		return entities.YahtzeeMatch{}, apperrors.Validationf("cannot start a match against yourself")
	}
	if _, err := u.storage.GetUser(ctx, opponentId); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return entities.YahtzeeMatch{}, apperrors.NotFoundf("opponent not found: %s", opponentId)
		}
		return entities.YahtzeeMatch{}, err
	}
	for _, playerId := range []string{starterId, opponentId} {
		_, err := u.storage.GetUserYahtzeeMatch(ctx, playerId)
		if err == nil {
			return entities.YahtzeeMatch{}, apperrors.Conflictf("player %s already has an active yahtzee match", playerId)
		}
		if !errors.Is(err, storage.ErrUserMatchNotFound) {
			return entities.YahtzeeMatch{}, err
		}
	}

	now := u.now()
	match := entities.YahtzeeMatch{
		Id:              uuid.NewString(),
		PlayerA:         starterId,
		PlayerB:         opponentId,
		CurrentPlayerId: starterId,
		Dice:            []int{},
		HeldDice:        make([]bool, yahtzee.DiceCount),
		RollsRemaining:  rollsPerTurn,
		ScorecardA:      map[string]int{},
		ScorecardB:      map[string]int{},
		DiceSeed:        u.newSeed(),
		Status:          entities.MatchActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.storage.PutYahtzeeMatch(ctx, match); err != nil {
		return entities.YahtzeeMatch{}, err
	}
	for _, playerId := range []string{starterId, opponentId} {
		err := u.storage.PutUserYahtzeeMatch(ctx, entities.UserMatch{
			UserId:  playerId,
			MatchId: match.Id,
		})
		if err != nil {
			return entities.YahtzeeMatch{}, err
		}
	}

	logging.Info("yahtzee match started",
		zap.String("match_id", match.Id),
		zap.String("player_a", starterId),
		zap.String("player_b", opponentId),
	)
	u.notifier.NotifyTurn(ctx, opponentId, "You have been challenged to a yahtzee match")
	return match, nil
}

// CurrentMatch returns the player's active yahtzee match.
func (u *YahtzeeUsecase) CurrentMatch(ctx context.Context, playerId string) (entities.YahtzeeMatch, error) {
	userMatch, err := u.storage.GetUserYahtzeeMatch(ctx, playerId)
	if errors.Is(err, storage.ErrUserMatchNotFound) {
		return entities.YahtzeeMatch{}, apperrors.NotFoundf("no active yahtzee match")
	}
	if err != nil {
		return entities.YahtzeeMatch{}, err
	}
	return u.storage.GetYahtzeeMatch(ctx, userMatch.MatchId)
}

// Roll rolls the dice for the turn holder. The first roll of a turn
// rolls all five; later rolls re-roll only dice not flagged held.
func (u *YahtzeeUsecase) Roll(ctx context.Context, matchId, actorId string, held []bool) (entities.YahtzeeMatch, error) {
	if len(held) != yahtzee.DiceCount {
		return entities.YahtzeeMatch{}, apperrors.Validationf("held mask must have exactly %d entries", yahtzee.DiceCount)
	}
	match, err := u.currentTurnMatch(ctx, matchId, actorId)
	if err != nil {
		return entities.YahtzeeMatch{}, err
	}
	if match.RollsRemaining <= 0 {
		return entities.YahtzeeMatch{}, apperrors.Conflictf("no rolls remaining this turn")
	}

	rng := random.New(fmt.Sprintf("%s#%d", match.DiceSeed, match.RollCount))
	match.Dice = yahtzee.Roll(rng, match.Dice, held)
	match.HeldDice = held
	match.RollsRemaining--
	match.RollCount++
	match.UpdatedAt = u.now()
	if err := u.storage.PutYahtzeeMatch(ctx, match); err != nil {
		return entities.YahtzeeMatch{}, err
	}
	return match, nil
}

// ScoreCategory scores the turn holder's current dice into an open
// category, accrues any yahtzee bonus, and either passes the turn or
// completes the match when both scorecards are full.
func (u *YahtzeeUsecase) ScoreCategory(ctx context.Context, matchId, actorId string, category string) (ScoreResult, error) {
	if !yahtzee.Valid(yahtzee.Category(category)) {
		return ScoreResult{}, apperrors.Validationf("unknown category: %s", category)
	}
	match, err := u.currentTurnMatch(ctx, matchId, actorId)
	if err != nil {
		return ScoreResult{}, err
	}
	if len(match.Dice) != yahtzee.DiceCount {
		return ScoreResult{}, apperrors.Conflictf("no dice rolled this turn")
	}
	scorecard := match.Scorecard(actorId)
	if _, scored := scorecard[category]; scored {
		return ScoreResult{}, apperrors.Conflictf("category already scored: %s", category)
	}

	result := ScoreResult{}

	// Extra yahtzees after the yahtzee slot is filled with 50 stack as
	// 100-point bonuses without consuming another slot.
	if yahtzee.IsYahtzee(match.Dice) {
		if previous, scored := scorecard[string(yahtzee.Yahtzee)]; scored && previous > 0 {
			if actorId == match.PlayerA {
				match.BonusCountA++
			} else {
				match.BonusCountB++
			}
			result.BonusEarned = true
		}
	}

	score := yahtzee.Score(yahtzee.Category(category), match.Dice)
	scorecard[category] = score
	result.Score = score

	if len(match.ScorecardA) == len(yahtzee.Categories) &&
		len(match.ScorecardB) == len(yahtzee.Categories) {
		if err := u.completeMatch(ctx, &match); err != nil {
			return ScoreResult{}, err
		}
		result.MatchComplete = true
	} else {
		match.CurrentPlayerId = match.Opponent(actorId)
		match.Dice = []int{}
		match.HeldDice = make([]bool, yahtzee.DiceCount)
		match.RollsRemaining = rollsPerTurn
		match.UpdatedAt = u.now()
		if err := u.storage.PutYahtzeeMatch(ctx, match); err != nil {
			return ScoreResult{}, err
		}
		result.TurnChanged = true
		u.notifier.NotifyTurn(ctx, match.CurrentPlayerId, "Your turn to roll")
	}

	result.Match = match
	return result, nil
}

// currentTurnMatch loads the match and gates on the actor holding the
// turn of an active match.
func (u *YahtzeeUsecase) currentTurnMatch(ctx context.Context, matchId, actorId string) (entities.YahtzeeMatch, error) {
	match, err := u.storage.GetYahtzeeMatch(ctx, matchId)
	if errors.Is(err, storage.ErrYahtzeeMatchNotFound) {
		return entities.YahtzeeMatch{}, apperrors.NotFoundf("yahtzee match not found: %s", matchId)
	}
	if err != nil {
		return entities.YahtzeeMatch{}, err
	}
	if !match.HasPlayer(actorId) {
		return entities.YahtzeeMatch{}, apperrors.WrongTurnf("player is not part of this match")
	}
	if match.Status != entities.MatchActive {
		return entities.YahtzeeMatch{}, apperrors.Conflictf("match is not active")
	}
	if match.CurrentPlayerId != actorId {
		return entities.YahtzeeMatch{}, apperrors.WrongTurnf("not your turn")
	}
	return match, nil
}

// completeMatch tallies both scorecards, records the outcome and
// settles rewards.
func (u *YahtzeeUsecase) completeMatch(ctx context.Context, match *entities.YahtzeeMatch) error {
	finalA := yahtzee.FinalScore(match.ScorecardA, match.BonusCountA)
	finalB := yahtzee.FinalScore(match.ScorecardB, match.BonusCountB)
	match.FinalScoreA = &finalA
	match.FinalScoreB = &finalB
	match.Status = entities.MatchCompleted
	switch {
	case finalA > finalB:
		match.Winner = match.PlayerA
	case finalB > finalA:
		match.Winner = match.PlayerB
	}
	match.Dice = []int{}
	match.HeldDice = make([]bool, yahtzee.DiceCount)
	match.RollsRemaining = 0
	match.CurrentPlayerId = ""
	match.UpdatedAt = u.now()
	if err := u.storage.PutYahtzeeMatch(ctx, *match); err != nil {
		return err
	}
	for _, playerId := range []string{match.PlayerA, match.PlayerB} {
		if err := u.storage.DeleteUserYahtzeeMatch(ctx, playerId); err != nil {
			return err
		}
	}
	if err := u.settleMatch(ctx, *match, finalA, finalB); err != nil {
		return err
	}
	logging.Info("yahtzee match completed",
		zap.String("match_id", match.Id),
		zap.String("winner", match.Winner),
		zap.Int("final_a", finalA),
		zap.Int("final_b", finalB),
	)
	return nil
}

// settleMatch applies the reward policy: a winner earns 1 plus a tenth
// of the margin, the loser receives a penalty record, and a tie pays
// each player a tenth of their own score. Exempt participants are
// skipped throughout.
func (u *YahtzeeUsecase) settleMatch(ctx context.Context, match entities.YahtzeeMatch, finalA, finalB int) error {
	playerA, err := u.storage.GetUser(ctx, match.PlayerA)
	if err != nil {
		return err
	}
	playerB, err := u.storage.GetUser(ctx, match.PlayerB)
	if err != nil {
		return err
	}

	if match.Winner == "" {
		if !playerA.Exempt() {
			reason := fmt.Sprintf("Tied yahtzee match %s", match.Id)
			if err := u.ledger.CreditPoints(ctx, match.PlayerA, finalA/10, reason); err != nil {
				return err
			}
		}
		if !playerB.Exempt() {
			reason := fmt.Sprintf("Tied yahtzee match %s", match.Id)
			if err := u.ledger.CreditPoints(ctx, match.PlayerB, finalB/10, reason); err != nil {
				return err
			}
		}
		return nil
	}

	winner, winnerScore, loser, loserScore := playerA, finalA, playerB, finalB
	if match.Winner == match.PlayerB {
		winner, winnerScore, loser, loserScore = playerB, finalB, playerA, finalA
	}
	if !winner.Exempt() {
		amount := 1 + (winnerScore-loserScore)/10
		reason := fmt.Sprintf("Won yahtzee match %s", match.Id)
		if err := u.ledger.CreditPoints(ctx, winner.Id, amount, reason); err != nil {
			return err
		}
	}
	if !loser.Exempt() {
		reason := fmt.Sprintf("Lost yahtzee match %s", match.Id)
		if err := u.ledger.RecordPenalty(ctx, loser.Id, penaltyNumber(), reason); err != nil {
			return err
		}
	}
	return nil
}
