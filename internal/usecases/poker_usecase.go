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
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/cards"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/games/poker"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/logging"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/random"
)

const (
	pokerHandSize    = 7
	pokerMaxDiscards = 5
)

type PokerUsecase struct {
	storage  PokerStorage
	ledger   Ledger
	notifier Notifier

	newSeed func() string
	now     func() time.Time
}

func NewPokerUsecase(pokerStorage PokerStorage, pointsLedger Ledger, notifier Notifier) *PokerUsecase {
	return &PokerUsecase{
		storage:  pokerStorage,
		ledger:   pointsLedger,
		notifier: notifier,
		newSeed:  random.NewSeed,
		now:      time.Now,
	}
}

// DiscardResult reports what one discard submission did to the round
// and, when the round closed, to the match.
type DiscardResult struct {
	Match           entities.PokerMatch
	Round           entities.PokerRound
	FirstPlayerDone bool
	RoundComplete   bool
	MatchComplete   bool
	NextRound       *entities.PokerRound
}

// StartMatch creates a match between the starter and the opponent and
// deals round one. The starter is the first player of round one.
func (u *PokerUsecase) StartMatch(ctx context.Context, starterId, opponentId string) (entities.PokerMatch, entities.PokerRound, error) {
	if starterId == opponentId {
		return entities.PokerMatch{}, entities.PokerRound{},
			apperrors.Validationf("cannot start a match against yourself")
	}
	if _, err := u.storage.GetUser(ctx, opponentId); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return entities.PokerMatch{}, entities.PokerRound{},
				apperrors.NotFoundf("opponent not found: %s", opponentId)
		}
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	for _, playerId := range []string{starterId, opponentId} {
		_, err := u.storage.GetUserPokerMatch(ctx, playerId)
		if err == nil {
			return entities.PokerMatch{}, entities.PokerRound{},
				apperrors.Conflictf("player %s already has an active poker match", playerId)
		}
		if !errors.Is(err, storage.ErrUserMatchNotFound) {
			return entities.PokerMatch{}, entities.PokerRound{}, err
		}
	}

	now := u.now()
	match := entities.PokerMatch{
		Id:          uuid.NewString(),
		PlayerA:     starterId,
		PlayerB:     opponentId,
		RoundNumber: 1,
		Status:      entities.MatchActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	round := u.dealRound(match.Id, 1, starterId)

	if err := u.storage.PutPokerMatch(ctx, match); err != nil {
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	if err := u.storage.PutPokerRound(ctx, round); err != nil {
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	for _, playerId := range []string{starterId, opponentId} {
		err := u.storage.PutUserPokerMatch(ctx, entities.UserMatch{
			UserId:  playerId,
			MatchId: match.Id,
		})
		if err != nil {
			return entities.PokerMatch{}, entities.PokerRound{}, err
		}
	}

	logging.Info("poker match started",
		zap.String("match_id", match.Id),
		zap.String("player_a", starterId),
		zap.String("player_b", opponentId),
	)
	u.notifier.NotifyTurn(ctx, opponentId, "You have been challenged to a poker match")
	return match, round, nil
}

// CurrentMatch returns the player's active poker match and its current
// round.
func (u *PokerUsecase) CurrentMatch(ctx context.Context, playerId string) (entities.PokerMatch, entities.PokerRound, error) {
	userMatch, err := u.storage.GetUserPokerMatch(ctx, playerId)
	if errors.Is(err, storage.ErrUserMatchNotFound) {
		return entities.PokerMatch{}, entities.PokerRound{},
			apperrors.NotFoundf("no active poker match")
	}
	if err != nil {
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	match, err := u.storage.GetPokerMatch(ctx, userMatch.MatchId)
	if err != nil {
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	round, err := u.storage.GetCurrentPokerRound(ctx, match.Id)
	if err != nil {
		return entities.PokerMatch{}, entities.PokerRound{}, err
	}
	return match, round, nil
}

// SubmitDiscard plays one player's discard-and-draw. The first player
// acts while the round is in first_player_turn; the second player acts
// in first_player_done, drawing replacements offset past whatever the
// first player drew. The second submission resolves the round and, at
// ten round wins, the match.
func (u *PokerUsecase) SubmitDiscard(ctx context.Context, matchId, actorId string, discards []int) (DiscardResult, error) {
	if err := validateDiscards(discards); err != nil {
		return DiscardResult{}, err
	}

	match, err := u.storage.GetPokerMatch(ctx, matchId)
	if errors.Is(err, storage.ErrPokerMatchNotFound) {
		return DiscardResult{}, apperrors.NotFoundf("poker match not found: %s", matchId)
	}
	if err != nil {
		return DiscardResult{}, err
	}
	if !match.HasPlayer(actorId) {
		return DiscardResult{}, apperrors.WrongTurnf("player is not part of this match")
	}
	if match.Status != entities.MatchActive {
		return DiscardResult{}, apperrors.Conflictf("match is not active")
	}
	round, err := u.storage.GetCurrentPokerRound(ctx, matchId)
	if err != nil {
		return DiscardResult{}, err
	}

	switch round.Status {
	case entities.RoundFirstPlayerTurn:
		if actorId != round.FirstPlayerId {
			return DiscardResult{}, apperrors.WrongTurnf("waiting on the first player")
		}
		if err := u.applyDiscard(&round, match, actorId, discards, 0); err != nil {
			return DiscardResult{}, err
		}
		round.Status = entities.RoundFirstPlayerDone
		round.UpdatedAt = u.now()
		if err := u.storage.PutPokerRound(ctx, round); err != nil {
			return DiscardResult{}, err
		}
		u.notifier.NotifyTurn(ctx, match.Opponent(actorId), "Your opponent has drawn - your move")
		return DiscardResult{Match: match, Round: round, FirstPlayerDone: true}, nil

	case entities.RoundFirstPlayerDone:
		if actorId == round.FirstPlayerId {
			return DiscardResult{}, apperrors.WrongTurnf("first player has already drawn this round")
		}
		firstDrawn := firstPlayerDrawCount(round, match)
		if err := u.applyDiscard(&round, match, actorId, discards, firstDrawn); err != nil {
			return DiscardResult{}, err
		}
		return u.resolveRound(ctx, match, round)

	default:
		return DiscardResult{}, apperrors.Conflictf("round is already complete")
	}
}

func validateDiscards(discards []int) error {
	if len(discards) > pokerMaxDiscards {
		return apperrors.Validationf("at most %d cards may be discarded", pokerMaxDiscards)
	}
	seen := map[int]bool{}
	for _, index := range discards {
		if index < 0 || index >= pokerHandSize {
			return apperrors.Validationf("discard index out of range: %d", index)
		}
		if seen[index] {
			return apperrors.Validationf("duplicate discard index: %d", index)
		}
		seen[index] = true
	}
	return nil
}

func (u *PokerUsecase) dealRound(matchId string, roundNumber int, firstPlayerId string) entities.PokerRound {
	seed := u.newSeed()
	deck := cards.Shuffled(seed)
	now := u.now()
	return entities.PokerRound{
		Id:            uuid.NewString(),
		MatchId:       matchId,
		RoundNumber:   roundNumber,
		Status:        entities.RoundFirstPlayerTurn,
		FirstPlayerId: firstPlayerId,
		DeckSeed:      seed,
		HandA:         cards.Codes(deck[:pokerHandSize]),
		HandB:         cards.Codes(deck[pokerHandSize : 2*pokerHandSize]),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// applyDiscard swaps the discarded cards for replacements drawn in
// order from the seeded deck's remaining tail, then evaluates and
// locks in the player's best hand. offset is how many tail cards the
// other player has already drawn, so the two never overlap.
func (u *PokerUsecase) applyDiscard(
	round *entities.PokerRound,
	match entities.PokerMatch,
	actorId string,
	discards []int,
	offset int,
) error {
	deck := cards.Shuffled(round.DeckSeed)
	tail := deck[2*pokerHandSize:]

	handCodes := round.HandA
	if actorId == match.PlayerB {
		handCodes = round.HandB
	}
	hand, err := cards.ParseAll(handCodes)
	if err != nil {
		return fmt.Errorf("failed to parse stored hand: %w", err)
	}
	for i, index := range discards {
		hand[index] = tail[offset+i]
	}
	best, rank := poker.BestHand(hand)

	if actorId == match.PlayerB {
		round.HandB = cards.Codes(hand)
		round.DiscardsB = discards
		round.BestHandB = cards.Codes(best)
		round.RankNameB = rank.Category.String()
	} else {
		round.HandA = cards.Codes(hand)
		round.DiscardsA = discards
		round.BestHandA = cards.Codes(best)
		round.RankNameA = rank.Category.String()
	}
	return nil
}

func firstPlayerDrawCount(round entities.PokerRound, match entities.PokerMatch) int {
	if round.FirstPlayerId == match.PlayerB {
		return len(round.DiscardsB)
	}
	return len(round.DiscardsA)
}

// resolveRound compares the locked-in best hands, closes the round and
// either completes the match or deals the next round with the first
// player flipped.
func (u *PokerUsecase) resolveRound(
	ctx context.Context,
	match entities.PokerMatch,
	round entities.PokerRound,
) (DiscardResult, error) {
	bestA, err := cards.ParseAll(round.BestHandA)
	if err != nil {
		return DiscardResult{}, fmt.Errorf("failed to parse best hand: %w", err)
	}
	bestB, err := cards.ParseAll(round.BestHandB)
	if err != nil {
		return DiscardResult{}, fmt.Errorf("failed to parse best hand: %w", err)
	}

	switch poker.Compare(poker.Evaluate(bestA), poker.Evaluate(bestB)) {
	case 1:
		round.RoundWinner = match.PlayerA
		match.WinsA++
	case -1:
		round.RoundWinner = match.PlayerB
		match.WinsB++
	default:
		round.IsTie = true
	}
	round.Status = entities.RoundComplete
	round.UpdatedAt = u.now()
	if err := u.storage.PutPokerRound(ctx, round); err != nil {
		return DiscardResult{}, err
	}

	now := u.now()
	result := DiscardResult{Round: round, RoundComplete: true}

	if match.WinsA >= entities.PokerWinThreshold || match.WinsB >= entities.PokerWinThreshold {
		match.Status = entities.MatchCompleted
		match.Winner = match.PlayerA
		if match.WinsB > match.WinsA {
			match.Winner = match.PlayerB
		}
		match.UpdatedAt = now
		err := u.storage.UpdatePokerMatch(ctx, match.Id, storage.PokerMatchUpdateOptions{
			WinsA:     &match.WinsA,
			WinsB:     &match.WinsB,
			Status:    &match.Status,
			Winner:    &match.Winner,
			UpdatedAt: &now,
		})
		if err != nil {
			return DiscardResult{}, err
		}
		for _, playerId := range []string{match.PlayerA, match.PlayerB} {
			if err := u.storage.DeleteUserPokerMatch(ctx, playerId); err != nil {
				return DiscardResult{}, err
			}
		}
		if err := u.settleMatch(ctx, match); err != nil {
			return DiscardResult{}, err
		}
		logging.Info("poker match completed",
			zap.String("match_id", match.Id),
			zap.String("winner", match.Winner),
			zap.Int("wins_a", match.WinsA),
			zap.Int("wins_b", match.WinsB),
		)
		result.Match = match
		result.MatchComplete = true
		return result, nil
	}

	nextNumber := match.RoundNumber + 1
	match.RoundNumber = nextNumber
	match.UpdatedAt = now
	err = u.storage.UpdatePokerMatch(ctx, match.Id, storage.PokerMatchUpdateOptions{
		WinsA:       &match.WinsA,
		WinsB:       &match.WinsB,
		RoundNumber: &nextNumber,
		UpdatedAt:   &now,
	})
	if err != nil {
		return DiscardResult{}, err
	}
	nextRound := u.dealRound(match.Id, nextNumber, match.Opponent(round.FirstPlayerId))
	if err := u.storage.PutPokerRound(ctx, nextRound); err != nil {
		return DiscardResult{}, err
	}
	u.notifier.NotifyTurn(ctx, nextRound.FirstPlayerId,
		fmt.Sprintf("Poker round %d - you draw first", nextNumber))

	result.Match = match
	result.NextRound = &nextRound
	return result, nil
}

// settleMatch applies the reward policy: the winner is credited the
// win margin in points, the loser receives a penalty record. Exempt
// participants are skipped on both sides.
func (u *PokerUsecase) settleMatch(ctx context.Context, match entities.PokerMatch) error {
	winnerId := match.Winner
	loserId := match.Opponent(winnerId)
	margin := match.WinsA - match.WinsB
	if margin < 0 {
		margin = -margin
	}

	winner, err := u.storage.GetUser(ctx, winnerId)
	if err != nil {
		return err
	}
	if !winner.Exempt() {
		reason := fmt.Sprintf("Won poker match %s", match.Id)
		if err := u.ledger.CreditPoints(ctx, winnerId, margin, reason); err != nil {
			return err
		}
	}

	loser, err := u.storage.GetUser(ctx, loserId)
	if err != nil {
		return err
	}
	if !loser.Exempt() {
		reason := fmt.Sprintf("Lost poker match %s", match.Id)
		if err := u.ledger.RecordPenalty(ctx, loserId, penaltyNumber(), reason); err != nil {
			return err
		}
	}
	return nil
}

func penaltyNumber() int {
	return int(uuid.New().ID()%1000) + 1
}
