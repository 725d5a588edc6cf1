package usecases

import (
	"context"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/storage"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

// PokerStorage is the persistence the poker engine needs. Satisfied by
// *storage.Client.
type PokerStorage interface {
	GetUser(ctx context.Context, userId string) (entities.User, error)

	GetPokerMatch(ctx context.Context, matchId string) (entities.PokerMatch, error)
	PutPokerMatch(ctx context.Context, match entities.PokerMatch) error
	UpdatePokerMatch(ctx context.Context, matchId string, opts storage.PokerMatchUpdateOptions) error

	PutPokerRound(ctx context.Context, round entities.PokerRound) error
	GetCurrentPokerRound(ctx context.Context, matchId string) (entities.PokerRound, error)

	GetUserPokerMatch(ctx context.Context, userId string) (entities.UserMatch, error)
	PutUserPokerMatch(ctx context.Context, userMatch entities.UserMatch) error
	DeleteUserPokerMatch(ctx context.Context, userId string) error
}

// YahtzeeStorage is the persistence the yahtzee engine needs.
// Satisfied by *storage.Client.
type YahtzeeStorage interface {
	GetUser(ctx context.Context, userId string) (entities.User, error)

	GetYahtzeeMatch(ctx context.Context, matchId string) (entities.YahtzeeMatch, error)
	PutYahtzeeMatch(ctx context.Context, match entities.YahtzeeMatch) error

	GetUserYahtzeeMatch(ctx context.Context, userId string) (entities.UserMatch, error)
	PutUserYahtzeeMatch(ctx context.Context, userMatch entities.UserMatch) error
	DeleteUserYahtzeeMatch(ctx context.Context, userId string) error
}

// Ledger is the external points/penalty collaborator.
type Ledger interface {
	CreditPoints(ctx context.Context, userId string, amount int, reason string) error
	RecordPenalty(ctx context.Context, userId string, penaltyNumber int, reason string) error
}

// Notifier tells a player it is their move. Implementations are best
// effort and must not fail a committed move.
type Notifier interface {
	NotifyTurn(ctx context.Context, userId, message string) error
}
