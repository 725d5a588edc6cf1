package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/storage"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

// fakeStorage is an in-memory stand-in for the DynamoDB client.
type fakeStorage struct {
	users              map[string]entities.User
	pokerMatches       map[string]entities.PokerMatch
	pokerRounds        map[string][]entities.PokerRound
	userPokerMatches   map[string]entities.UserMatch
	yahtzeeMatches     map[string]entities.YahtzeeMatch
	userYahtzeeMatches map[string]entities.UserMatch
}

func newFakeStorage(users ...entities.User) *fakeStorage {
	s := &fakeStorage{
		users:              map[string]entities.User{},
		pokerMatches:       map[string]entities.PokerMatch{},
		pokerRounds:        map[string][]entities.PokerRound{},
		userPokerMatches:   map[string]entities.UserMatch{},
		yahtzeeMatches:     map[string]entities.YahtzeeMatch{},
		userYahtzeeMatches: map[string]entities.UserMatch{},
	}
	for _, user := range users {
		s.users[user.Id] = user
	}
	return s
}

func (s *fakeStorage) GetUser(_ context.Context, userId string) (entities.User, error) {
	user, ok := s.users[userId]
	if !ok {
		return entities.User{}, storage.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeStorage) GetPokerMatch(_ context.Context, matchId string) (entities.PokerMatch, error) {
	match, ok := s.pokerMatches[matchId]
	if !ok {
		return entities.PokerMatch{}, storage.ErrPokerMatchNotFound
	}
	return match, nil
}

func (s *fakeStorage) PutPokerMatch(_ context.Context, match entities.PokerMatch) error {
	s.pokerMatches[match.Id] = match
	return nil
}

func (s *fakeStorage) UpdatePokerMatch(_ context.Context, matchId string, opts storage.PokerMatchUpdateOptions) error {
	match, ok := s.pokerMatches[matchId]
	if !ok {
		return fmt.Errorf("no such match: %s", matchId)
	}
	if opts.WinsA != nil {
		match.WinsA = *opts.WinsA
	}
	if opts.WinsB != nil {
		match.WinsB = *opts.WinsB
	}
	if opts.RoundNumber != nil {
		match.RoundNumber = *opts.RoundNumber
	}
	if opts.Status != nil {
		match.Status = *opts.Status
	}
	if opts.Winner != nil {
		match.Winner = *opts.Winner
	}
	if opts.UpdatedAt != nil {
		match.UpdatedAt = *opts.UpdatedAt
	}
	s.pokerMatches[matchId] = match
	return nil
}

func (s *fakeStorage) PutPokerRound(_ context.Context, round entities.PokerRound) error {
	rounds := s.pokerRounds[round.MatchId]
	for i, existing := range rounds {
		if existing.RoundNumber == round.RoundNumber {
			rounds[i] = round
			return nil
		}
	}
	s.pokerRounds[round.MatchId] = append(rounds, round)
	return nil
}

func (s *fakeStorage) GetCurrentPokerRound(_ context.Context, matchId string) (entities.PokerRound, error) {
	rounds := s.pokerRounds[matchId]
	if len(rounds) == 0 {
		return entities.PokerRound{}, storage.ErrPokerRoundNotFound
	}
	current := rounds[0]
	for _, round := range rounds[1:] {
		if round.RoundNumber > current.RoundNumber {
			current = round
		}
	}
	return current, nil
}

func (s *fakeStorage) GetUserPokerMatch(_ context.Context, userId string) (entities.UserMatch, error) {
	userMatch, ok := s.userPokerMatches[userId]
	if !ok {
		return entities.UserMatch{}, storage.ErrUserMatchNotFound
	}
	return userMatch, nil
}

func (s *fakeStorage) PutUserPokerMatch(_ context.Context, userMatch entities.UserMatch) error {
	s.userPokerMatches[userMatch.UserId] = userMatch
	return nil
}

func (s *fakeStorage) DeleteUserPokerMatch(_ context.Context, userId string) error {
	delete(s.userPokerMatches, userId)
	return nil
}

func (s *fakeStorage) GetYahtzeeMatch(_ context.Context, matchId string) (entities.YahtzeeMatch, error) {
	match, ok := s.yahtzeeMatches[matchId]
	if !ok {
		return entities.YahtzeeMatch{}, storage.ErrYahtzeeMatchNotFound
	}
	return match, nil
}

func (s *fakeStorage) PutYahtzeeMatch(_ context.Context, match entities.YahtzeeMatch) error {
	s.yahtzeeMatches[match.Id] = match
	return nil
}

func (s *fakeStorage) GetUserYahtzeeMatch(_ context.Context, userId string) (entities.UserMatch, error) {
	userMatch, ok := s.userYahtzeeMatches[userId]
	if !ok {
		return entities.UserMatch{}, storage.ErrUserMatchNotFound
	}
	return userMatch, nil
}

func (s *fakeStorage) PutUserYahtzeeMatch(_ context.Context, userMatch entities.UserMatch) error {
	s.userYahtzeeMatches[userMatch.UserId] = userMatch
	return nil
}

func (s *fakeStorage) DeleteUserYahtzeeMatch(_ context.Context, userId string) error {
	delete(s.userYahtzeeMatches, userId)
	return nil
}

type creditCall struct {
	userId string
	amount int
	reason string
}

type penaltyCall struct {
	userId        string
	penaltyNumber int
	reason        string
}

type fakeLedger struct {
	credits   []creditCall
	penalties []penaltyCall
}

func (l *fakeLedger) CreditPoints(_ context.Context, userId string, amount int, reason string) error {
	l.credits = append(l.credits, creditCall{userId: userId, amount: amount, reason: reason})
	return nil
}

func (l *fakeLedger) RecordPenalty(_ context.Context, userId string, penaltyNumber int, reason string) error {
	l.penalties = append(l.penalties, penaltyCall{userId: userId, penaltyNumber: penaltyNumber, reason: reason})
	return nil
}

type notifyCall struct {
	userId  string
	message string
}

type fakeNotifier struct {
	notifications []notifyCall
}

func (n *fakeNotifier) NotifyTurn(_ context.Context, userId, message string) error {
	n.notifications = append(n.notifications, notifyCall{userId: userId, message: message})
	return nil
}

func fixedTime() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}
