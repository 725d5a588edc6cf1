package notification

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/storage"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/logging"
)

type EndpointStore interface {
	GetApplicationEndpoint(ctx context.Context, userId string) (entities.ApplicationEndpoint, error)
}

// TurnNotifier resolves a user's push endpoint and publishes a turn
// notification to it. Notification is best effort: a missing endpoint
// or publish failure is logged and never fails the move that triggered
// it.
type TurnNotifier struct {
	client    *Client
	endpoints EndpointStore
}

func NewTurnNotifier(client *Client, endpoints EndpointStore) *TurnNotifier {
	return &TurnNotifier{
		client:    client,
		endpoints: endpoints,
	}
}

func (notifier *TurnNotifier) NotifyTurn(ctx context.Context, userId, message string) error {
	endpoint, err := notifier.endpoints.GetApplicationEndpoint(ctx, userId)
	if errors.Is(err, storage.ErrApplicationEndpointNotFound) {
		logging.Info("no application endpoint", zap.String("user_id", userId))
		return nil
	}
	if err != nil {
		logging.Error("failed to look up application endpoint",
			zap.String("user_id", userId),
			zap.Error(err),
		)
		return nil
	}
	if err := notifier.client.SendPushNotification(ctx, endpoint.EndpointArn, message); err != nil {
		logging.Error("failed to send turn notification",
			zap.String("user_id", userId),
			zap.Error(err),
		)
	}
	return nil
}
