package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	lambdasvc "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/auth"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/ledger"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/notification"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/aws/storage"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/apperrors"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/dtos"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/usecases"
	"github.com/Shankapotamus3/DSPoints-aux-sub000/pkg/logging"
)

var pokerUsecase *usecases.PokerUsecase

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		panic(err)
	}
	storageClient := storage.NewClient(dynamodb.NewFromConfig(cfg))
	notifier := notification.NewTurnNotifier(
		notification.NewClient(sns.NewFromConfig(cfg)),
		storageClient,
	)
	pokerUsecase = usecases.NewPokerUsecase(
		storageClient,
		ledger.NewClient(lambdasvc.NewFromConfig(cfg)),
		notifier,
	)
}

func handler(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	userId, err := auth.UserId(request)
	if err != nil {
		return respond(http.StatusUnauthorized, map[string]string{"error": err.Error()}), nil
	}
	var req dtos.PokerDiscardRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return respond(http.StatusBadRequest, map[string]string{"error": "invalid request body"}), nil
	}

	result, err := pokerUsecase.SubmitDiscard(ctx, req.MatchId, userId, req.DiscardIndices)
	if err != nil {
		return respondError(err), nil
	}
	return respond(http.StatusOK, dtos.PokerDiscardResponseFromResult(result, userId)), nil
}

func respond(status int, body interface{}) events.APIGatewayV2HTTPResponse {
	payload, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}

func respondError(err error) events.APIGatewayV2HTTPResponse {
	status := apperrors.StatusOf(err)
	if status == http.StatusInternalServerError {
		logging.Error("failed to submit discard", zap.Error(err))
	}
	return respond(status, map[string]string{"error": err.Error()})
}

func main() {
	lambda.Start(handler)
}
