package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type event struct {
	Type          string `json:"type"`
	UserId        string `json:"userId"`
	Amount        int    `json:"amount,omitempty"`
	PenaltyNumber int    `json:"penaltyNumber,omitempty"`
	Reason        string `json:"reason"`
}

func (client *Client) CreditPoints(ctx context.Context, userId string, amount int, reason string) error {
	return client.invoke(ctx, event{
		Type:   "credit_points",
		UserId: userId,
		Amount: amount,
		Reason: reason,
	})
}

func (client *Client) RecordPenalty(ctx context.Context, userId string, penaltyNumber int, reason string) error {
	return client.invoke(ctx, event{
		Type:          "record_penalty",
		UserId:        userId,
		PenaltyNumber: penaltyNumber,
		Reason:        reason,
	})
}

func (client *Client) invoke(ctx context.Context, ev event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}
	_, err = client.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   client.cfg.LedgerFunctionArn,
		InvocationType: types.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("failed to invoke ledger function: %w", err)
	}
	return nil
}
