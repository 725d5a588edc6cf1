package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrPokerRoundNotFound = fmt.Errorf("poker round not found")

// PutPokerRound writes the round wholesale. Each state transition is a
// full rewrite of the aggregate, keyed by match id and round number.
func (client *Client) PutPokerRound(ctx context.Context, round entities.PokerRound) error {
	av, err := attributevalue.MarshalMap(round)
	if err != nil {
		return fmt.Errorf("failed to marshal poker round map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.PokerRoundsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put poker round: %w", err)
	}
	return nil
}

// GetCurrentPokerRound returns the round with the highest round number
// for the match. Exactly one non-complete round exists per active
// match.
func (client *Client) GetCurrentPokerRound(ctx context.Context, matchId string) (entities.PokerRound, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.PokerRoundsTableName,
		KeyConditionExpression: aws.String("MatchId = :matchId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchId},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.PokerRound{}, err
	}
	if len(output.Items) == 0 {
		return entities.PokerRound{}, ErrPokerRoundNotFound
	}
	var round entities.PokerRound
	if err := attributevalue.UnmarshalMap(output.Items[0], &round); err != nil {
		return entities.PokerRound{}, err
	}
	return round, nil
}
