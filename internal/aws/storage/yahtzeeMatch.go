package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrYahtzeeMatchNotFound = fmt.Errorf("yahtzee match not found")

func (client *Client) GetYahtzeeMatch(ctx context.Context, matchId string) (entities.YahtzeeMatch, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.YahtzeeMatchesTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: matchId,
			},
		},
	})
	if err != nil {
		return entities.YahtzeeMatch{}, err
	}
	if output.Item == nil {
		return entities.YahtzeeMatch{}, ErrYahtzeeMatchNotFound
	}
	var match entities.YahtzeeMatch
	if err := attributevalue.UnmarshalMap(output.Item, &match); err != nil {
		return entities.YahtzeeMatch{}, err
	}
	return match, nil
}

// PutYahtzeeMatch writes the whole aggregate. A yahtzee turn touches
// dice, holds, roll counters and a scorecard at once, so every
// transition rewrites the row.
func (client *Client) PutYahtzeeMatch(ctx context.Context, match entities.YahtzeeMatch) error {
	av, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal yahtzee match map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.YahtzeeMatchesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put yahtzee match: %w", err)
	}
	return nil
}
