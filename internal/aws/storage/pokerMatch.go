package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrPokerMatchNotFound = fmt.Errorf("poker match not found")

type PokerMatchUpdateOptions struct {
	WinsA       *int
	WinsB       *int
	RoundNumber *int
	Status      *entities.MatchStatus
	Winner      *string
	UpdatedAt   *time.Time
}

func (client *Client) GetPokerMatch(ctx context.Context, matchId string) (entities.PokerMatch, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.PokerMatchesTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: matchId,
			},
		},
	})
	if err != nil {
		return entities.PokerMatch{}, err
	}
	if output.Item == nil {
		return entities.PokerMatch{}, ErrPokerMatchNotFound
	}
	var match entities.PokerMatch
	if err := attributevalue.UnmarshalMap(output.Item, &match); err != nil {
		return entities.PokerMatch{}, err
	}
	return match, nil
}

func (client *Client) PutPokerMatch(ctx context.Context, match entities.PokerMatch) error {
	av, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal poker match map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.PokerMatchesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put poker match: %w", err)
	}
	return nil
}

func (client *Client) UpdatePokerMatch(
	ctx context.Context,
	matchId string,
	opts PokerMatchUpdateOptions,
) error {
	updateExpression := []string{}
	expressionAttributeNames := map[string]string{}
	expressionAttributeValues := map[string]types.AttributeValue{}

	if opts.WinsA != nil {
		updateExpression = append(updateExpression, "WinsA = :winsA")
		expressionAttributeValues[":winsA"] = &types.AttributeValueMemberN{
			Value: fmt.Sprintf("%d", *opts.WinsA),
		}
	}
	if opts.WinsB != nil {
		updateExpression = append(updateExpression, "WinsB = :winsB")
		expressionAttributeValues[":winsB"] = &types.AttributeValueMemberN{
			Value: fmt.Sprintf("%d", *opts.WinsB),
		}
	}
	if opts.RoundNumber != nil {
		updateExpression = append(updateExpression, "RoundNumber = :roundNumber")
		expressionAttributeValues[":roundNumber"] = &types.AttributeValueMemberN{
			Value: fmt.Sprintf("%d", *opts.RoundNumber),
		}
	}
	if opts.Status != nil {
		updateExpression = append(updateExpression, "#status = :status")
		expressionAttributeNames["#status"] = "Status"
		expressionAttributeValues[":status"] = &types.AttributeValueMemberS{
			Value: string(*opts.Status),
		}
	}
	if opts.Winner != nil {
		updateExpression = append(updateExpression, "Winner = :winner")
		expressionAttributeValues[":winner"] = &types.AttributeValueMemberS{
			Value: *opts.Winner,
		}
	}
	if opts.UpdatedAt != nil {
		updateExpression = append(updateExpression, "UpdatedAt = :updatedAt")
		expressionAttributeValues[":updatedAt"] = &types.AttributeValueMemberS{
			Value: opts.UpdatedAt.Format(time.RFC3339),
		}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: client.cfg.PokerMatchesTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: matchId,
			},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(updateExpression, ", ")),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	_, err := client.dynamodb.UpdateItem(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to update poker match: %w", err)
	}
	return nil
}
