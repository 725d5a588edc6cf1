package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrUserMatchNotFound = fmt.Errorf("user match not found")

// The user-match tables index each player's single active match per
// game type. Rows are written at match start and deleted at match
// completion.

func (client *Client) GetUserPokerMatch(ctx context.Context, userId string) (entities.UserMatch, error) {
	return client.getUserMatch(ctx, client.cfg.UserPokerMatchesTableName, userId)
}

func (client *Client) PutUserPokerMatch(ctx context.Context, userMatch entities.UserMatch) error {
	return client.putUserMatch(ctx, client.cfg.UserPokerMatchesTableName, userMatch)
}

func (client *Client) DeleteUserPokerMatch(ctx context.Context, userId string) error {
	return client.deleteUserMatch(ctx, client.cfg.UserPokerMatchesTableName, userId)
}

func (client *Client) GetUserYahtzeeMatch(ctx context.Context, userId string) (entities.UserMatch, error) {
	return client.getUserMatch(ctx, client.cfg.UserYahtzeeMatchesTableName, userId)
}

func (client *Client) PutUserYahtzeeMatch(ctx context.Context, userMatch entities.UserMatch) error {
	return client.putUserMatch(ctx, client.cfg.UserYahtzeeMatchesTableName, userMatch)
}

func (client *Client) DeleteUserYahtzeeMatch(ctx context.Context, userId string) error {
	return client.deleteUserMatch(ctx, client.cfg.UserYahtzeeMatchesTableName, userId)
}

func (client *Client) getUserMatch(
	ctx context.Context,
	tableName *string,
	userId string,
) (entities.UserMatch, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: tableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.UserMatch{}, err
	}
	if output.Item == nil {
		return entities.UserMatch{}, ErrUserMatchNotFound
	}
	var userMatch entities.UserMatch
	if err := attributevalue.UnmarshalMap(output.Item, &userMatch); err != nil {
		return entities.UserMatch{}, err
	}
	return userMatch, nil
}

func (client *Client) putUserMatch(
	ctx context.Context,
	tableName *string,
	userMatch entities.UserMatch,
) error {
	av, err := attributevalue.MarshalMap(userMatch)
	if err != nil {
		return fmt.Errorf("failed to marshal user match map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put user match: %w", err)
	}
	return nil
}

func (client *Client) deleteUserMatch(
	ctx context.Context,
	tableName *string,
	userId string,
) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: tableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{Value: userId},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete user match: %w", err)
	}
	return nil
}
