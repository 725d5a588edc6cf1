package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrUserNotFound = fmt.Errorf("user not found")

func (client *Client) GetUser(ctx context.Context, userId string) (entities.User, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.UsersTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if output.Item == nil {
		return entities.User{}, ErrUserNotFound
	}
	var user entities.User
	if err := attributevalue.UnmarshalMap(output.Item, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}
