package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Shankapotamus3/DSPoints-aux-sub000/internal/domains/entities"
)

var ErrApplicationEndpointNotFound = fmt.Errorf("application endpoint not found")

func (client *Client) GetApplicationEndpoint(
	ctx context.Context,
	userId string,
) (
	entities.ApplicationEndpoint,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.ApplicationEndpointsTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.ApplicationEndpoint{}, err
	}
	if output.Item == nil {
		return entities.ApplicationEndpoint{}, ErrApplicationEndpointNotFound
	}
	var endpoint entities.ApplicationEndpoint
	if err := attributevalue.UnmarshalMap(output.Item, &endpoint); err != nil {
		return entities.ApplicationEndpoint{}, err
	}
	return endpoint, nil
}
