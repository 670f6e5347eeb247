package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

const defaultQuoteLinksTableName = "quote_links"

type linkItem struct {
	Token     string `dynamodbav:"token"`
	QuoteID   string `dynamodbav:"quote_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// LinkDynamoRepository is the durable shareable-link store. Tokens are the
// partition key, so resolution from a customer link is a single point read.
//
// Table requirements:
//   - PK: token (string)
type LinkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILinkStore = (*LinkDynamoRepository)(nil)

func NewLinkDynamoRepository(ddb *dynamodb.Client) *LinkDynamoRepository {
	return &LinkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_LINKS_TABLE", defaultQuoteLinksTableName),
	}
}

func (r *LinkDynamoRepository) Put(ctx context.Context, quoteID string) (string, error) {
	it := linkItem{
		Token:     uuid.NewString(),
		QuoteID:   quoteID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return "", err
	}
	return it.Token, nil
}

func (r *LinkDynamoRepository) Resolve(ctx context.Context, token string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", interfaces.ErrTokenNotFound
	}

	var it linkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.QuoteID, nil
}
