package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/mercata/shop-backend/internal/awsx"
)

// Store encapsulates operations on the clients table. Identifiers are
// assigned here on create; callers never mint ids themselves.
type Store struct {
	client    awsx.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	newID     func() string
}

// NewStore creates a new clients Store.
func NewStore(client awsx.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		newID:     uuid.NewString,
	}
}

// Create persists a new client with a freshly assigned id and returns it.
func (s *Store) Create(ctx context.Context, c Client) (*Client, error) {
	now := s.nowFunc()
	c.ClientID = s.newID()
	c.CreatedAt = now
	c.UpdatedAt = now

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return nil, fmt.Errorf("marshal client: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(client_id)"),
	})
	if err != nil {
		var sc smithy.APIError
		if errors.As(err, &sc) && sc.ErrorCode() == "ConditionalCheckFailedException" {
			return nil, fmt.Errorf("client id collision: %s", c.ClientID)
		}
		return nil, fmt.Errorf("put client: %w", err)
	}
	return &c, nil
}

// Get fetches a client by client_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, clientID string) (*Client, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Client
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal client: %w", err)
	}
	return &c, nil
}

// List returns every client in the table.
func (s *Store) List(ctx context.Context) ([]Client, error) {
	var all []Client
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan clients: %w", err)
		}
		var page []Client
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal clients: %w", err)
		}
		all = append(all, page...)
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Save overwrites an existing client record, bumping updated_at.
func (s *Store) Save(ctx context.Context, c Client) (*Client, error) {
	c.UpdatedAt = s.nowFunc()

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return nil, fmt.Errorf("marshal client: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("put client: %w", err)
	}
	return &c, nil
}

// Delete removes a client record. Cascading removal of the client's orders
// goes through the orders store's owner transaction instead.
func (s *Store) Delete(ctx context.Context, clientID string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
