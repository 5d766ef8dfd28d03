package orders

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

// transactLimit is DynamoDB's cap on items per TransactWriteItems call.
const transactLimit = 100

// Store encapsulates operations on the orders table.
type Store struct {
	client    awsx.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	newID     func() string
}

// NewStore creates a new orders Store.
func NewStore(client awsx.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		newID:     uuid.NewString,
	}
}

// Create persists a new order with a freshly assigned id and returns it.
func (s *Store) Create(ctx context.Context, o Order) (*Order, error) {
	now := s.nowFunc()
	o.OrderID = s.newID()
	o.CreatedAt = now
	o.UpdatedAt = now

	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(order_id)"),
	})
	if err != nil {
		var sc smithy.APIError
		if errors.As(err, &sc) && sc.ErrorCode() == "ConditionalCheckFailedException" {
			return nil, fmt.Errorf("order id collision: %s", o.OrderID)
		}
		return nil, fmt.Errorf("put order: %w", err)
	}
	return &o, nil
}

// Get fetches an order by order_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// List returns every order in the table.
func (s *Store) List(ctx context.Context) ([]Order, error) {
	var all []Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		var page []Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		all = append(all, page...)
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ListByClient returns every order owned by clientID via the client_id-index
// GSI. An owner with no orders yields an empty slice, not an error.
func (s *Store) ListByClient(ctx context.Context, clientID string) ([]Order, error) {
	return s.queryIndex(ctx, ClientIndex, "client_id", clientID)
}

// ListByItem returns every order referencing itemID via the item_id-index GSI.
func (s *Store) ListByItem(ctx context.Context, itemID string) ([]Order, error) {
	return s.queryIndex(ctx, ItemIndex, "item_id", itemID)
}

func (s *Store) queryIndex(ctx context.Context, index, keyAttr, keyValue string) ([]Order, error) {
	var all []Order
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, &dyn.QueryInput{
			TableName:              &s.tableName,
			IndexName:              &index,
			KeyConditionExpression: awsString(fmt.Sprintf("%s = :v", keyAttr)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: keyValue},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", index, err)
		}
		var page []Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		all = append(all, page...)
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Save overwrites an existing order record, bumping updated_at.
func (s *Store) Save(ctx context.Context, o Order) (*Order, error) {
	o.UpdatedAt = s.nowFunc()

	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("put order: %w", err)
	}
	return &o, nil
}

// Delete removes a single order record.
func (s *Store) Delete(ctx context.Context, orderID string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteWithOwnerTransaction atomically deletes an owning record (a client or
// an item) together with its dependent orders via TransactWriteItems.
// ownerTable/ownerKeyAttr identify the parent row. Transactions cap at
// transactLimit items per call, so large cascades issue several calls; the
// owner row rides in the last one, after its dependents are gone.
func (s *Store) DeleteWithOwnerTransaction(ctx context.Context, ownerTable, ownerKeyAttr, ownerID string, orderIDs []string) error {
	ownerDelete := types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: &ownerTable,
			Key: map[string]types.AttributeValue{
				ownerKeyAttr: &types.AttributeValueMemberS{Value: ownerID},
			},
		},
	}

	pending := make([]types.TransactWriteItem, 0, len(orderIDs)+1)
	for _, id := range orderIDs {
		pending = append(pending, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: &s.tableName,
				Key: map[string]types.AttributeValue{
					"order_id": &types.AttributeValueMemberS{Value: id},
				},
			},
		})
	}
	pending = append(pending, ownerDelete)

	for len(pending) > 0 {
		n := len(pending)
		if n > transactLimit {
			n = transactLimit
		}
		batch := pending[:n]
		pending = pending[n:]

		_, err := s.client.TransactWriteItems(ctx, &dyn.TransactWriteItemsInput{
			TransactItems: batch,
		})
		if err != nil {
			var tce *types.TransactionCanceledException
			if errors.As(err, &tce) {
				return fmt.Errorf("cascade delete canceled: %w", err)
			}
			return fmt.Errorf("transact delete: %w", err)
		}
	}
	return nil
}

func awsString(s string) *string { return &s }
