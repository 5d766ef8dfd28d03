package service

import (
	"context"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/items"
	"github.com/mercata/shop-backend/internal/orders"
)

// Store contracts consumed by the services. The DynamoDB-backed stores satisfy
// them in production; tests plug in in-memory fakes.

type ClientStore interface {
	Create(ctx context.Context, c clients.Client) (*clients.Client, error)
	Get(ctx context.Context, clientID string) (*clients.Client, error)
	List(ctx context.Context) ([]clients.Client, error)
	Save(ctx context.Context, c clients.Client) (*clients.Client, error)
	Delete(ctx context.Context, clientID string) error
}

type ItemStore interface {
	Create(ctx context.Context, it items.Item) (*items.Item, error)
	Get(ctx context.Context, itemID string) (*items.Item, error)
	List(ctx context.Context) ([]items.Item, error)
	Save(ctx context.Context, it items.Item) (*items.Item, error)
	Delete(ctx context.Context, itemID string) error
}

type OrderStore interface {
	Create(ctx context.Context, o orders.Order) (*orders.Order, error)
	Get(ctx context.Context, orderID string) (*orders.Order, error)
	List(ctx context.Context) ([]orders.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]orders.Order, error)
	ListByItem(ctx context.Context, itemID string) ([]orders.Order, error)
	Save(ctx context.Context, o orders.Order) (*orders.Order, error)
	Delete(ctx context.Context, orderID string) error
	DeleteWithOwnerTransaction(ctx context.Context, ownerTable, ownerKeyAttr, ownerID string, orderIDs []string) error
}

// EventPublisher emits order lifecycle events. Publishing is best-effort:
// services log failures and never fail the request over them.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev awsx.OrderEvent) error
}
