package service

import (
	"context"
	"time"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/orders"
	"github.com/mercata/shop-backend/internal/validation"
)

// ClientOrderService serves the client-scoped order sub-resource. Operations
// addressing a single order enforce ownership: the order's stored client
// reference must equal the path client id, and a mismatch is Forbidden.
//
// Unlike the top-level order surface, this one derives values server-side:
// the purchase date is always today and the total is a snapshot of the item's
// current price.
type ClientOrderService struct {
	orders  OrderStore
	clients ClientStore
	items   ItemStore
	events  EventPublisher
	nowFunc func() time.Time
}

// NewClientOrderService wires a ClientOrderService. events may be nil.
func NewClientOrderService(os OrderStore, cs ClientStore, is ItemStore, events EventPublisher) *ClientOrderService {
	return &ClientOrderService{
		orders:  os,
		clients: cs,
		items:   is,
		events:  events,
		nowFunc: time.Now,
	}
}

func (s *ClientOrderService) today() string {
	return s.nowFunc().UTC().Format(orders.DateLayout)
}

func (s *ClientOrderService) resolveClient(ctx context.Context, clientID string) (*clients.Client, error) {
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.NotFound("No Client found with id %s", clientID)
	}
	return client, nil
}

func (s *ClientOrderService) resolveOrder(ctx context.Context, orderID string) (*orders.Order, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, httperr.NotFound("No Order found with id %s", orderID)
	}
	return o, nil
}

func ownershipCheck(o *orders.Order, clientID string) error {
	if o.ClientID != clientID {
		return httperr.Forbidden("Order with id %s does not belong to client with id %s", o.OrderID, clientID)
	}
	return nil
}

// GetOrdersByClientID returns every order owned by the client via the indexed
// lookup. A client with no orders gets an empty list, not an error.
func (s *ClientOrderService) GetOrdersByClientID(ctx context.Context, clientID string) ([]orders.Order, error) {
	if _, err := s.resolveClient(ctx, clientID); err != nil {
		return nil, err
	}
	list, err := s.orders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []orders.Order{}
	}
	return list, nil
}

// GetOrderByClientAndID returns the order after the ownership check.
func (s *ClientOrderService) GetOrderByClientAndID(ctx context.Context, clientID, orderID string) (*orders.Order, error) {
	if _, err := s.resolveClient(ctx, clientID); err != nil {
		return nil, err
	}
	o, err := s.resolveOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := ownershipCheck(o, clientID); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrderForClient creates an order owned by clientID with the purchase
// date defaulted to today and the total snapshotted from the item's current
// price. The caller supplies only the item id.
func (s *ClientOrderService) CreateOrderForClient(ctx context.Context, clientID string, req validation.ClientOrderRequest) (*orders.Order, error) {
	client, err := s.resolveClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, httperr.NotFound("No Item found with id %s", req.ItemID)
	}

	created, err := s.orders.Create(ctx, orders.Order{
		ClientID:     client.ClientID,
		ItemID:       item.ItemID,
		PurchaseDate: s.today(),
		Total:        item.Price,
	})
	if err != nil {
		return nil, err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderCreated, created)
	return created, nil
}

// UpdateOrderByID swaps the order's item and resets the purchase date to
// today and the total to the new item's price. The previous item, date, and
// total are fully discarded; the owning client never changes.
func (s *ClientOrderService) UpdateOrderByID(ctx context.Context, clientID, orderID string, req validation.ClientOrderRequest) (*orders.Order, error) {
	o, err := s.resolveOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveClient(ctx, clientID); err != nil {
		return nil, err
	}
	if err := ownershipCheck(o, clientID); err != nil {
		return nil, err
	}

	item, err := s.items.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, httperr.NotFound("No Item found with id %s", req.ItemID)
	}

	o.ItemID = item.ItemID
	o.PurchaseDate = s.today()
	o.Total = item.Price

	saved, err := s.orders.Save(ctx, *o)
	if err != nil {
		return nil, err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderUpdated, saved)
	return saved, nil
}

// DeleteOrderByID removes the order after the ownership check.
func (s *ClientOrderService) DeleteOrderByID(ctx context.Context, clientID, orderID string) error {
	if _, err := s.resolveClient(ctx, clientID); err != nil {
		return err
	}
	o, err := s.resolveOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err := ownershipCheck(o, clientID); err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderDeleted, o)
	return nil
}
