package service

import (
	"context"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/mapper"
	"github.com/mercata/shop-backend/internal/orders"
	"github.com/mercata/shop-backend/internal/validation"
)

// OrderService manages top-level order records. On this surface the caller
// supplies the purchase date and total; only referential integrity against
// clients and items is enforced.
type OrderService struct {
	orders  OrderStore
	clients ClientStore
	items   ItemStore
	events  EventPublisher
}

// NewOrderService wires an OrderService. events may be nil.
func NewOrderService(os OrderStore, cs ClientStore, is ItemStore, events EventPublisher) *OrderService {
	return &OrderService{
		orders:  os,
		clients: cs,
		items:   is,
		events:  events,
	}
}

// Create persists a new order after verifying both references exist.
func (s *OrderService) Create(ctx context.Context, req validation.OrderCreateRequest) (*orders.Order, error) {
	client, err := s.clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.NotFound("No Client found with id %s", req.ClientID)
	}

	item, err := s.items.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, httperr.NotFound("No Item found with id %s", req.ItemID)
	}

	created, err := s.orders.Create(ctx, mapper.ToOrder(req))
	if err != nil {
		return nil, err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderCreated, created)
	return created, nil
}

// GetByID returns the order or NotFound.
func (s *OrderService) GetByID(ctx context.Context, orderID string) (*orders.Order, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, httperr.NotFound("No Order found with id %s", orderID)
	}
	return o, nil
}

// GetAll returns every order; an empty collection is NotFound.
func (s *OrderService) GetAll(ctx context.Context) ([]orders.Order, error) {
	list, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, httperr.NotFound("No orders found")
	}
	return list, nil
}

// Update re-resolves both references from the payload regardless of what else
// changed, then applies purchase_date/total partially. A payload without a
// client_id or item_id fails NotFound before the store is consulted; DynamoDB
// rejects empty-string key attributes outright.
func (s *OrderService) Update(ctx context.Context, orderID string, req validation.OrderUpdateRequest) (*orders.Order, error) {
	o, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	clientID := deref(req.ClientID)
	if clientID == "" {
		return nil, httperr.NotFound("No Client found with id %s", clientID)
	}
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.NotFound("No Client found with id %s", clientID)
	}

	itemID := deref(req.ItemID)
	if itemID == "" {
		return nil, httperr.NotFound("No Item found with id %s", itemID)
	}
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, httperr.NotFound("No Item found with id %s", itemID)
	}

	mapper.ApplyOrderUpdate(o, req)
	o.ClientID = client.ClientID
	o.ItemID = item.ItemID

	saved, err := s.orders.Save(ctx, *o)
	if err != nil {
		return nil, err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderUpdated, saved)
	return saved, nil
}

// Delete removes the order or fails NotFound.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	o, err := s.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	publishOrderEvent(ctx, s.events, awsx.EventOrderDeleted, o)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
