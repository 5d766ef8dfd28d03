package service

import (
	"context"

	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/items"
	"github.com/mercata/shop-backend/internal/mapper"
	"github.com/mercata/shop-backend/internal/validation"
)

// ItemService manages item records, symmetric to ClientService.
type ItemService struct {
	items      ItemStore
	orders     OrderStore
	itemsTable string
}

// NewItemService wires an ItemService.
func NewItemService(is ItemStore, os OrderStore, itemsTable string) *ItemService {
	return &ItemService{
		items:      is,
		orders:     os,
		itemsTable: itemsTable,
	}
}

// Create persists a new item and returns it.
func (s *ItemService) Create(ctx context.Context, req validation.ItemCreateRequest) (*items.Item, error) {
	return s.items.Create(ctx, mapper.ToItem(req))
}

// GetByID returns the item or NotFound.
func (s *ItemService) GetByID(ctx context.Context, itemID string) (*items.Item, error) {
	it, err := s.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, httperr.NotFound("Item not found with id %s", itemID)
	}
	return it, nil
}

// GetAll returns every item; an empty collection is NotFound.
func (s *ItemService) GetAll(ctx context.Context) ([]items.Item, error) {
	list, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, httperr.NotFound("No items found")
	}
	return list, nil
}

// Update overwrites only the fields present in req and returns the result.
func (s *ItemService) Update(ctx context.Context, itemID string, req validation.ItemUpdateRequest) (*items.Item, error) {
	it, err := s.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyItemUpdate(it, req)
	return s.items.Save(ctx, *it)
}

// Delete removes the item and every order referencing it atomically.
func (s *ItemService) Delete(ctx context.Context, itemID string) error {
	if _, err := s.GetByID(ctx, itemID); err != nil {
		return err
	}

	dependent, err := s.orders.ListByItem(ctx, itemID)
	if err != nil {
		return err
	}
	orderIDs := make([]string, 0, len(dependent))
	for _, o := range dependent {
		orderIDs = append(orderIDs, o.OrderID)
	}

	return s.orders.DeleteWithOwnerTransaction(ctx, s.itemsTable, "item_id", itemID, orderIDs)
}
