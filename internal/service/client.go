package service

import (
	"context"

	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/mapper"
	"github.com/mercata/shop-backend/internal/validation"
)

// ClientService manages client records. Deleting a client cascades to its
// orders in the same storage transaction as the parent delete.
type ClientService struct {
	clients      ClientStore
	orders       OrderStore
	clientsTable string
}

// NewClientService wires a ClientService. clientsTable names the parent table
// for the cascade transaction.
func NewClientService(cs ClientStore, os OrderStore, clientsTable string) *ClientService {
	return &ClientService{
		clients:      cs,
		orders:       os,
		clientsTable: clientsTable,
	}
}

// Create persists a new client and returns it.
func (s *ClientService) Create(ctx context.Context, req validation.ClientCreateRequest) (*clients.Client, error) {
	return s.clients.Create(ctx, mapper.ToClient(req))
}

// GetByID returns the client or NotFound.
func (s *ClientService) GetByID(ctx context.Context, clientID string) (*clients.Client, error) {
	c, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, httperr.NotFound("Client not found with id %s", clientID)
	}
	return c, nil
}

// GetAll returns every client; an empty collection is NotFound.
func (s *ClientService) GetAll(ctx context.Context) ([]clients.Client, error) {
	list, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, httperr.NotFound("No clients found")
	}
	return list, nil
}

// Update overwrites only the fields present in req and returns the result.
func (s *ClientService) Update(ctx context.Context, clientID string, req validation.ClientUpdateRequest) (*clients.Client, error) {
	c, err := s.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyClientUpdate(c, req)
	return s.clients.Save(ctx, *c)
}

// Delete removes the client and all of its orders atomically.
func (s *ClientService) Delete(ctx context.Context, clientID string) error {
	if _, err := s.GetByID(ctx, clientID); err != nil {
		return err
	}

	owned, err := s.orders.ListByClient(ctx, clientID)
	if err != nil {
		return err
	}
	orderIDs := make([]string, 0, len(owned))
	for _, o := range owned {
		orderIDs = append(orderIDs, o.OrderID)
	}

	return s.orders.DeleteWithOwnerTransaction(ctx, s.clientsTable, "client_id", clientID, orderIDs)
}
