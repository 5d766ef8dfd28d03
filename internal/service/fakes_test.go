package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/items"
	"github.com/mercata/shop-backend/internal/orders"
)

// In-memory store fakes implementing the service store contracts.

// errEmptyKey mirrors DynamoDB's rejection of empty-string key attributes, so
// services cannot lean on map semantics the real stores do not have.
var errEmptyKey = errors.New("the AttributeValue for a key attribute cannot contain an empty string value")

type fakeClientStore struct {
	m   map[string]clients.Client
	seq int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{m: map[string]clients.Client{}}
}

func (f *fakeClientStore) Create(ctx context.Context, c clients.Client) (*clients.Client, error) {
	f.seq++
	c.ClientID = fmt.Sprintf("client-%d", f.seq)
	f.m[c.ClientID] = c
	return &c, nil
}

func (f *fakeClientStore) Get(ctx context.Context, id string) (*clients.Client, error) {
	if id == "" {
		return nil, errEmptyKey
	}
	c, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeClientStore) List(ctx context.Context) ([]clients.Client, error) {
	var out []clients.Client
	for _, c := range f.m {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientStore) Save(ctx context.Context, c clients.Client) (*clients.Client, error) {
	if _, ok := f.m[c.ClientID]; !ok {
		return nil, errors.New("save of unknown client")
	}
	f.m[c.ClientID] = c
	return &c, nil
}

func (f *fakeClientStore) Delete(ctx context.Context, id string) error {
	delete(f.m, id)
	return nil
}

type fakeItemStore struct {
	m   map[string]items.Item
	seq int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{m: map[string]items.Item{}}
}

func (f *fakeItemStore) Create(ctx context.Context, it items.Item) (*items.Item, error) {
	f.seq++
	it.ItemID = fmt.Sprintf("item-%d", f.seq)
	f.m[it.ItemID] = it
	return &it, nil
}

func (f *fakeItemStore) Get(ctx context.Context, id string) (*items.Item, error) {
	if id == "" {
		return nil, errEmptyKey
	}
	it, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *fakeItemStore) List(ctx context.Context) ([]items.Item, error) {
	var out []items.Item
	for _, it := range f.m {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeItemStore) Save(ctx context.Context, it items.Item) (*items.Item, error) {
	if _, ok := f.m[it.ItemID]; !ok {
		return nil, errors.New("save of unknown item")
	}
	f.m[it.ItemID] = it
	return &it, nil
}

func (f *fakeItemStore) Delete(ctx context.Context, id string) error {
	delete(f.m, id)
	return nil
}

type ownerDelete struct {
	table    string
	keyAttr  string
	ownerID  string
	orderIDs []string
}

type fakeOrderStore struct {
	m            map[string]orders.Order
	seq          int
	ownerDeletes []ownerDelete
	// owners the transaction should also remove, keyed by owner id
	cascadeInto map[string]func(ownerID string)
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{m: map[string]orders.Order{}, cascadeInto: map[string]func(string){}}
}

func (f *fakeOrderStore) Create(ctx context.Context, o orders.Order) (*orders.Order, error) {
	f.seq++
	o.OrderID = fmt.Sprintf("order-%d", f.seq)
	f.m[o.OrderID] = o
	return &o, nil
}

func (f *fakeOrderStore) Get(ctx context.Context, id string) (*orders.Order, error) {
	if id == "" {
		return nil, errEmptyKey
	}
	o, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOrderStore) List(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	for _, o := range f.m {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) ListByClient(ctx context.Context, clientID string) ([]orders.Order, error) {
	var out []orders.Order
	for _, o := range f.m {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) ListByItem(ctx context.Context, itemID string) ([]orders.Order, error) {
	var out []orders.Order
	for _, o := range f.m {
		if o.ItemID == itemID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) Save(ctx context.Context, o orders.Order) (*orders.Order, error) {
	if _, ok := f.m[o.OrderID]; !ok {
		return nil, errors.New("save of unknown order")
	}
	f.m[o.OrderID] = o
	return &o, nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *fakeOrderStore) DeleteWithOwnerTransaction(ctx context.Context, ownerTable, ownerKeyAttr, ownerID string, orderIDs []string) error {
	f.ownerDeletes = append(f.ownerDeletes, ownerDelete{ownerTable, ownerKeyAttr, ownerID, orderIDs})
	for _, id := range orderIDs {
		delete(f.m, id)
	}
	if rm, ok := f.cascadeInto[ownerID]; ok {
		rm(ownerID)
	}
	return nil
}

type fakePublisher struct {
	events []awsx.OrderEvent
	err    error
}

func (f *fakePublisher) PublishOrderEvent(ctx context.Context, ev awsx.OrderEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func ordersFor(clientID, itemID string, total float64) orders.Order {
	return orders.Order{ClientID: clientID, ItemID: itemID, PurchaseDate: "2026-08-31", Total: total}
}

// wantStatus asserts err is a typed API error with the given HTTP status and
// returns it.
func wantStatus(t *testing.T, err error, status int) *httperr.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected typed API error, got %T: %v", err, err)
	}
	if apiErr.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, apiErr.Status, apiErr.Message)
	}
	return apiErr
}
