package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo stores items per table in a nested map: table -> pkValue -> item.
// keyAttrs tells the mock which attribute is the primary key of each table.
type mockDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	keyAttrs map[string]string
}

func newMockDynamo(keyAttrs map[string]string) *mockDynamo {
	return &mockDynamo{
		tables:   map[string]map[string]map[string]types.AttributeValue{},
		keyAttrs: keyAttrs,
	}
}

func (m *mockDynamo) ensureTable(tbl string) {
	if _, ok := m.tables[tbl]; !ok {
		m.tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
}

func (m *mockDynamo) pkOf(table string, attrs map[string]types.AttributeValue) (string, error) {
	keyAttr, ok := m.keyAttrs[table]
	if !ok {
		return "", errors.New("unknown table " + table)
	}
	v, ok := attrs[keyAttr]
	if !ok {
		return "", errors.New("missing key attribute " + keyAttr)
	}
	return v.(*types.AttributeValueMemberS).Value, nil
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	pk, err := m.pkOf(table, params.Item)
	if err != nil {
		return nil, err
	}
	if params.ConditionExpression != nil {
		if _, exists := m.tables[table][pk]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	m.tables[table][pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	pk, err := m.pkOf(table, params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := m.tables[table][pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	pk, err := m.pkOf(table, params.Key)
	if err != nil {
		return nil, err
	}
	delete(m.tables[table], pk)
	return &dyn.DeleteItemOutput{}, nil
}

func (m *mockDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)
	out := &dyn.ScanOutput{}
	for _, item := range m.tables[table] {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// Query supports the GSI lookups the store issues: equality on the single
// attribute named in the key condition, value bound to :v.
func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	m.ensureTable(table)

	var attr string
	switch *params.IndexName {
	case ClientIndex:
		attr = "client_id"
	case ItemIndex:
		attr = "item_id"
	default:
		return nil, errors.New("unknown index " + *params.IndexName)
	}
	want := params.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value

	out := &dyn.QueryOutput{}
	for _, item := range m.tables[table] {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (m *mockDynamo) TransactWriteItems(ctx context.Context, params *dyn.TransactWriteItemsInput, optFns ...func(*dyn.Options)) (*dyn.TransactWriteItemsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range params.TransactItems {
		if d := it.Delete; d != nil {
			table := *d.TableName
			m.ensureTable(table)
			pk, err := m.pkOf(table, d.Key)
			if err != nil {
				return nil, err
			}
			delete(m.tables[table], pk)
		}
	}
	return &dyn.TransactWriteItemsOutput{}, nil
}

func testKeyAttrs() map[string]string {
	return map[string]string{
		"orders":  "order_id",
		"clients": "client_id",
		"items":   "item_id",
	}
}

func newTestStore(mock *mockDynamo) *Store {
	store := NewStore(mock, "orders")
	n := 0
	store.newID = func() string {
		n++
		return fmt.Sprintf("order-%d", n)
	}
	store.nowFunc = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return store
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	mock := newMockDynamo(testKeyAttrs())
	store := newTestStore(mock)

	created, err := store.Create(context.Background(), Order{
		ClientID:     "client-1",
		ItemID:       "item-1",
		PurchaseDate: "2026-08-31",
		Total:        25.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OrderID == "" {
		t.Fatal("expected assigned order id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	got, err := store.Get(context.Background(), created.OrderID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("created order not retrievable")
	}
	if got.Total != 25.5 || got.ClientID != "client-1" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestGetMissingReturnsNilNil(t *testing.T) {
	mock := newMockDynamo(testKeyAttrs())
	store := newTestStore(mock)

	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing order, got %+v", got)
	}
}

func TestListByClientFiltersByOwner(t *testing.T) {
	mock := newMockDynamo(testKeyAttrs())
	store := newTestStore(mock)

	ctx := context.Background()
	for _, o := range []Order{
		{ClientID: "client-a", ItemID: "item-1", PurchaseDate: "2026-08-31", Total: 1},
		{ClientID: "client-a", ItemID: "item-2", PurchaseDate: "2026-08-31", Total: 2},
		{ClientID: "client-b", ItemID: "item-1", PurchaseDate: "2026-08-31", Total: 3},
	} {
		if _, err := store.Create(ctx, o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := store.ListByClient(ctx, "client-a")
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders for client-a, got %d", len(got))
	}
	for _, o := range got {
		if o.ClientID != "client-a" {
			t.Errorf("foreign order in result: %+v", o)
		}
	}

	none, err := store.ListByClient(ctx, "client-c")
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no orders for client-c, got %d", len(none))
	}
}

func TestSaveBumpsUpdatedAt(t *testing.T) {
	mock := newMockDynamo(testKeyAttrs())
	store := newTestStore(mock)
	ctx := context.Background()

	created, err := store.Create(ctx, Order{ClientID: "client-1", ItemID: "item-1", PurchaseDate: "2026-08-30", Total: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	later := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store.nowFunc = func() time.Time { return later }

	created.Total = 2
	saved, err := store.Save(ctx, *created)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !saved.UpdatedAt.Equal(later) {
		t.Errorf("updated_at not bumped: %v", saved.UpdatedAt)
	}

	got, _ := store.Get(ctx, created.OrderID)
	if got.Total != 2 {
		t.Errorf("save not persisted: %+v", got)
	}
}

func TestDeleteWithOwnerTransaction(t *testing.T) {
	mock := newMockDynamo(testKeyAttrs())
	store := newTestStore(mock)
	ctx := context.Background()

	// owner row in the clients table
	mock.ensureTable("clients")
	mock.tables["clients"]["client-a"] = map[string]types.AttributeValue{
		"client_id": &types.AttributeValueMemberS{Value: "client-a"},
	}

	o1, _ := store.Create(ctx, Order{ClientID: "client-a", ItemID: "item-1", PurchaseDate: "2026-08-31", Total: 1})
	o2, _ := store.Create(ctx, Order{ClientID: "client-a", ItemID: "item-2", PurchaseDate: "2026-08-31", Total: 2})

	err := store.DeleteWithOwnerTransaction(ctx, "clients", "client_id", "client-a", []string{o1.OrderID, o2.OrderID})
	if err != nil {
		t.Fatalf("cascade delete: %v", err)
	}

	if _, exists := mock.tables["clients"]["client-a"]; exists {
		t.Error("owner row not deleted")
	}
	for _, id := range []string{o1.OrderID, o2.OrderID} {
		got, _ := store.Get(ctx, id)
		if got != nil {
			t.Errorf("order %s survived cascade", id)
		}
	}
}
