package orders

import "time"

// DateLayout is the wire and storage format for purchase dates.
const DateLayout = "2006-01-02"

// GSI names on the orders table.
const (
	ClientIndex = "client_id-index"
	ItemIndex   = "item_id-index"
)

// Order represents the item stored in the orders DynamoDB table. ClientID is
// the owning client reference; it is set on create and never reassigned by the
// client-scoped operations.
type Order struct {
	OrderID      string    `dynamodbav:"order_id"`  // PK
	ClientID     string    `dynamodbav:"client_id"` // GSI client_id-index
	ItemID       string    `dynamodbav:"item_id"`   // GSI item_id-index
	PurchaseDate string    `dynamodbav:"purchase_date"` // YYYY-MM-DD
	Total        float64   `dynamodbav:"total"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"`
}
