package items

import "time"

// Item represents the item stored in the items DynamoDB table.
type Item struct {
	ItemID      string    `dynamodbav:"item_id"` // PK
	Name        string    `dynamodbav:"name"`
	Description string    `dynamodbav:"description,omitempty"`
	Price       float64   `dynamodbav:"price"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}
