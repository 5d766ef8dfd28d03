package clients

import "time"

// Client represents the item stored in the clients DynamoDB table.
type Client struct {
	ClientID  string    `dynamodbav:"client_id"` // PK
	Name      string    `dynamodbav:"name"`
	Age       int       `dynamodbav:"age"`
	Email     string    `dynamodbav:"email"`
	Address   string    `dynamodbav:"address,omitempty"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}
