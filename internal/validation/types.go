package validation

// ClientCreateRequest is the payload for POST /clients.
type ClientCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age" validate:"required,gt=0"`
	Email   string `json:"email" validate:"required"` // non-empty only; not checked as RFC email
	Address string `json:"address,omitempty"`
}

// ClientUpdateRequest is the partial payload for PUT /clients/{clientId}.
// Nil fields are left unchanged.
type ClientUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Age     *int    `json:"age" validate:"omitempty,gt=0"`
	Email   *string `json:"email" validate:"omitempty,min=1"`
	Address *string `json:"address"`
}

// ItemCreateRequest is the payload for POST /items.
type ItemCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ItemUpdateRequest is the partial payload for PUT /items/{itemId}.
type ItemUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
}

// OrderCreateRequest is the payload for POST /orders. The caller supplies the
// purchase date and total; no cross-check against the item price happens on
// this path.
type OrderCreateRequest struct {
	ClientID     string  `json:"client_id" validate:"required"`
	ItemID       string  `json:"item_id" validate:"required"`
	PurchaseDate string  `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	Total        float64 `json:"total" validate:"required,gt=0"`
}

// OrderUpdateRequest is the payload for PUT /orders/{orderId}. client_id and
// item_id are re-resolved on every update; purchase_date and total apply
// partially.
type OrderUpdateRequest struct {
	ClientID     *string  `json:"client_id"`
	ItemID       *string  `json:"item_id"`
	PurchaseDate *string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Total        *float64 `json:"total" validate:"omitempty,gt=0"`
}

// ClientOrderRequest is the payload for POST and PUT under
// /clients/{clientId}/orders. Date and total are derived server-side.
type ClientOrderRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}
