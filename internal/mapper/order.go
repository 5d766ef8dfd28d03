package mapper

import (
	"github.com/mercata/shop-backend/internal/orders"
	"github.com/mercata/shop-backend/internal/validation"
)

// OrderResponse is the transport-layer shape returned for an order.
type OrderResponse struct {
	ID           string  `json:"id"`
	ClientID     string  `json:"client_id"`
	ItemID       string  `json:"item_id"`
	PurchaseDate string  `json:"purchase_date"`
	Total        float64 `json:"total"`
}

// ToOrder converts a create request into a new order record. The caller has
// already resolved the client and item references.
func ToOrder(req validation.OrderCreateRequest) orders.Order {
	return orders.Order{
		ClientID:     req.ClientID,
		ItemID:       req.ItemID,
		PurchaseDate: req.PurchaseDate,
		Total:        req.Total,
	}
}

// ApplyOrderUpdate overwrites purchase_date and total when present. The client
// and item references are reassigned by the service after resolving them, so
// they are not touched here.
func ApplyOrderUpdate(o *orders.Order, req validation.OrderUpdateRequest) {
	if req.PurchaseDate != nil {
		o.PurchaseDate = *req.PurchaseDate
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
}

// OrderToResponse converts a stored order to its transport representation.
func OrderToResponse(o *orders.Order) OrderResponse {
	return OrderResponse{
		ID:           o.OrderID,
		ClientID:     o.ClientID,
		ItemID:       o.ItemID,
		PurchaseDate: o.PurchaseDate,
		Total:        o.Total,
	}
}

// OrdersToResponses converts a list of stored orders.
func OrdersToResponses(list []orders.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, OrderToResponse(&list[i]))
	}
	return out
}
