package mapper

import (
	"github.com/mercata/shop-backend/internal/items"
	"github.com/mercata/shop-backend/internal/validation"
)

// ItemResponse is the transport-layer shape returned for an item.
type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ToItem converts a create request into a new item record.
func ToItem(req validation.ItemCreateRequest) items.Item {
	return items.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

// ApplyItemUpdate overwrites only the fields present in the request.
func ApplyItemUpdate(it *items.Item, req validation.ItemUpdateRequest) {
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
}

// ItemToResponse converts a stored item to its transport representation.
func ItemToResponse(it *items.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ItemID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
	}
}

// ItemsToResponses converts a list of stored items.
func ItemsToResponses(list []items.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(list))
	for i := range list {
		out = append(out, ItemToResponse(&list[i]))
	}
	return out
}
