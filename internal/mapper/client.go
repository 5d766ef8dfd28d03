package mapper

import (
	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/validation"
)

// ClientResponse is the transport-layer shape returned for a client.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// ToClient converts a create request into a new client record. The id and
// timestamps are assigned by the store.
func ToClient(req validation.ClientCreateRequest) clients.Client {
	return clients.Client{
		Name:    req.Name,
		Age:     req.Age,
		Email:   req.Email,
		Address: req.Address,
	}
}

// ApplyClientUpdate overwrites only the fields present in the request.
// Nil means "leave unchanged".
func ApplyClientUpdate(c *clients.Client, req validation.ClientUpdateRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Age != nil {
		c.Age = *req.Age
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
}

// ClientToResponse converts a stored client to its transport representation.
func ClientToResponse(c *clients.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ClientID,
		Name:    c.Name,
		Age:     c.Age,
		Email:   c.Email,
		Address: c.Address,
	}
}

// ClientsToResponses converts a list of stored clients.
func ClientsToResponses(list []clients.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for i := range list {
		out = append(out, ClientToResponse(&list[i]))
	}
	return out
}
