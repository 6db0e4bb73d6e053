package api

import (
	"time"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/store"
)

// Common request/response structures

// CreateItemRequest defines the payload for the item creation endpoint.
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateItemRequest defines the payload for the partial item update endpoint.
// Every field is optional; an empty body is valid and means "no change".
type UpdateItemRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// toPatch converts the request into a store patch. Nil fields stay nil so the
// store leaves the corresponding columns untouched.
func (r UpdateItemRequest) toPatch() store.ItemPatch {
	return store.ItemPatch{Name: r.Name}
}

// ItemResponse represents the response data for an item.
type ItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// itemToResponse converts a domain.Item to an ItemResponse.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}

// itemsToResponse converts a slice of domain items, keeping an empty slice
// (not null) for empty pages.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses
}
