package store

import (
	"context"

	"github.com/phrazzld/item-api/internal/domain"
)

// ItemPatch carries the optional fields of a partial item update.
// A nil field means "leave unchanged"; a patch with every field nil is
// valid and applies no change.
type ItemPatch struct {
	Name *string
}

// IsEmpty reports whether the patch modifies nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil
}

// ItemStore defines the interface for item data persistence.
//
// Every operation is a single round-trip to the store; none retries
// internally. Missing rows are signalled with ErrItemNotFound rather than
// a distinct failure mode, so callers can treat absence as an expected
// outcome.
type ItemStore interface {
	// Create inserts a new item and returns the stored row with the
	// store-assigned ID and CreatedAt.
	// Returns validation errors from the domain Item if data is invalid.
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Update applies the supplied patch fields to an existing item and
	// returns the full updated row.
	// Returns ErrItemNotFound if the item does not exist.
	Update(ctx context.Context, id int64, patch ItemPatch) (*domain.Item, error)

	// Delete removes an item and returns the pre-deletion row snapshot.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) (*domain.Item, error)

	// List executes the fetch plan and returns the matching page of items
	// together with the total count of rows matching the same filter.
	// Pages beyond the available data yield an empty slice and a valid total.
	List(ctx context.Context, query ListQuery) ([]*domain.Item, int64, error)

	// Ping verifies connectivity to the underlying store. It is the cheap
	// primitive health probes are built on.
	Ping(ctx context.Context) error
}
