// Package service contains the application's orchestration layer, sitting
// between the HTTP handlers and the persistence interfaces.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/platform/logger"
	"github.com/phrazzld/item-api/internal/store"
)

// ItemList is the result of a list operation: one page of items plus the
// total count of rows matching the same filter.
type ItemList struct {
	Items []*domain.Item
	Total int64
}

// ItemService provides item CRUD operations.
//
// Missing rows propagate as store.ErrItemNotFound; the service never
// reclassifies expected absence as a failure. That decision belongs to the
// caller.
type ItemService interface {
	// List executes the given fetch plan and returns the matching page
	// together with the filtered total.
	List(ctx context.Context, query store.ListQuery) (*ItemList, error)

	// GetByID retrieves a single item.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Create persists a new item with the given name and returns the
	// stored row with its assigned ID and creation time.
	Create(ctx context.Context, name string) (*domain.Item, error)

	// Update applies a partial update and returns the full updated row.
	Update(ctx context.Context, id int64, patch store.ItemPatch) (*domain.Item, error)

	// Delete removes an item and returns its last snapshot.
	Delete(ctx context.Context, id int64) (*domain.Item, error)

	// HealthCheck reports whether the backing store is reachable.
	HealthCheck(ctx context.Context) error
}

// itemServiceImpl implements the ItemService interface
type itemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemService creates a new ItemService.
// It returns an error if any of the required dependencies are nil.
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) (ItemService, error) {
	if itemStore == nil {
		return nil, fmt.Errorf("item store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &itemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With(slog.String("component", "item_service")),
	}, nil
}

// List implements ItemService.List
func (s *itemServiceImpl) List(ctx context.Context, query store.ListQuery) (*ItemList, error) {
	items, total, err := s.itemStore.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ItemList{Items: items, Total: total}, nil
}

// GetByID implements ItemService.GetByID
func (s *itemServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		// Not-found passes through untouched so callers can classify it.
		return nil, err
	}

	return item, nil
}

// Create implements ItemService.Create
func (s *itemServiceImpl) Create(ctx context.Context, name string) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewItem(name)
	if err != nil {
		return nil, err
	}

	created, err := s.itemStore.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	log.Debug("item created", slog.Int64("item_id", created.ID))
	return created, nil
}

// Update implements ItemService.Update
func (s *itemServiceImpl) Update(
	ctx context.Context,
	id int64,
	patch store.ItemPatch,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updated, err := s.itemStore.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	log.Debug("item updated",
		slog.Int64("item_id", id),
		slog.Bool("no_op", patch.IsEmpty()))
	return updated, nil
}

// Delete implements ItemService.Delete
func (s *itemServiceImpl) Delete(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleted, err := s.itemStore.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Debug("item deleted", slog.Int64("item_id", id))
	return deleted, nil
}

// HealthCheck implements ItemService.HealthCheck
func (s *itemServiceImpl) HealthCheck(ctx context.Context) error {
	return s.itemStore.Ping(ctx)
}
