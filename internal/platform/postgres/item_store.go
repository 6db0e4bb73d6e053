package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/platform/logger"
	"github.com/phrazzld/item-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the ItemStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// Create implements store.ItemStore.Create
// It inserts a new item row, letting the database assign id and created_at,
// and returns the stored row.
// Returns validation errors from the domain Item if data is invalid.
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate item data
	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO items (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var created domain.Item
	err := s.db.QueryRowContext(ctx, query, item.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create item",
			slog.String("error", err.Error()))
		return nil, mapItemError(err)
	}

	log.Info("item created successfully",
		slog.Int64("item_id", created.ID))
	return &created, nil
}

// GetByID implements store.ItemStore.GetByID
// It retrieves an item by its unique ID.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, mapItemError(err)
	}

	return &item, nil
}

// Update implements store.ItemStore.Update
// It applies the supplied patch fields to the row matching id in a single
// statement and returns the full updated row. A patch with no fields set
// still matches the row and returns the current snapshot.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) Update(
	ctx context.Context,
	id int64,
	patch store.ItemPatch,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.Name != nil && *patch.Name == "" {
		log.Warn("item validation failed during update",
			slog.Int64("item_id", id),
			slog.String("error", domain.ErrEmptyItemName.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyItemName)
	}

	// COALESCE leaves a column unchanged when its patch field is nil, so a
	// partial (or empty) patch is still one round trip.
	query := `
		UPDATE items
		SET name = COALESCE($1, name)
		WHERE id = $2
		RETURNING id, name, created_at
	`

	var updated domain.Item
	err := s.db.QueryRowContext(ctx, query, patch.Name, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for update", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, mapItemError(err)
	}

	log.Info("item updated successfully",
		slog.Int64("item_id", updated.ID))
	return &updated, nil
}

// Delete implements store.ItemStore.Delete
// It removes the row matching id and returns the pre-deletion snapshot.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) Delete(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM items
		WHERE id = $1
		RETURNING id, name, created_at
	`

	var deleted domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&deleted.ID,
		&deleted.Name,
		&deleted.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for delete", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, mapItemError(err)
	}

	log.Info("item deleted successfully",
		slog.Int64("item_id", deleted.ID))
	return &deleted, nil
}

// List implements store.ItemStore.List
// It executes the fetch plan: a filtered, sorted, paginated data query and a
// count query sharing the same predicate, so the page and the total are
// always consistent with each other.
func (s *PostgresItemStore) List(
	ctx context.Context,
	q store.ListQuery,
) ([]*domain.Item, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing items",
		slog.Int("page", q.Page),
		slog.Int("limit", q.Limit),
		slog.String("sort", q.SortColumn),
		slog.String("order", string(q.Order)),
		slog.Bool("filtered", q.HasSearch()))

	where := ""
	args := []any{}
	if q.HasSearch() {
		where = "WHERE name ILIKE $1"
		args = append(args, "%"+escapeLikePattern(q.Search)+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM items %s`, where)

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count items",
			slog.String("error", err.Error()))
		return nil, 0, mapItemError(err)
	}

	// SortColumn and Order come from the fetch plan's closed whitelist, never
	// from raw request input, so they are safe to place in the statement.
	orderClause := fmt.Sprintf("ORDER BY %s %s", q.SortColumn, strings.ToUpper(string(q.Order)))
	if q.SortColumn != "id" {
		// Deterministic tie-breaker so pagination is stable across requests.
		orderClause += ", id ASC"
	}

	dataQuery := fmt.Sprintf(`
		SELECT id, name, created_at
		FROM items
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, where, orderClause, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		log.Error("failed to query items",
			slog.String("error", err.Error()))
		return nil, 0, mapItemError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			log.Error("failed to scan item row",
				slog.String("error", err.Error()))
			return nil, 0, mapItemError(err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, 0, mapItemError(err)
	}

	// Return empty slice instead of nil if no items found
	if items == nil {
		items = []*domain.Item{}
	}

	log.Debug("listed items",
		slog.Int("count", len(items)),
		slog.Int64("total", total))
	return items, total, nil
}

// Ping implements store.ItemStore.Ping
// It issues the cheapest possible statement to verify store connectivity.
func (s *PostgresItemStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}

// escapeLikePattern escapes LIKE metacharacters in a search term so the term
// matches literally inside the ILIKE pattern.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(term)
}
