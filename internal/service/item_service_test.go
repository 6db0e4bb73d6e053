package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemStore is a hand-rolled store.ItemStore stub whose behavior each
// test configures through function fields.
type fakeItemStore struct {
	createFn func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	getFn    func(ctx context.Context, id int64) (*domain.Item, error)
	updateFn func(ctx context.Context, id int64, patch store.ItemPatch) (*domain.Item, error)
	deleteFn func(ctx context.Context, id int64) (*domain.Item, error)
	listFn   func(ctx context.Context, q store.ListQuery) ([]*domain.Item, int64, error)
	pingFn   func(ctx context.Context) error
}

func (f *fakeItemStore) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	return f.createFn(ctx, item)
}

func (f *fakeItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return f.getFn(ctx, id)
}

func (f *fakeItemStore) Update(ctx context.Context, id int64, patch store.ItemPatch) (*domain.Item, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeItemStore) Delete(ctx context.Context, id int64) (*domain.Item, error) {
	return f.deleteFn(ctx, id)
}

func (f *fakeItemStore) List(ctx context.Context, q store.ListQuery) ([]*domain.Item, int64, error) {
	return f.listFn(ctx, q)
}

func (f *fakeItemStore) Ping(ctx context.Context) error {
	return f.pingFn(ctx)
}

func newTestService(t *testing.T, fake *fakeItemStore) ItemService {
	t.Helper()
	svc, err := NewItemService(fake, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestNewItemServiceValidatesDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewItemService(nil, slog.Default())
	assert.Error(t, err)

	_, err = NewItemService(&fakeItemStore{}, nil)
	assert.Error(t, err)
}

func TestItemServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid name reaches the store", func(t *testing.T) {
		t.Parallel()
		fake := &fakeItemStore{
			createFn: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
				return &domain.Item{ID: 7, Name: item.Name, CreatedAt: time.Now().UTC()}, nil
			},
		}
		svc := newTestService(t, fake)

		created, err := svc.Create(context.Background(), "Laptop")
		require.NoError(t, err)
		assert.EqualValues(t, 7, created.ID)
		assert.Equal(t, "Laptop", created.Name)
	})

	t.Run("empty name rejected before the store", func(t *testing.T) {
		t.Parallel()
		fake := &fakeItemStore{
			createFn: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
				t.Fatal("store should not be called for invalid input")
				return nil, nil
			},
		}
		svc := newTestService(t, fake)

		_, err := svc.Create(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrEmptyItemName)
	})
}

func TestItemServicePassesThroughNotFound(t *testing.T) {
	t.Parallel()

	fake := &fakeItemStore{
		getFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			return nil, store.ErrItemNotFound
		},
		updateFn: func(ctx context.Context, id int64, patch store.ItemPatch) (*domain.Item, error) {
			return nil, store.ErrItemNotFound
		},
		deleteFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			return nil, store.ErrItemNotFound
		},
	}
	svc := newTestService(t, fake)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	_, err = svc.Update(ctx, 42, store.ItemPatch{})
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	_, err = svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemServiceList(t *testing.T) {
	t.Parallel()

	t.Run("returns page and total together", func(t *testing.T) {
		t.Parallel()
		var gotQuery store.ListQuery
		fake := &fakeItemStore{
			listFn: func(ctx context.Context, q store.ListQuery) ([]*domain.Item, int64, error) {
				gotQuery = q
				return []*domain.Item{{ID: 1, Name: "Laptop"}}, 95, nil
			},
		}
		svc := newTestService(t, fake)

		query := store.NewListQuery(3, 20, "name", store.OrderAsc, "lap")
		result, err := svc.List(context.Background(), query)
		require.NoError(t, err)
		assert.EqualValues(t, 95, result.Total)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, query, gotQuery)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")
		fake := &fakeItemStore{
			listFn: func(ctx context.Context, q store.ListQuery) ([]*domain.Item, int64, error) {
				return nil, 0, cause
			},
		}
		svc := newTestService(t, fake)

		_, err := svc.List(context.Background(), store.NewListQuery(1, 10, "", "", ""))
		assert.ErrorIs(t, err, cause)
	})
}

func TestItemServiceHealthCheck(t *testing.T) {
	t.Parallel()

	cause := errors.New("store down")
	fake := &fakeItemStore{
		pingFn: func(ctx context.Context) error { return cause },
	}
	svc := newTestService(t, fake)

	assert.ErrorIs(t, svc.HealthCheck(context.Background()), cause)
}
