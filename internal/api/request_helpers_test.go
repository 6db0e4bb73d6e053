package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithPathID builds a request carrying a chi route parameter, the way
// the router would populate it.
func requestWithPathID(t *testing.T, value string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/items/"+value, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	t.Parallel()

	t.Run("valid id", func(t *testing.T) {
		t.Parallel()

		id, err := getPathID(requestWithPathID(t, "42"), "id")
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		t.Parallel()

		_, err := getPathID(requestWithPathID(t, "abc"), "id")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Issues, 1)
		assert.Equal(t, "id", vErr.Issues[0].Field)
	})

	t.Run("rejects zero and negative ids", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"0", "-7"} {
			_, err := getPathID(requestWithPathID(t, raw), "id")
			assert.True(t, errors.Is(err, domain.ErrValidation), "value %q", raw)
		}
	})
}

func TestParseListParamsDefaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/items", nil)
	query, err := parseListParams(r)
	require.NoError(t, err)

	assert.Equal(t, store.DefaultPage, query.Page)
	assert.Equal(t, store.DefaultLimit, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.Equal(t, "created_at", query.SortColumn)
	assert.Equal(t, store.OrderDesc, query.Order)
	assert.Empty(t, query.Search)
}

func TestParseListParamsExplicitValues(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/items?page=3&limit=20&sort=name&order=asc&q=gadget", nil)
	query, err := parseListParams(r)
	require.NoError(t, err)

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 20, query.Limit)
	assert.Equal(t, 40, query.Offset)
	assert.Equal(t, "name", query.SortColumn)
	assert.Equal(t, store.OrderAsc, query.Order)
	assert.Equal(t, "gadget", query.Search)
}

func TestParseListParamsRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		url   string
		field string
	}{
		{"page not an integer", "/items?page=abc", "page"},
		{"page below one", "/items?page=0", "page"},
		{"limit not an integer", "/items?limit=ten", "limit"},
		{"limit below one", "/items?limit=0", "limit"},
		{"limit above maximum", "/items?limit=101", "limit"},
		{"unknown order", "/items?order=upward", "order"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseListParams(httptest.NewRequest(http.MethodGet, tc.url, nil))
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Issues)
			assert.Equal(t, tc.field, vErr.Issues[0].Field)
		})
	}
}

func TestParseListParamsCollectsAllIssues(t *testing.T) {
	t.Parallel()

	_, err := parseListParams(httptest.NewRequest(http.MethodGet, "/items?page=x&limit=0&order=sideways", nil))
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Issues, 3)
}

func TestParseListParamsUnknownSortFallsBack(t *testing.T) {
	t.Parallel()

	// An unknown sort key is not an input error; it degrades to the
	// identifier column.
	query, err := parseListParams(httptest.NewRequest(http.MethodGet, "/items?sort=no_such_column", nil))
	require.NoError(t, err)
	assert.Equal(t, "id", query.SortColumn)
}
