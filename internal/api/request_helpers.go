package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/store"
)

// getPathID extracts a positive integer identifier from the URL path.
//
// Returns a domain.ValidationError naming the parameter when it is missing,
// non-numeric, or non-positive.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required")
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer")
	}
	if id < 1 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer")
	}

	return id, nil
}

// parseListParams validates the pagination/sort/filter query parameters and
// resolves them into a fetch plan. Violations are collected per field so the
// client sees every problem at once; absent parameters fall back to their
// defaults. The sort key is deliberately not validated here: unknown keys
// degrade to the identifier column inside the fetch plan instead of failing.
func parseListParams(r *http.Request) (store.ListQuery, error) {
	values := r.URL.Query()
	vErr := &domain.ValidationError{}

	page := store.DefaultPage
	if raw := values.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			vErr.Add("page", "must be an integer")
		case parsed < 1:
			vErr.Add("page", "must be at least 1")
		default:
			page = parsed
		}
	}

	limit := store.DefaultLimit
	if raw := values.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			vErr.Add("limit", "must be an integer")
		case parsed < 1 || parsed > store.MaxLimit:
			vErr.Add("limit", "must be between 1 and "+strconv.Itoa(store.MaxLimit))
		default:
			limit = parsed
		}
	}

	sort := store.DefaultSortKey
	if raw := values.Get("sort"); raw != "" {
		sort = raw
	}

	order := store.OrderDesc
	if raw := values.Get("order"); raw != "" {
		switch store.Order(raw) {
		case store.OrderAsc, store.OrderDesc:
			order = store.Order(raw)
		default:
			vErr.Add("order", "must be one of: asc desc")
		}
	}

	if len(vErr.Issues) > 0 {
		return store.ListQuery{}, vErr
	}

	return store.NewListQuery(page, limit, sort, order, values.Get("q")), nil
}
