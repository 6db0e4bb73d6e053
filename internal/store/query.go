package store

import "strings"

// Pagination defaults and bounds for list queries.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// DefaultSortKey is the sort key applied when the client supplies none.
	DefaultSortKey = "created_at"
)

// Order is the direction of a list query's sort.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// sortColumns is the closed mapping from client-facing sort keys to storage
// columns. User input is only ever looked up against this table and never
// interpolated into a query, so an unknown key cannot reach the store.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
}

// fallbackSortColumn is used when the requested sort key is not in the
// whitelist. Falling back silently keeps listing robust against stale or
// malformed client links.
const fallbackSortColumn = "id"

// ListQuery is the resolved fetch plan for a list request: offset, limit,
// sort column token, direction, and optional search term. It is a plain
// data structure so any store implementation can execute it.
type ListQuery struct {
	Page       int
	Limit      int
	Offset     int
	SortColumn string
	Order      Order
	// Search is an optional free-text term matched case-insensitively
	// against the item name. Empty means no filter.
	Search string
}

// NewListQuery builds a fetch plan from already-validated list parameters.
// It applies defaults for zero values, clamps limit to [1, MaxLimit],
// computes the page offset, and resolves the sort key through the column
// whitelist. It never fails: out-of-range and unknown inputs degrade to
// safe values.
func NewListQuery(page, limit int, sort string, order Order, search string) ListQuery {
	if page < 1 {
		page = DefaultPage
	}

	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	column, ok := sortColumns[sort]
	if !ok {
		column = fallbackSortColumn
	}

	if order != OrderAsc && order != OrderDesc {
		order = OrderDesc
	}

	return ListQuery{
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
		SortColumn: column,
		Order:      order,
		Search:     strings.TrimSpace(search),
	}
}

// HasSearch reports whether the plan carries a search filter.
func (q ListQuery) HasSearch() bool {
	return q.Search != ""
}
