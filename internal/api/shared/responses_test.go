package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totalItems int64
		limit      int
		want       int64
	}{
		{name: "exact multiple", totalItems: 100, limit: 10, want: 10},
		{name: "partial last page", totalItems: 95, limit: 10, want: 10},
		{name: "single page", totalItems: 3, limit: 10, want: 1},
		{name: "empty set is zero not null", totalItems: 0, limit: 10, want: 0},
		{name: "limit one", totalItems: 7, limit: 1, want: 7},
		{name: "degenerate limit treated as one", totalItems: 5, limit: 0, want: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.limit))
		})
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestRespondWithData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)

	RespondWithData(rec, req, http.StatusCreated, map[string]any{"id": 1}, "item created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "item created", envelope["message"])
	assert.NotNil(t, envelope["data"])
	assert.NotContains(t, envelope, "meta")
	assert.NotContains(t, envelope, "errors")
}

func TestRespondWithPage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	RespondWithPage(rec, req, []string{}, 2, 10, 95, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])

	meta, ok := envelope["meta"].(map[string]any)
	require.True(t, ok, "expected meta object on list response")
	assert.EqualValues(t, 2, meta["page"])
	assert.EqualValues(t, 10, meta["limit"])
	assert.EqualValues(t, 95, meta["totalItems"])
	assert.EqualValues(t, 10, meta["totalPages"])
}

func TestRespondWithPageEmptyResult(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	RespondWithPage(rec, req, []string{}, 1, 10, 0, "")

	envelope := decodeEnvelope(t, rec)
	meta := envelope["meta"].(map[string]any)
	assert.EqualValues(t, 0, meta["totalItems"])
	assert.EqualValues(t, 0, meta["totalPages"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/abc", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(rec, req, http.StatusBadRequest, "Validation failed",
		domain.FieldIssue{Field: "id", Message: "must be a positive integer"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Validation failed", envelope["message"])
	assert.NotEmpty(t, envelope["trace_id"])

	errs, ok := envelope["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.Len(t, errs, 1)
	issue := errs[0].(map[string]any)
	assert.Equal(t, "id", issue["field"])
}

func TestRespondWithErrorAndLogHidesDetail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)

	cause := assert.AnError
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "An unexpected error occurred", cause)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "An unexpected error occurred", envelope["message"])
	assert.NotContains(t, rec.Body.String(), cause.Error())
}
