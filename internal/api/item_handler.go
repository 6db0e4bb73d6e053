package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/item-api/internal/api/shared"
	"github.com/phrazzld/item-api/internal/service"
)

// ItemHandler handles the item CRUD endpoints.
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given service.
// Panics if logger is nil, as this represents a programming error.
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		panic("logger cannot be nil for ItemHandler")
	}
	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With(slog.String("component", "item_handler")),
	}
}

// ListItems handles GET /items.
// Query parameters: page, limit, sort, order, q. Invalid parameters yield a
// 400 with one issue per offending field; the response meta reflects the
// total matching the same filter as the returned page.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query, err := parseListParams(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.itemService.List(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithPage(w, r,
		itemsToResponse(result.Items),
		query.Page, query.Limit, result.Total,
		"items retrieved successfully")
}

// GetItem handles GET /items/{id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, itemNotFoundMessage(id))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, itemToResponse(item), "item retrieved successfully")
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := shared.ValidateStruct(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.Create(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, itemToResponse(item), "item created successfully")
}

// UpdateItem handles PATCH /items/{id}. Absent fields are left unchanged; an
// empty body is a valid no-op that still returns the current row.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := shared.ValidateStruct(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.Update(r.Context(), id, req.toPatch())
	if err != nil {
		HandleAPIError(w, r, err, itemNotFoundMessage(id))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, itemToResponse(item), "item updated successfully")
}

// DeleteItem handles DELETE /items/{id} and returns the deleted row's last
// snapshot.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, itemNotFoundMessage(id))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, itemToResponse(item), "item deleted successfully")
}

func itemNotFoundMessage(id int64) string {
	return fmt.Sprintf("Item with ID %d not found", id)
}
