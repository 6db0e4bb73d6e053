package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/item-api/internal/api/shared"
	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This is the single place where the error taxonomy
// (validation / not-found / unexpected) is decided, so every endpoint renders
// failures identically and never leaks internal error detail to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation failures, including entity data the store rejected
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyItemName),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Expected absence
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError renders err exactly once through the error taxonomy.
// notFoundMessage names the entity and identifier for 404 responses; pass ""
// where a not-found outcome is impossible. Handlers call this instead of
// branching on concrete error types themselves.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	status := MapErrorToStatusCode(err)

	switch status {
	case http.StatusBadRequest:
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			shared.RespondWithErrorAndLog(w, r, status, "Validation failed", err, vErr.Issues...)
			return
		}
		if errors.Is(err, domain.ErrEmptyItemName) || errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithErrorAndLog(w, r, status, "Validation failed", err,
				domain.FieldIssue{Field: "name", Message: "must not be empty"})
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, "Validation failed", err)

	case http.StatusNotFound:
		if notFoundMessage == "" {
			notFoundMessage = "Resource not found"
		}
		shared.RespondWithErrorAndLog(w, r, status, notFoundMessage, err)

	default:
		// The generic message is deliberate: the full cause is logged
		// out-of-band and must never surface in the body.
		shared.RespondWithErrorAndLog(w, r, status, "An unexpected error occurred", err)
	}
}
