package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/item-api/internal/domain"
	"github.com/phrazzld/item-api/internal/redact"
)

// Meta carries the pagination metadata attached to list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// Response is the uniform envelope every endpoint answers with:
// {success, message?, data?, meta?, errors?}. Meta appears only on list
// responses; Errors only on validation failures.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Meta    *Meta               `json:"meta,omitempty"`
	Errors  []domain.FieldIssue `json:"errors,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

// TotalPages computes the page count for a total and a page size:
// ceil(totalItems / limit), which is 0 for an empty result set.
func TotalPages(totalItems int64, limit int) int64 {
	if limit < 1 {
		limit = 1
	}
	return (totalItems + int64(limit) - 1) / int64(limit)
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope carrying data at the given status.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	RespondWithJSON(w, r, status, Response{
		Success: true,
		Message: message,
		Data:    data,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithPage writes a success envelope for a list response, always at
// status 200, with pagination metadata computed from the filtered total.
func RespondWithPage(
	w http.ResponseWriter,
	r *http.Request,
	data any,
	page, limit int,
	totalItems int64,
	message string,
) {
	RespondWithJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &Meta{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: TotalPages(totalItems, limit),
		},
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithError writes an error envelope with the given status code and
// message. Field-level issues may be attached for validation failures.
// It also sets the TraceID from the request context if available.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	issues ...domain.FieldIssue,
) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Response{
		Success: false,
		Message: message,
		Errors:  issues,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes an error envelope and also logs the detailed
// error. The client only ever sees the sanitized message; the full error text
// is redacted and kept in the logs.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	issues ...domain.FieldIssue,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	// Include the redacted error details (but only in the logs)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
		logAttrs = append(logAttrs, slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Response{
		Success: false,
		Message: userMessage,
		Errors:  issues,
		TraceID: traceID,
	})
}
