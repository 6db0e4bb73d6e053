package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/item-api/internal/domain"
)

// Validate is the global validator instance, shared for reuse of its
// compiled struct caches.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateStruct validates the given struct and converts any violations into
// a domain.ValidationError carrying one issue per invalid field, so every
// violation is reported at once.
func ValidateStruct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Not a field-level validation failure (e.g. a nil pointer was
		// passed); surface it as-is.
		return err
	}

	vErr := &domain.ValidationError{}
	for _, fe := range fieldErrors {
		vErr.Add(strings.ToLower(fe.Field()), tagMessage(fe))
	}
	return vErr
}

// tagMessage maps a validation tag to a user-friendly message.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is too short (minimum " + fe.Param() + ")"
	case "max":
		return "is too long (maximum " + fe.Param() + ")"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
