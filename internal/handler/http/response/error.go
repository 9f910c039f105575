package response

import (
	"errors"
	"net/http"

	"github.com/punchcard-io/punchcard-backend-go/internal/domain/punch"
	"github.com/punchcard-io/punchcard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrNoUsableRows):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
