package response

import (
	"errors"
	"net/http"

	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/nology-tech/employee-creator-go/internal/pkg/validator"
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
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidSortField):
		BadRequest(w, "Unknown sort field", nil)
	case errors.Is(err, employee.ErrFinishBeforeStart):
		ValidationError(w, map[string]string{"finishDate": "finish date must be after the start date"})
	case errors.Is(err, employee.ErrFinishDateWhenOngoing):
		ValidationError(w, map[string]string{"finishDate": "finish date cannot be set for ongoing employment"})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
