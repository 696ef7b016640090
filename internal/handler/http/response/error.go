package response

import (
	"errors"
	"net/http"

	"github.com/leaveplan/leaveplan-backend-go/internal/domain/holiday"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/vacation"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"
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
	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "A holiday with the same name or date already exists")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation not found")
	case errors.Is(err, vacation.ErrOverlappingVacation):
		Conflict(w, "Vacation overlaps an existing vacation")
	case errors.Is(err, vacation.ErrInsufficientBalance):
		// The wrapped message carries the requested/available shortfall.
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
