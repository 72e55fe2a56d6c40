package response

import (
	"errors"
	"net/http"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Impossible record states fail the upsert with the offending field.
	var integrityErr *timerecord.IntegrityError
	if errors.As(err, &integrityErr) {
		UnprocessableEntity(w, "DATA_INTEGRITY", integrityErr.Message,
			map[string]string{integrityErr.Field: integrityErr.Message})
		return
	}

	// Arithmetic anomalies abort the whole KPI request.
	var computationErr *kpi.ComputationError
	if errors.As(err, &computationErr) {
		UnprocessableEntity(w, "COMPUTATION_ERROR", computationErr.Message,
			map[string]string{computationErr.Field: computationErr.Message})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrDuplicateDate):
		Conflict(w, "A time record already exists for this employee and date")

	// KPI domain errors
	case errors.Is(err, kpi.ErrInvalidPeriod):
		BadRequest(w, "Invalid period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
