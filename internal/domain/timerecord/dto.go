package timerecord

import (
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertTimeRecordRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Kind       string  `json:"kind"`
	Entry      *string `json:"entry,omitempty"`
	LunchOut   *string `json:"lunch_out,omitempty"`
	LunchIn    *string `json:"lunch_in,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpsertTimeRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind is required",
		})
	}

	for field, value := range map[string]*string{
		"entry":     r.Entry,
		"lunch_out": r.LunchOut,
		"lunch_in":  r.LunchIn,
		"exit":      r.Exit,
	} {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListTimeRecordsFilter struct {
	EmployeeID string
	Start      string
	End        string
}

func (f *ListTimeRecordsFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidDate(f.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeRecordResponse struct {
	ID                string               `json:"id"`
	EmployeeID        string               `json:"employee_id"`
	Date              string               `json:"date"`
	Kind              string               `json:"kind"`
	Entry             *timeutil.ClockTime  `json:"entry,omitempty"`
	LunchOut          *timeutil.ClockTime  `json:"lunch_out,omitempty"`
	LunchIn           *timeutil.ClockTime  `json:"lunch_in,omitempty"`
	Exit              *timeutil.ClockTime  `json:"exit,omitempty"`
	WorkedHours       float64              `json:"worked_hours"`
	OvertimeHours     float64              `json:"overtime_hours"`
	OvertimePct       float64              `json:"overtime_pct"`
	DelayMinutesEntry int                  `json:"delay_minutes_entry"`
	DelayMinutesExit  int                  `json:"delay_minutes_exit"`
	TotalDelayHours   float64              `json:"total_delay_hours"`
	Flagged           bool                 `json:"flagged"`
	Notes             *string              `json:"notes,omitempty"`
}

// RecordCostResponse is the cost contribution of a single record, priced
// at the employee's hourly rate for the record's month.
type RecordCostResponse struct {
	BaseHourlyRate decimal.Decimal `json:"base_hourly_rate"`
	NormalValue    decimal.Decimal `json:"normal_value"`
	OvertimeValue  decimal.Decimal `json:"overtime_value"`
	Deduction      decimal.Decimal `json:"deduction"`
	Total          decimal.Decimal `json:"total"`
}

type TimeRecordDetailResponse struct {
	TimeRecordResponse
	Cost RecordCostResponse `json:"cost"`
}

func ToResponse(r TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		Date:              r.Date.Format(time.DateOnly),
		Kind:              string(r.Kind),
		Entry:             r.Entry,
		LunchOut:          r.LunchOut,
		LunchIn:           r.LunchIn,
		Exit:              r.Exit,
		WorkedHours:       r.WorkedHours,
		OvertimeHours:     r.OvertimeHours,
		OvertimePct:       r.OvertimePct,
		DelayMinutesEntry: r.DelayMinutesEntry,
		DelayMinutesExit:  r.DelayMinutesExit,
		TotalDelayHours:   r.TotalDelayHours,
		Flagged:           r.Flagged,
		Notes:             r.Notes,
	}
}
