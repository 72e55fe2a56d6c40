package kpi

import (
	"errors"
	"fmt"
)

// KPI domain errors
var (
	ErrInvalidPeriod = errors.New("period end must not be before start")
)

// ComputationError is an arithmetic anomaly inside a KPI computation
// (zero business days, negative duration). It fails the whole request;
// partial results are never surfaced.
type ComputationError struct {
	EmployeeID string
	Field      string
	Message    string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("kpi computation failed for employee %s (%s): %s",
		e.EmployeeID, e.Field, e.Message)
}
