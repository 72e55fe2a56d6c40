package kpi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/cost"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/kpi"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/estruturasdovale/sige-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// snapshotFunc runs fn with every read inside one consistent snapshot.
type snapshotFunc func(ctx context.Context, fn func(context.Context) error) error

type KPIServiceImpl struct {
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	timerecord.TimeRecordRepository
	cost.ExternalCostRepository
	settings *config.LaborSettings
	snapshot snapshotFunc

	calculator *Calculator
	dsr        *DSRCalculator
	allocator  *Allocator
	validator  *CrossValidator
}

func NewKPIService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	recordRepo timerecord.TimeRecordRepository,
	costRepo cost.ExternalCostRepository,
	settings *config.LaborSettings,
) kpi.KPIService {
	return &KPIServiceImpl{
		snapshot: func(ctx context.Context, fn func(context.Context) error) error {
			return postgresql.WithSnapshot(ctx, db, fn)
		},
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
		TimeRecordRepository:   recordRepo,
		ExternalCostRepository: costRepo,
		settings:               settings,
		calculator:             NewCalculator(),
		dsr:                    NewDSRCalculator(),
		allocator:              NewAllocator(),
		validator:              NewCrossValidator(),
	}
}

// Compute implements kpi.KPIService.
func (s *KPIServiceImpl) Compute(ctx context.Context, query kpi.PeriodQuery) (kpi.EmployeeKPIResponse, error) {
	in, err := s.loadInputs(ctx, query)
	if err != nil {
		return kpi.EmployeeKPIResponse{}, err
	}

	result, err := s.calculator.Compute(in)
	if err != nil {
		return kpi.EmployeeKPIResponse{}, err
	}
	return kpi.ToKPIResponse(result), nil
}

// DSR implements kpi.KPIService.
func (s *KPIServiceImpl) DSR(ctx context.Context, query kpi.PeriodQuery) (kpi.DSRResponse, error) {
	in, err := s.loadInputs(ctx, query)
	if err != nil {
		return kpi.DSRResponse{}, err
	}

	absenceDates := absenceDatesOf(in.Records)
	result := s.dsr.Assess(in.Salary, absenceDates, in.Start, in.End, in.Rules.DSRWeekStart)
	return kpi.ToDSRResponse(result), nil
}

// Costs implements kpi.KPIService.
func (s *KPIServiceImpl) Costs(ctx context.Context, query kpi.PeriodQuery) (kpi.CostAllocationResponse, error) {
	in, err := s.loadInputs(ctx, query)
	if err != nil {
		return kpi.CostAllocationResponse{}, err
	}

	result, err := s.calculator.Compute(in)
	if err != nil {
		return kpi.CostAllocationResponse{}, err
	}

	items, err := s.ExternalCostRepository.ListByEmployeePeriod(ctx, query.EmployeeID, in.Start, in.End)
	if err != nil {
		return kpi.CostAllocationResponse{}, fmt.Errorf("list external costs: %w", err)
	}
	return kpi.ToCostAllocationResponse(s.allocator.Allocate(result), items), nil
}

// Audit implements kpi.KPIService.
func (s *KPIServiceImpl) Audit(ctx context.Context, query kpi.PeriodQuery) ([]kpi.DivergenceResponse, error) {
	in, err := s.loadInputs(ctx, query)
	if err != nil {
		return nil, err
	}

	result, err := s.calculator.Compute(in)
	if err != nil {
		return nil, err
	}

	report := s.validator.Validate(result, in)
	resp := make([]kpi.DivergenceResponse, 0, len(report))
	for _, d := range report {
		resp = append(resp, kpi.DivergenceResponse{
			KPI:       d.KPI,
			Aggregate: d.Aggregate,
			Naive:     d.Naive,
			Diff:      d.Diff,
		})
	}
	return resp, nil
}

// loadInputs reads the computation snapshot inside one repeatable-read
// transaction so that the aggregate and naive views see the same rows.
func (s *KPIServiceImpl) loadInputs(ctx context.Context, query kpi.PeriodQuery) (Inputs, error) {
	if err := query.Validate(); err != nil {
		return Inputs{}, err
	}
	start, end := query.Period()

	in := Inputs{
		EmployeeID: query.EmployeeID,
		Start:      start,
		End:        end,
		Rules:      s.settings.Rules(),
	}

	err := s.snapshot(ctx, func(txCtx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(txCtx, query.EmployeeID)
		if err != nil {
			return err
		}
		in.Salary = emp.Salary

		sched, err := s.WorkScheduleRepository.GetByEmployeeID(txCtx, query.EmployeeID)
		if err != nil {
			if !errors.Is(err, schedule.ErrScheduleNotFound) {
				return fmt.Errorf("get schedule: %w", err)
			}
			slog.Warn("employee has no schedule, using default",
				"employee_id", query.EmployeeID)
			sched = schedule.Default()
		}
		in.Schedule = sched

		in.Records, err = s.TimeRecordRepository.ListByEmployeePeriod(txCtx, query.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}

		sums := make(map[cost.Bucket]decimal.Decimal, 3)
		for _, bucket := range cost.Buckets() {
			sums[bucket], err = s.ExternalCostRepository.SumByBucket(txCtx, query.EmployeeID, start, end, bucket)
			if err != nil {
				return fmt.Errorf("sum %s costs: %w", bucket, err)
			}
		}
		in.Meals = sums[cost.BucketMeals]
		in.Transport = sums[cost.BucketTransport]
		in.Other = sums[cost.BucketOther]
		return nil
	})
	if err != nil {
		return Inputs{}, err
	}

	return in, nil
}

func absenceDatesOf(records []timerecord.TimeRecord) []time.Time {
	var dates []time.Time
	for _, r := range records {
		if r.Kind == timerecord.KindAbsenceUnjustified {
			dates = append(dates, r.Date)
		}
	}
	return dates
}
