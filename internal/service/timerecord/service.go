package timerecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/calendar"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
	"github.com/estruturasdovale/sige-backend-go/internal/service/punch"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TimeRecordServiceImpl struct {
	timerecord.TimeRecordRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	settings   *config.LaborSettings
	normalizer *punch.Normalizer
}

func NewTimeRecordService(
	recordRepo timerecord.TimeRecordRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	settings *config.LaborSettings,
) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		TimeRecordRepository:   recordRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
		settings:               settings,
		normalizer:             punch.NewNormalizer(),
	}
}

// Create implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) Create(ctx context.Context, req timerecord.UpsertTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
	rec, err := s.buildRecord(ctx, req)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("check duplicate: %w", err)
	}
	if existing != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrDuplicateDate
	}

	rec.ID = uuid.Must(uuid.NewV7()).String()
	created, err := s.TimeRecordRepository.Create(ctx, rec)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	return timerecord.ToResponse(created), nil
}

// Update implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) Update(ctx context.Context, req timerecord.UpsertTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
	current, err := s.TimeRecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	rec, err := s.buildRecord(ctx, req)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	rec.ID = current.ID
	rec.CreatedAt = current.CreatedAt

	// Moving the record to another day must not collide with an existing one.
	if !rec.Date.Equal(current.Date) || rec.EmployeeID != current.EmployeeID {
		existing, err := s.TimeRecordRepository.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
		if err != nil {
			return timerecord.TimeRecordResponse{}, fmt.Errorf("check duplicate: %w", err)
		}
		if existing != nil && existing.ID != rec.ID {
			return timerecord.TimeRecordResponse{}, timerecord.ErrDuplicateDate
		}
	}

	updated, err := s.TimeRecordRepository.Update(ctx, rec)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}
	return timerecord.ToResponse(updated), nil
}

// Get implements timerecord.TimeRecordService. The record is returned with
// its cost contribution, priced at the hourly rate of the record's month.
func (s *TimeRecordServiceImpl) Get(ctx context.Context, id string) (timerecord.TimeRecordDetailResponse, error) {
	rec, err := s.TimeRecordRepository.GetByID(ctx, id)
	if err != nil {
		return timerecord.TimeRecordDetailResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return timerecord.TimeRecordDetailResponse{}, err
	}

	sched, err := s.scheduleFor(ctx, rec.EmployeeID)
	if err != nil {
		return timerecord.TimeRecordDetailResponse{}, err
	}

	return timerecord.TimeRecordDetailResponse{
		TimeRecordResponse: timerecord.ToResponse(rec),
		Cost:               recordCost(rec, emp.Salary, sched.DailyHours, s.settings.Rules()),
	}, nil
}

// recordCost prices one record: normal hours and overtime at the monthly
// hourly rate, unjustified absences as a 1/30 salary deduction, paid
// non-worked kinds at a full contracted day.
func recordCost(rec timerecord.TimeRecord, salary decimal.Decimal, dailyHours float64, rules config.LaborRules) timerecord.RecordCostResponse {
	businessDays := calendar.BusinessDaysInMonth(rec.Date.Year(), rec.Date.Month(), rules.NationalHolidays)
	if businessDays == 0 || dailyHours <= 0 {
		return timerecord.RecordCostResponse{}
	}
	rate := salary.Div(decimal.NewFromFloat(float64(businessDays) * dailyHours))

	var normal, overtime, deduction decimal.Decimal
	switch {
	case rec.Kind == timerecord.KindAbsenceUnjustified:
		deduction = salary.Div(decimal.NewFromInt(30))
	case rec.Kind.CountsAsWorkedDay():
		normal = rate.Mul(decimal.NewFromFloat(rec.WorkedHours))
		premium := decimal.NewFromFloat(1 + rec.OvertimePct/100)
		overtime = rate.Mul(decimal.NewFromFloat(rec.OvertimeHours)).Mul(premium)
	case rec.Kind == timerecord.KindVacation:
		// Vacation days carry the constitutional one-third bonus.
		normal = rate.Mul(decimal.NewFromFloat(dailyHours)).
			Mul(decimal.NewFromInt(4)).Div(decimal.NewFromInt(3))
	case rec.Kind.GeneratesCost():
		normal = rate.Mul(decimal.NewFromFloat(dailyHours))
	}

	return timerecord.RecordCostResponse{
		BaseHourlyRate: rate.Round(4),
		NormalValue:    normal.Round(2),
		OvertimeValue:  overtime.Round(2),
		Deduction:      deduction.Round(2),
		Total:          normal.Add(overtime).Sub(deduction).Round(2),
	}
}

// List implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) List(ctx context.Context, filter timerecord.ListTimeRecordsFilter) ([]timerecord.TimeRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	start, _ := time.Parse(time.DateOnly, filter.Start)
	end, _ := time.Parse(time.DateOnly, filter.End)

	records, err := s.TimeRecordRepository.ListByEmployeePeriod(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, timerecord.ToResponse(r))
	}
	return resp, nil
}

// Delete implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) Delete(ctx context.Context, id string) error {
	return s.TimeRecordRepository.Delete(ctx, id)
}

// ReprocessFlagged implements timerecord.TimeRecordService. It re-derives
// records whose punches were incomplete at upsert time and counts how many
// came out clean.
func (s *TimeRecordServiceImpl) ReprocessFlagged(ctx context.Context) (int, error) {
	flagged, err := s.TimeRecordRepository.ListFlagged(ctx, 100)
	if err != nil {
		return 0, fmt.Errorf("list flagged: %w", err)
	}

	repaired := 0
	for _, rec := range flagged {
		sched, err := s.scheduleFor(ctx, rec.EmployeeID)
		if err != nil {
			return repaired, err
		}

		derived, err := s.normalizer.Derive(rec, sched, s.settings.Rules())
		if err != nil {
			slog.Warn("flagged record still inconsistent", "record_id", rec.ID, "error", err)
			continue
		}
		if derived.Flagged {
			continue
		}

		applyDerived(&rec, derived)
		if _, err := s.TimeRecordRepository.Update(ctx, rec); err != nil {
			return repaired, fmt.Errorf("update record %s: %w", rec.ID, err)
		}
		repaired++
	}
	return repaired, nil
}

// buildRecord validates the request, resolves the kind, runs the
// normalizer and returns a record ready to persist.
func (s *TimeRecordServiceImpl) buildRecord(ctx context.Context, req timerecord.UpsertTimeRecordRequest) (timerecord.TimeRecord, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecord{}, err
	}

	kind, known := timerecord.ParseKind(req.Kind)
	if !known {
		slog.Warn("unknown record kind tag, treating as workday_normal",
			"tag", req.Kind, "employee_id", req.EmployeeID, "date", req.Date)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}
	if !emp.Active {
		return timerecord.TimeRecord{}, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse(time.DateOnly, req.Date)
	rec := timerecord.TimeRecord{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Kind:       kind,
		Entry:      parseClockPtr(req.Entry),
		LunchOut:   parseClockPtr(req.LunchOut),
		LunchIn:    parseClockPtr(req.LunchIn),
		Exit:       parseClockPtr(req.Exit),
		Notes:      req.Notes,
	}

	sched, err := s.scheduleFor(ctx, req.EmployeeID)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}

	derived, err := s.normalizer.Derive(rec, sched, s.settings.Rules())
	if err != nil {
		return timerecord.TimeRecord{}, err
	}
	applyDerived(&rec, derived)
	return rec, nil
}

func (s *TimeRecordServiceImpl) scheduleFor(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	sched, err := s.WorkScheduleRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.Default(), nil
		}
		return schedule.WorkSchedule{}, fmt.Errorf("get schedule: %w", err)
	}
	return sched, nil
}

func applyDerived(rec *timerecord.TimeRecord, d punch.Derived) {
	rec.WorkedHours = d.WorkedHours
	rec.OvertimeHours = d.OvertimeHours
	rec.OvertimePct = d.OvertimePct
	rec.DelayMinutesEntry = d.DelayMinutesEntry
	rec.DelayMinutesExit = d.DelayMinutesExit
	rec.TotalDelayHours = d.TotalDelayHours
	rec.Flagged = d.Flagged
}

func parseClockPtr(s *string) *timeutil.ClockTime {
	if s == nil {
		return nil
	}
	c, err := timeutil.ParseClock(*s)
	if err != nil {
		return nil
	}
	return &c
}
