package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

const timeRecordColumns = `
	id, employee_id, date, kind, entry_time, lunch_out, lunch_in, exit_time,
	worked_hours, overtime_hours, overtime_pct, delay_minutes_entry,
	delay_minutes_exit, total_delay_hours, flagged, notes, created_at, updated_at
`

// Create implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (
			id, employee_id, date, kind, entry_time, lunch_out, lunch_in, exit_time,
			worked_hours, overtime_hours, overtime_pct, delay_minutes_entry,
			delay_minutes_exit, total_delay_hours, flagged, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.Kind,
		record.Entry, record.LunchOut, record.LunchIn, record.Exit,
		record.WorkedHours, record.OvertimeHours, record.OvertimePct,
		record.DelayMinutesEntry, record.DelayMinutesExit, record.TotalDelayHours,
		record.Flagged, record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// The unique index on (employee_id, date) serializes concurrent
		// edits to the same employee-day.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timerecord.TimeRecord{}, timerecord.ErrDuplicateDate
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// Update implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Update(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET employee_id = $2, date = $3, kind = $4, entry_time = $5, lunch_out = $6,
			lunch_in = $7, exit_time = $8, worked_hours = $9, overtime_hours = $10,
			overtime_pct = $11, delay_minutes_entry = $12, delay_minutes_exit = $13,
			total_delay_hours = $14, flagged = $15, notes = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.Kind,
		record.Entry, record.LunchOut, record.LunchIn, record.Exit,
		record.WorkedHours, record.OvertimeHours, record.OvertimePct,
		record.DelayMinutesEntry, record.DelayMinutesExit, record.TotalDelayHours,
		record.Flagged, record.Notes,
	).Scan(&record.UpdatedAt)

	if err == pgx.ErrNoRows {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timerecord.TimeRecord{}, timerecord.ErrDuplicateDate
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to update time record: %w", err)
	}

	return record, nil
}

// GetByID implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeRecordColumns + ` FROM time_records WHERE id = $1`

	record, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}
	return record, nil
}

// GetByEmployeeAndDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeRecordColumns + ` FROM time_records WHERE employee_id = $1 AND date = $2`

	record, err := scanTimeRecord(q.QueryRow(ctx, query, employeeID, date))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time record by date: %w", err)
	}
	return &record, nil
}

// ListByEmployeePeriod implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// ListFlagged implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListFlagged(ctx context.Context, limit int) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE flagged
		ORDER BY date
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// Delete implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrRecordNotFound
	}
	return nil
}

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var t timerecord.TimeRecord
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Date, &t.Kind,
		&t.Entry, &t.LunchOut, &t.LunchIn, &t.Exit,
		&t.WorkedHours, &t.OvertimeHours, &t.OvertimePct,
		&t.DelayMinutesEntry, &t.DelayMinutesExit, &t.TotalDelayHours,
		&t.Flagged, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	var records []timerecord.TimeRecord
	for rows.Next() {
		var t timerecord.TimeRecord
		err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.Date, &t.Kind,
			&t.Entry, &t.LunchOut, &t.LunchIn, &t.Exit,
			&t.WorkedHours, &t.OvertimeHours, &t.OvertimePct,
			&t.DelayMinutesEntry, &t.DelayMinutesExit, &t.TotalDelayHours,
			&t.Flagged, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, t)
	}
	return records, rows.Err()
}
