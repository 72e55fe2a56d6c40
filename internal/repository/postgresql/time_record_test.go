package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/timeutil"
	"github.com/estruturasdovale/sige-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeRecord(employeeID string, day time.Time) timerecord.TimeRecord {
	entry := timeutil.MustClock("07:12")
	exit := timeutil.MustClock("17:50")
	return timerecord.TimeRecord{
		ID:            uuid.Must(uuid.NewV7()).String(),
		EmployeeID:    employeeID,
		Date:          day,
		Kind:          timerecord.KindWorkdayNormal,
		Entry:         &entry,
		Exit:          &exit,
		WorkedHours:   8.8,
		OvertimeHours: 50.0 / 60,
		OvertimePct:   50,
	}
}

func TestTimeRecordRepository_CreateAndGetByID(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)

	rec := newTimeRecord(employeeID, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	created, err := repo.Create(ctx, rec)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, rec.EmployeeID, got.EmployeeID)
	assert.Equal(t, timerecord.KindWorkdayNormal, got.Kind)
	require.NotNil(t, got.Entry)
	assert.Equal(t, "07:12", got.Entry.String())
	require.NotNil(t, got.Exit)
	assert.Equal(t, "17:50", got.Exit.String())
	assert.Nil(t, got.LunchOut)
	assert.InDelta(t, 8.8, got.WorkedHours, 1e-9)
	assert.InDelta(t, 50.0/60, got.OvertimeHours, 1e-9)
	assert.Equal(t, 50.0, got.OvertimePct)
}

func TestTimeRecordRepository_DuplicateDateMapsSentinel(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)
	day := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, newTimeRecord(employeeID, day))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTimeRecord(employeeID, day))
	assert.ErrorIs(t, err, timerecord.ErrDuplicateDate)
}

func TestTimeRecordRepository_UpdateNotFound(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)

	rec := newTimeRecord(employeeID, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	_, err := repo.Update(ctx, rec)
	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}

func TestTimeRecordRepository_GetByEmployeeAndDate(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)
	day := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	got, err := repo.GetByEmployeeAndDate(ctx, employeeID, day)
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := newTimeRecord(employeeID, day)
	_, err = repo.Create(ctx, rec)
	require.NoError(t, err)

	got, err = repo.GetByEmployeeAndDate(ctx, employeeID, day)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
}

func TestTimeRecordRepository_ListByEmployeePeriodOrdersByDate(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)

	days := []int{3, 1, 2}
	for _, d := range days {
		_, err := repo.Create(ctx, newTimeRecord(employeeID, time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
	}
	// A July record must stay outside the June window.
	_, err := repo.Create(ctx, newTimeRecord(employeeID, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	got, err := repo.ListByEmployeePeriod(ctx, employeeID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Date.Day())
	assert.Equal(t, 2, got[1].Date.Day())
	assert.Equal(t, 3, got[2].Date.Day())
}

func TestTimeRecordRepository_ListFlagged(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)

	flagged := newTimeRecord(employeeID, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	flagged.Exit = nil
	flagged.Flagged = true
	_, err := repo.Create(ctx, flagged)
	require.NoError(t, err)

	clean := newTimeRecord(employeeID, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC))
	_, err = repo.Create(ctx, clean)
	require.NoError(t, err)

	got, err := repo.ListFlagged(ctx, 10)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, flagged.ID, got[0].ID)
	assert.True(t, got[0].Flagged)
}

func TestTimeRecordRepository_Delete(t *testing.T) {
	requireDB(t)
	defer cleanupTables(t)
	cleanupTables(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx, "3500.00")
	repo := postgresql.NewTimeRecordRepository(testDB)

	rec := newTimeRecord(employeeID, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	err = repo.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}
