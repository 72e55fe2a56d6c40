package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/domain/timerecord"
)

type LaborJobs struct {
	recordService timerecord.TimeRecordService
	settings      *config.LaborSettings
}

func NewLaborJobs(recordService timerecord.TimeRecordService, settings *config.LaborSettings) *LaborJobs {
	return &LaborJobs{
		recordService: recordService,
		settings:      settings,
	}
}

func (j *LaborJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reprocess_flagged_records", 1*time.Hour, j.ReprocessFlaggedRecords)
	scheduler.AddJob("reload_labor_settings", 6*time.Hour, j.ReloadLaborSettings)
}

// ReprocessFlaggedRecords re-derives records whose punches were incomplete
// when they were first normalized.
func (j *LaborJobs) ReprocessFlaggedRecords(ctx context.Context) error {
	repaired, err := j.recordService.ReprocessFlagged(ctx)
	if err != nil {
		return err
	}
	if repaired > 0 {
		slog.Info("Cron: repaired flagged time records", "count", repaired)
	}
	return nil
}

// ReloadLaborSettings picks up environment changes to the labor parameters
// without a restart.
func (j *LaborJobs) ReloadLaborSettings(ctx context.Context) error {
	return j.settings.Reload()
}
