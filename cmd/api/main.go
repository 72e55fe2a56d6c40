package main

import (
	"fmt"
	"net/http"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	appHTTP "github.com/estruturasdovale/sige-backend-go/internal/handler/http"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/cron"
	"github.com/estruturasdovale/sige-backend-go/internal/pkg/database"
	"github.com/estruturasdovale/sige-backend-go/internal/repository/postgresql"
	kpiService "github.com/estruturasdovale/sige-backend-go/internal/service/kpi"
	timerecordService "github.com/estruturasdovale/sige-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	externalCostRepo := postgresql.NewExternalCostRepository(db)

	recordSvc := timerecordService.NewTimeRecordService(
		timeRecordRepo,
		employeeRepo,
		workScheduleRepo,
		cfg.Labor,
	)
	kpiSvc := kpiService.NewKPIService(
		db,
		employeeRepo,
		workScheduleRepo,
		timeRecordRepo,
		externalCostRepo,
		cfg.Labor,
	)

	recordHandler := appHTTP.NewTimeRecordHandler(recordSvc)
	kpiHandler := appHTTP.NewKPIHandler(kpiSvc)
	settingsHandler := appHTTP.NewSettingsHandler(cfg.Labor)

	scheduler := cron.NewScheduler()
	laborJobs := cron.NewLaborJobs(recordSvc, cfg.Labor)
	laborJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		recordHandler,
		kpiHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
