package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/estruturasdovale/sige-backend-go/internal/pkg/calendar"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Labor    *LaborSettings
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LaborRules is an immutable snapshot of the labor parameters used by the
// punch normalizer and the KPI engine. Computations take one snapshot up
// front so a concurrent refresh never changes the rules mid-calculation.
type LaborRules struct {
	ToleranceMinutes         int
	DSRWeekStart             time.Weekday
	OvertimePctSaturday      float64
	OvertimePctSundayHoliday float64
	NationalHolidays         []calendar.Holiday
	DefaultDailyHours        float64
}

// LaborSettings is the process-wide, refreshable holder of LaborRules.
type LaborSettings struct {
	mu    sync.RWMutex
	rules LaborRules
}

// Rules returns the current snapshot.
func (s *LaborSettings) Rules() LaborRules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := s.rules
	rules.NationalHolidays = append([]calendar.Holiday(nil), s.rules.NationalHolidays...)
	return rules
}

// Reload re-reads the labor parameters from the environment without a
// restart. On error the previous snapshot is kept.
func (s *LaborSettings) Reload() error {
	rules, err := loadLaborRules()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rules = rules
	s.mu.Unlock()
	return nil
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sige"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Labor rules
	rules, err := loadLaborRules()
	if err != nil {
		return nil, fmt.Errorf("labor configuration: %w", err)
	}
	config.Labor = &LaborSettings{rules: rules}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// DefaultHolidays returns the fixed Brazilian national holidays.
func DefaultHolidays() []calendar.Holiday {
	return []calendar.Holiday{
		{Month: time.January, Day: 1},
		{Month: time.April, Day: 21},
		{Month: time.May, Day: 1},
		{Month: time.September, Day: 7},
		{Month: time.October, Day: 12},
		{Month: time.November, Day: 2},
		{Month: time.November, Day: 15},
		{Month: time.December, Day: 25},
	}
}

func loadLaborRules() (LaborRules, error) {
	tolerance, err := strconv.Atoi(getEnv("TOLERANCE_MINUTES", "10"))
	if err != nil || tolerance < 0 {
		return LaborRules{}, fmt.Errorf("invalid TOLERANCE_MINUTES: %q", getEnv("TOLERANCE_MINUTES", "10"))
	}

	var weekStart time.Weekday
	switch ws := getEnv("DSR_WEEK_START", "sunday"); ws {
	case "sunday":
		weekStart = time.Sunday
	case "monday":
		weekStart = time.Monday
	default:
		return LaborRules{}, fmt.Errorf("invalid DSR_WEEK_START: %q (want sunday or monday)", ws)
	}

	pctSaturday, err := strconv.ParseFloat(getEnv("OVERTIME_PCT_SATURDAY", "50"), 64)
	if err != nil {
		return LaborRules{}, fmt.Errorf("invalid OVERTIME_PCT_SATURDAY: %w", err)
	}

	pctSundayHoliday, err := strconv.ParseFloat(getEnv("OVERTIME_PCT_SUNDAY_HOLIDAY", "100"), 64)
	if err != nil {
		return LaborRules{}, fmt.Errorf("invalid OVERTIME_PCT_SUNDAY_HOLIDAY: %w", err)
	}

	dailyHours, err := strconv.ParseFloat(getEnv("DEFAULT_DAILY_HOURS", "8.8"), 64)
	if err != nil || dailyHours <= 0 {
		return LaborRules{}, fmt.Errorf("invalid DEFAULT_DAILY_HOURS: %q", getEnv("DEFAULT_DAILY_HOURS", "8.8"))
	}

	holidays := DefaultHolidays()
	if raw := getEnv("NATIONAL_HOLIDAYS", ""); raw != "" {
		holidays, err = parseHolidays(raw)
		if err != nil {
			return LaborRules{}, err
		}
	}

	return LaborRules{
		ToleranceMinutes:         tolerance,
		DSRWeekStart:             weekStart,
		OvertimePctSaturday:      pctSaturday,
		OvertimePctSundayHoliday: pctSundayHoliday,
		NationalHolidays:         holidays,
		DefaultDailyHours:        dailyHours,
	}, nil
}

// parseHolidays parses a "MM-DD,MM-DD,..." list.
func parseHolidays(raw string) ([]calendar.Holiday, error) {
	var holidays []calendar.Holiday
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		fields := strings.Split(part, "-")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid NATIONAL_HOLIDAYS entry: %q", part)
		}
		month, err1 := strconv.Atoi(fields[0])
		day, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			return nil, fmt.Errorf("invalid NATIONAL_HOLIDAYS entry: %q", part)
		}
		holidays = append(holidays, calendar.Holiday{Month: time.Month(month), Day: day})
	}
	return holidays, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
