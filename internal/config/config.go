package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Clock     ClockConfig
	Reminder  ReminderConfig
	Timer     TimerConfig
	Retention RetentionConfig
	Stats     StatsConfig
	CORS      CORSConfig
	PubSub    PubSubConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type ClockConfig struct {
	Location *time.Location
}

type ReminderConfig struct {
	FireBudget time.Duration
	Debounce   time.Duration
}

type TimerConfig struct {
	ExactAllowed  bool
	InexactWindow time.Duration
}

type RetentionConfig struct {
	Days          int
	SweepInterval time.Duration
}

type StatsConfig struct {
	StreakLookbackDays int
}

type CORSConfig struct {
	AllowOrigins []string
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

// Load reads the environment. A .env file in the working directory is applied
// first when present; variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	database, err := loadDatabase()
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(getEnv("TZ_NAME", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_NAME: %w", err)
	}

	fireBudget, err := time.ParseDuration(getEnv("REMINDER_FIRE_BUDGET", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_FIRE_BUDGET: %w", err)
	}

	debounce, err := time.ParseDuration(getEnv("REMINDER_DEBOUNCE", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_DEBOUNCE: %w", err)
	}

	exactAllowed, err := strconv.ParseBool(getEnv("TIMER_EXACT_ALLOWED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMER_EXACT_ALLOWED: %w", err)
	}

	inexactWindow, err := time.ParseDuration(getEnv("TIMER_INEXACT_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMER_INEXACT_WINDOW: %w", err)
	}

	retentionDays, err := positiveInt("RETENTION_DAYS", "400")
	if err != nil {
		return nil, err
	}

	sweepInterval, err := time.ParseDuration(getEnv("RETENTION_SWEEP_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid RETENTION_SWEEP_INTERVAL: %w", err)
	}

	lookbackDays, err := positiveInt("STREAK_LOOKBACK_DAYS", "365")
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: database,
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Clock: ClockConfig{
			Location: location,
		},
		Reminder: ReminderConfig{
			FireBudget: fireBudget,
			Debounce:   debounce,
		},
		Timer: TimerConfig{
			ExactAllowed:  exactAllowed,
			InexactWindow: inexactWindow,
		},
		Retention: RetentionConfig{
			Days:          retentionDays,
			SweepInterval: sweepInterval,
		},
		Stats: StatsConfig{
			StreakLookbackDays: lookbackDays,
		},
		CORS: CORSConfig{
			AllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		PubSub: PubSubConfig{
			NatsURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		},
	}, nil
}

func loadDatabase() (DatabaseConfig, error) {
	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	cfg := DatabaseConfig{
		Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DSN:             os.Getenv("POSTGRES_DSN"),
		SQLitePath:      getEnv("SQLITE_PATH", "sip.db"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
		SlowThreshold:   slowThreshold,
	}

	switch cfg.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DSN == "" {
			return DatabaseConfig{}, errors.New("POSTGRES_DSN environment variable is required")
		}
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: %q", cfg.Driver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func positiveInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}

	return n, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
