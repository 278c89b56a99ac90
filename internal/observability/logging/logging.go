package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Module string

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Level         string
	Service       ServiceInfo
	Environment   Environment
	GCPProjectID  string
	DefaultModule Module
	// Writer defaults to stdout.
	Writer io.Writer
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})

	logger := slog.New(NewContextHandler(base, cfg.GCPProjectID, cfg.DefaultModule))

	if cfg.Service.Name != "" {
		logger = logger.With(
			slog.Group("service",
				slog.String("name", cfg.Service.Name),
				slog.String("version", cfg.Service.Version),
				slog.String("revision", cfg.Service.Revision),
			),
		)
	}

	if cfg.Environment != "" {
		logger = logger.With(slog.String("env", string(cfg.Environment)))
	}

	return logger
}

// Setup installs the logger as the slog default and returns it.
func Setup(cfg Config) *slog.Logger {
	logger := NewLogger(cfg)
	slog.SetDefault(logger)

	return logger
}
