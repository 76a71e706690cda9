package env

import (
	"fmt"
	"mines_backend/internal/config"
	"os"
	"strings"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"
)

type logConfig struct {
	level  string
	format string
}

func NewLogConfig() (config.LogConfig, error) {
	level := strings.ToLower(os.Getenv(logLevelEnvName))
	switch level {
	case "":
		level = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	format := strings.ToLower(os.Getenv(logFormatEnvName))
	switch format {
	case "":
		format = "json"
	case "json", "console":
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return &logConfig{
		level:  level,
		format: format,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Format() string {
	return cfg.format
}
