package config

import (
	"os"
	"strconv"
	"strings"

	"launchdash/internal/errors"
)

// DefaultDataFile is the launch table read when DATA_FILE is unset
const DefaultDataFile = "spacex_launch_dash.csv"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Charts    ChartConfig
	Logging   LoggingConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the input table and slider settings
type DataConfig struct {
	File            string
	SliderStep      float64
	SliderMarkEvery int
}

// ChartConfig holds rendered chart dimensions in points
type ChartConfig struct {
	Width  float64
	Height float64
}

// LoggingConfig holds log verbosity
type LoggingConfig struct {
	Level string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Charts:    *loadChartConfig(),
		Logging:   *loadLoggingConfig(),
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8050"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:            getEnvOrDefault("DATA_FILE", DefaultDataFile),
		SliderStep:      getEnvFloatOrDefault("SLIDER_STEP", 1000),
		SliderMarkEvery: getEnvIntOrDefault("SLIDER_MARK_EVERY", 5000),
	}
}

func loadChartConfig() *ChartConfig {
	return &ChartConfig{
		Width:  getEnvFloatOrDefault("CHART_WIDTH", 640),
		Height: getEnvFloatOrDefault("CHART_HEIGHT", 420),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}
	if config.Data.SliderStep <= 0 {
		return errors.ConfigInvalid("SLIDER_STEP must be positive")
	}
	if config.Data.SliderMarkEvery <= 0 {
		return errors.ConfigInvalid("SLIDER_MARK_EVERY must be positive")
	}
	if config.Charts.Width <= 0 || config.Charts.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
