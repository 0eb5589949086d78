package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvPredictionURL = "MEDIQUOTE_PREDICTION_URL"
	EnvTimeout       = "MEDIQUOTE_TIMEOUT"
	EnvEnvironment   = "MEDIQUOTE_ENV"
	EnvLogFormat     = "MEDIQUOTE_LOG_FORMAT"
)

// Settings configure how the tools reach the prediction service and log
type Settings struct {
	PredictionURL  string        `yaml:"prediction_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Environment    string        `yaml:"environment"`
	LogFormat      string        `yaml:"log_format"`
}

// DefaultSettings targets a prediction service on localhost
func DefaultSettings() Settings {
	return Settings{
		PredictionURL:  "http://127.0.0.1:5000/predict",
		RequestTimeout: 30 * time.Second,
		Environment:    "dev",
		LogFormat:      "text",
	}
}

// LoadSettings layers defaults, an optional YAML file, a .env file and the
// process environment, later sources winning. path may be empty.
func LoadSettings(path string) (*Settings, error) {
	cfg := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	// .env is optional; variables already set in the environment are kept
	_ = godotenv.Load(".env")

	cfg.PredictionURL = getEnv(EnvPredictionURL, cfg.PredictionURL)
	cfg.Environment = getEnv(EnvEnvironment, cfg.Environment)
	cfg.LogFormat = strings.ToLower(getEnv(EnvLogFormat, cfg.LogFormat))

	timeout, err := getEnvAsDuration(EnvTimeout, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings are usable
func (s Settings) Validate() error {
	if s.PredictionURL == "" {
		return fmt.Errorf("prediction URL is required")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", s.RequestTimeout)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q (want text or json)", s.LogFormat)
	}
	return nil
}

// IsProduction reports whether the environment is prod
func (s Settings) IsProduction() bool {
	return s.Environment == "prod"
}

func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvAsDuration accepts Go durations ("45s") or a whole number of seconds
func getEnvAsDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d, nil
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid %s %q", key, val)
}
