package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is built once at process start and passed down explicitly; nothing
// in the core packages reads the environment.
type Config struct {
	LogDir string `envconfig:"LOG_DIR" default:"logs"`

	// monitor run
	SlackWebhookURL  string `envconfig:"SLACK_WEBHOOK_URL"`
	TargetsFile      string `envconfig:"TARGETS_FILE" default:"targets.json"`
	Concurrency      int    `envconfig:"MAX_CONCURRENT_CHECKS" default:"10"`
	SummaryThreshold int    `envconfig:"SUMMARY_THRESHOLD" default:"1"`

	// geocode run
	DatabaseURL  string        `envconfig:"DATABASE_URL"`
	GoogleAPIKey string        `envconfig:"GOOGLE_API_KEY"`
	GeocodeLimit int           `envconfig:"GEOCODE_LIMIT" default:"0"`
	GeocodePause time.Duration `envconfig:"GEOCODE_PAUSE" default:"200ms"`
}

// Load reads an optional .env file, then the environment. A missing .env
// file is fine; real deployments set the environment directly.
func Load(envFile string) (Config, error) {
	_ = godotenv.Load(envFile)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg, nil
}

// ValidateMonitor reports the configuration faults that must abort a
// monitor run before any probing begins.
func (c Config) ValidateMonitor() error {
	if c.SlackWebhookURL == "" {
		return errors.New("SLACK_WEBHOOK_URL is required")
	}
	if c.TargetsFile == "" {
		return errors.New("TARGETS_FILE is required")
	}
	return nil
}

// ValidateGeocode reports the faults that must abort a geocoding batch.
func (c Config) ValidateGeocode() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.GoogleAPIKey == "" {
		return errors.New("GOOGLE_API_KEY is required")
	}
	return nil
}
