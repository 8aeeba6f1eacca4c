// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

// BookingConfig carries the organization-wide booking policy: the daily
// time-of-day window every booking must fall inside, and the retention
// schedule for the purge job.
type BookingConfig struct {
	AllowedStartTime TimeOfDay `yaml:"allowed_start_time"`
	AllowedEndTime   TimeOfDay `yaml:"allowed_end_time"`
	PurgeInterval    Duration  `yaml:"purge_interval"`
	PurgeStartDelay  Duration  `yaml:"purge_start_delay"`
	PurgeOlderThan   Duration  `yaml:"purge_older_than"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Booking  BookingConfig  `yaml:"booking"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Booking.PurgeInterval == 0 {
		c.Booking.PurgeInterval = Duration(time.Hour)
	}
	if c.Booking.PurgeStartDelay == 0 {
		c.Booking.PurgeStartDelay = Duration(time.Minute)
	}
	if c.Booking.PurgeOlderThan == 0 {
		c.Booking.PurgeOlderThan = Duration(24 * time.Hour)
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required for sqlite")
	}
	if !c.Booking.AllowedStartTime.Before(c.Booking.AllowedEndTime) {
		return fmt.Errorf("allowed_start_time must precede allowed_end_time")
	}
	if c.Booking.PurgeInterval < 0 || c.Booking.PurgeStartDelay < 0 || c.Booking.PurgeOlderThan < 0 {
		return fmt.Errorf("purge durations must not be negative")
	}
	return nil
}
