package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
app:
  name: roomclerk
  environment: test
  port: 8080
database:
  driver: sqlite
  filename: data/test.db
booking:
  allowed_start_time: "09:00"
  allowed_end_time: "18:00"
  purge_interval: 30m
  purge_start_delay: 90s
  purge_older_than: 48h
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.App.Port != 8080 {
		t.Fatalf("port: got %d", cfg.App.Port)
	}
	if got := cfg.Booking.AllowedStartTime.String(); got != "09:00" {
		t.Fatalf("allowed start: got %q", got)
	}
	if got := cfg.Booking.AllowedEndTime.String(); got != "18:00" {
		t.Fatalf("allowed end: got %q", got)
	}
	if cfg.Booking.PurgeInterval.Std() != 30*time.Minute {
		t.Fatalf("purge interval: got %v", cfg.Booking.PurgeInterval)
	}
	if cfg.Booking.PurgeStartDelay.Std() != 90*time.Second {
		t.Fatalf("purge start delay: got %v", cfg.Booking.PurgeStartDelay)
	}
	if cfg.Booking.PurgeOlderThan.Std() != 48*time.Hour {
		t.Fatalf("purge older than: got %v", cfg.Booking.PurgeOlderThan)
	}
}

func TestLoad_PurgeDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
app:
  name: roomclerk
  port: 8080
database:
  driver: sqlite
  filename: data/test.db
booking:
  allowed_start_time: "09:00"
  allowed_end_time: "18:00"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Booking.PurgeInterval.Std() != time.Hour {
		t.Fatalf("default purge interval: got %v", cfg.Booking.PurgeInterval)
	}
	if cfg.Booking.PurgeStartDelay.Std() != time.Minute {
		t.Fatalf("default purge start delay: got %v", cfg.Booking.PurgeStartDelay)
	}
	if cfg.Booking.PurgeOlderThan.Std() != 24*time.Hour {
		t.Fatalf("default purge retention: got %v", cfg.Booking.PurgeOlderThan)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", `
app:
  port: 8080
database:
  driver: sqlite
  filename: data/test.db
booking:
  allowed_start_time: "09:00"
  allowed_end_time: "18:00"
`},
		{"unsupported driver", `
app:
  name: roomclerk
  port: 8080
database:
  driver: postgres
  filename: data/test.db
booking:
  allowed_start_time: "09:00"
  allowed_end_time: "18:00"
`},
		{"inverted window", `
app:
  name: roomclerk
  port: 8080
database:
  driver: sqlite
  filename: data/test.db
booking:
  allowed_start_time: "18:00"
  allowed_end_time: "09:00"
`},
		{"malformed time of day", `
app:
  name: roomclerk
  port: 8080
database:
  driver: sqlite
  filename: data/test.db
booking:
  allowed_start_time: "9 o'clock"
  allowed_end_time: "18:00"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected load to fail")
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("14:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := TimeOfDay(14*time.Hour + 30*time.Minute)
	if parsed != want {
		t.Fatalf("got %v, want %v", parsed, want)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected parse failure for 25:00")
	}
}

func TestAt(t *testing.T) {
	moment := time.Date(2026, 3, 10, 14, 30, 15, 0, time.UTC)
	got := At(moment)
	want := TimeOfDay(14*time.Hour + 30*time.Minute + 15*time.Second)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
