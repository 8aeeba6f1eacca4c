// internal/config/timeofday.go
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const timeOfDayLayout = "15:04"

// TimeOfDay is a clock time without a date, parsed from "HH:MM" in config.
// It is stored as the offset from midnight so two values compare directly.
type TimeOfDay time.Duration

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return TimeOfDay(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}

// At returns t's clock time as the offset from that day's midnight.
func At(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// Sub returns the duration between two clock times.
func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return time.Duration(t) - time.Duration(other)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// UnmarshalYAML parses "HH:MM" config values.
func (t *TimeOfDay) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
