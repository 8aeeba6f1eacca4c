package booking

import (
	"errors"
	"testing"
	"time"

	"roomclerk/internal/config"
)

func testWindow(t *testing.T) Window {
	t.Helper()

	start, err := config.ParseTimeOfDay("09:00")
	if err != nil {
		t.Fatalf("parse window start: %v", err)
	}
	end, err := config.ParseTimeOfDay("18:00")
	if err != nil {
		t.Fatalf("parse window end: %v", err)
	}
	return Window{Start: start, End: end}
}

func sampleRequest(startHour, endHour int) *Request {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &Request{
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
		FirstName: "name",
		LastName:  "surname",
		RoomID:    1,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	v := NewValidator(testWindow(t))

	if err := v.ValidateRequest(sampleRequest(11, 13)); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateRequest_TimeRangeRules(t *testing.T) {
	v := NewValidator(testWindow(t))
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		reason string
	}{
		{
			name:   "end precedes start",
			start:  day.Add(15 * time.Hour),
			end:    day.Add(14 * time.Hour),
			reason: ReasonStartAfterEnd,
		},
		{
			name:   "end equals start",
			start:  day.Add(15 * time.Hour),
			end:    day.Add(15 * time.Hour),
			reason: ReasonStartAfterEnd,
		},
		{
			name:   "start before allowed window",
			start:  day.Add(7 * time.Hour),
			end:    day.Add(8 * time.Hour),
			reason: ReasonStartOutOfRange,
		},
		{
			name:   "start after allowed window",
			start:  day.Add(19 * time.Hour),
			end:    day.Add(20 * time.Hour),
			reason: ReasonStartOutOfRange,
		},
		{
			name:   "end after allowed window",
			start:  day.Add(17 * time.Hour),
			end:    day.Add(23 * time.Hour),
			reason: ReasonEndOutOfRange,
		},
		{
			name:   "duration exceeds allowed span",
			start:  day.Add(11 * time.Hour),
			end:    day.AddDate(0, 0, 1).Add(12 * time.Hour),
			reason: ReasonDurationTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest(11, 13)
			req.StartTime = tt.start
			req.EndTime = tt.end

			err := v.ValidateRequest(req)
			var timeErr *TimeRangeError
			if !errors.As(err, &timeErr) {
				t.Fatalf("expected TimeRangeError, got %v", err)
			}
			if timeErr.Reason != tt.reason {
				t.Fatalf("reason: got %q, want %q", timeErr.Reason, tt.reason)
			}
		})
	}
}

func TestValidateRequest_WindowBoundariesInclusive(t *testing.T) {
	v := NewValidator(testWindow(t))

	// Exactly on both window edges is legal.
	if err := v.ValidateRequest(sampleRequest(9, 18)); err != nil {
		t.Fatalf("boundary request rejected: %v", err)
	}
}

func TestValidateRequest_DurationTruncatesToWholeHours(t *testing.T) {
	v := NewValidator(testWindow(t))

	// 09:10 to 18:00 is 8h50m; the whole-hour comparison truncates it to 8h
	// against the 9h window, so it passes.
	req := sampleRequest(9, 18)
	req.StartTime = req.StartTime.Add(10 * time.Minute)
	if err := v.ValidateRequest(req); err != nil {
		t.Fatalf("sub-hour remainder should be truncated: %v", err)
	}
}

func TestValidateRequest_FieldRules(t *testing.T) {
	v := NewValidator(testWindow(t))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing first name", func(r *Request) { r.FirstName = "" }},
		{"missing last name", func(r *Request) { r.LastName = "" }},
		{"missing room id", func(r *Request) { r.RoomID = 0 }},
		{"negative equipment id", func(r *Request) { r.EquipmentIDs = []int64{-1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest(11, 13)
			tt.mutate(req)

			err := v.ValidateRequest(req)
			var fieldErrs FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if len(fieldErrs) == 0 {
				t.Fatal("expected at least one field error")
			}
		})
	}
}
