package booking

import (
	"errors"
	"testing"

	"roomclerk/internal/store"
)

func TestCheckAvailability_RoomConflict(t *testing.T) {
	overlapping := []store.Booking{
		{ID: 1, RoomID: 10},
		{ID: 2, RoomID: 20},
	}

	err := checkAvailability(overlapping, 10, nil)
	var availErr *AvailabilityError
	if !errors.As(err, &availErr) {
		t.Fatalf("expected AvailabilityError, got %v", err)
	}
	if availErr.Resource != "room" {
		t.Fatalf("resource: got %q, want room", availErr.Resource)
	}
}

func TestCheckAvailability_EquipmentConflict(t *testing.T) {
	overlapping := []store.Booking{
		{ID: 1, RoomID: 10, EquipmentIDs: []int64{1, 2}},
		{ID: 2, RoomID: 20, EquipmentIDs: []int64{3}},
	}

	err := checkAvailability(overlapping, 30, []int64{4, 3})
	var availErr *AvailabilityError
	if !errors.As(err, &availErr) {
		t.Fatalf("expected AvailabilityError, got %v", err)
	}
	if availErr.Resource != "equipment" {
		t.Fatalf("resource: got %q, want equipment", availErr.Resource)
	}
}

func TestCheckAvailability_RoomCheckedBeforeEquipment(t *testing.T) {
	// When both resources conflict, the room failure wins.
	overlapping := []store.Booking{
		{ID: 1, RoomID: 10, EquipmentIDs: []int64{1}},
	}

	err := checkAvailability(overlapping, 10, []int64{1})
	var availErr *AvailabilityError
	if !errors.As(err, &availErr) {
		t.Fatalf("expected AvailabilityError, got %v", err)
	}
	if availErr.Resource != "room" {
		t.Fatalf("resource: got %q, want room", availErr.Resource)
	}
}

func TestCheckAvailability_NoConflict(t *testing.T) {
	overlapping := []store.Booking{
		{ID: 1, RoomID: 10, EquipmentIDs: []int64{1, 2}},
	}

	if err := checkAvailability(overlapping, 20, []int64{3}); err != nil {
		t.Fatalf("expected no conflict, got %v", err)
	}
}

func TestCheckAvailability_EmptyOverlapSet(t *testing.T) {
	if err := checkAvailability(nil, 10, []int64{1, 2}); err != nil {
		t.Fatalf("expected no conflict, got %v", err)
	}
}
