// internal/booking/availability.go
package booking

import "roomclerk/internal/store"

// checkAvailability derives the two availability facts from the set of
// bookings overlapping the candidate range: the requested room must not be
// held by any of them, and none of the requested equipment may appear in
// their combined equipment sets. Each fact fails independently with its own
// resource class.
func checkAvailability(overlapping []store.Booking, roomID int64, equipmentIDs []int64) error {
	if !roomAvailable(overlapping, roomID) {
		return &AvailabilityError{Resource: "room"}
	}
	if !equipmentAvailable(overlapping, equipmentIDs) {
		return &AvailabilityError{Resource: "equipment"}
	}
	return nil
}

func roomAvailable(overlapping []store.Booking, roomID int64) bool {
	for _, b := range overlapping {
		if b.RoomID == roomID {
			return false
		}
	}
	return true
}

func equipmentAvailable(overlapping []store.Booking, equipmentIDs []int64) bool {
	if len(equipmentIDs) == 0 {
		return true
	}

	booked := make(map[int64]struct{})
	for _, b := range overlapping {
		for _, id := range b.EquipmentIDs {
			booked[id] = struct{}{}
		}
	}
	for _, id := range equipmentIDs {
		if _, taken := booked[id]; taken {
			return false
		}
	}
	return true
}
