// internal/booking/errors.go
package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound reports an operation against a booking id that does
	// not exist.
	ErrBookingNotFound = errors.New("no such booking exists")
	// ErrRoomNotFound reports a request referencing a room id that does not
	// exist. Unlike equipment, an unknown room is a hard failure.
	ErrRoomNotFound = errors.New("no such room exists")
)

// Time range failure reasons, checked in this order.
const (
	ReasonStartAfterEnd   = "start time must precede end time"
	ReasonStartOutOfRange = "start time not in allowed range"
	ReasonEndOutOfRange   = "end time not in allowed range"
	ReasonDurationTooLong = "booking time exceeds allowed range"
)

// TimeRangeError reports the first time-legality rule a request violated.
type TimeRangeError struct {
	Reason string
}

func (e *TimeRangeError) Error() string { return e.Reason }

// AvailabilityError reports which resource class blocked the request.
type AvailabilityError struct {
	Resource string // "room" or "equipment"
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s not available", e.Resource)
}
