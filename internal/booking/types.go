// internal/booking/types.go
package booking

import (
	"time"

	"roomclerk/internal/store"
)

// Request is an inbound create or update request for a booking.
type Request struct {
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	FirstName    string    `json:"first_name" validate:"required,max=100"`
	LastName     string    `json:"last_name" validate:"required,max=100"`
	RoomID       int64     `json:"room_id" validate:"required,gt=0"`
	EquipmentIDs []int64   `json:"equipment_ids" validate:"dive,gt=0"`
}

// RoomView is a room reference expanded to id and name.
type RoomView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EquipmentView is an equipment reference expanded to id and name.
type EquipmentView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// View mirrors a persisted booking with its room and equipment expanded.
type View struct {
	ID        int64           `json:"id"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Room      RoomView        `json:"room"`
	Equipment []EquipmentView `json:"equipment"`
}

func viewFrom(b store.Booking, room store.MeetingRoom, equipment []store.Equipment) View {
	items := make([]EquipmentView, 0, len(equipment))
	for _, item := range equipment {
		items = append(items, EquipmentView{ID: item.ID, Name: item.Name})
	}
	return View{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Room:      RoomView{ID: room.ID, Name: room.Name},
		Equipment: items,
	}
}
