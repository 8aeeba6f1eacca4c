// internal/booking/service.go
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	appdb "roomclerk/internal/db"
	"roomclerk/internal/store"
)

// Service orchestrates the booking lifecycle. Every mutating operation runs
// its conflict check and its write inside one transaction, so two concurrent
// requests for the same room or equipment cannot both commit.
type Service struct {
	db        *appdb.DB
	validator *Validator
}

func NewService(database *appdb.DB, validator *Validator) *Service {
	return &Service{
		db:        database,
		validator: validator,
	}
}

// List returns every booking with its room and equipment expanded.
func (s *Service) List(ctx context.Context) ([]View, error) {
	q := s.db.Queries

	bookings, err := q.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := q.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := q.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	roomsByID := make(map[int64]store.MeetingRoom, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}
	equipmentByID := make(map[int64]store.Equipment, len(equipment))
	for _, item := range equipment {
		equipmentByID[item.ID] = item
	}

	views := make([]View, 0, len(bookings))
	for _, b := range bookings {
		items := make([]store.Equipment, 0, len(b.EquipmentIDs))
		for _, id := range b.EquipmentIDs {
			if item, ok := equipmentByID[id]; ok {
				items = append(items, item)
			}
		}
		views = append(views, viewFrom(b, roomsByID[b.RoomID], items))
	}
	return views, nil
}

// Create validates the request, checks room and equipment availability
// against all overlapping bookings, and persists a new booking. Equipment
// ids that do not resolve to a catalog item are silently dropped; an unknown
// room id fails with ErrRoomNotFound.
func (s *Service) Create(ctx context.Context, req *Request) (View, error) {
	if err := s.validator.ValidateRequest(req); err != nil {
		return View{}, err
	}

	var view View
	err := s.db.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		room, err := q.GetRoom(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("resolve room: %w", err)
		}

		overlapping, err := q.ListOverlapping(ctx, req.StartTime, req.EndTime, 0)
		if err != nil {
			return err
		}
		if err := checkAvailability(overlapping, req.RoomID, req.EquipmentIDs); err != nil {
			return err
		}

		equipment, err := q.ListEquipmentByIDs(ctx, req.EquipmentIDs)
		if err != nil {
			return err
		}

		created, err := q.InsertBooking(ctx, store.InsertBookingParams{
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			RoomID:       room.ID,
			EquipmentIDs: equipmentIDs(equipment),
		})
		if err != nil {
			return err
		}

		view = viewFrom(created, room, equipment)
		return nil
	})
	if err != nil {
		return View{}, err
	}

	log.Ctx(ctx).Info().
		Int64("booking_id", view.ID).
		Int64("room_id", view.Room.ID).
		Time("start_time", view.StartTime).
		Time("end_time", view.EndTime).
		Msg("Booking created")
	return view, nil
}

// Update runs the same pipeline as Create against an existing booking,
// excluding that booking from the overlap check so it does not conflict with
// itself, and rewrites it in place preserving its identity.
func (s *Service) Update(ctx context.Context, id int64, req *Request) (View, error) {
	if err := s.validator.ValidateRequest(req); err != nil {
		return View{}, err
	}

	var view View
	err := s.db.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		existing, err := q.GetBooking(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("resolve booking: %w", err)
		}

		room, err := q.GetRoom(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("resolve room: %w", err)
		}

		overlapping, err := q.ListOverlapping(ctx, req.StartTime, req.EndTime, existing.ID)
		if err != nil {
			return err
		}
		if err := checkAvailability(overlapping, req.RoomID, req.EquipmentIDs); err != nil {
			return err
		}

		equipment, err := q.ListEquipmentByIDs(ctx, req.EquipmentIDs)
		if err != nil {
			return err
		}

		updated := store.UpdateBookingParams{
			ID:           existing.ID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			RoomID:       room.ID,
			EquipmentIDs: equipmentIDs(equipment),
		}
		if err := q.UpdateBooking(ctx, updated); err != nil {
			return err
		}

		view = viewFrom(store.Booking{
			ID:           updated.ID,
			StartTime:    updated.StartTime,
			EndTime:      updated.EndTime,
			FirstName:    updated.FirstName,
			LastName:     updated.LastName,
			RoomID:       updated.RoomID,
			EquipmentIDs: updated.EquipmentIDs,
		}, room, equipment)
		return nil
	})
	if err != nil {
		return View{}, err
	}

	log.Ctx(ctx).Info().
		Int64("booking_id", view.ID).
		Int64("room_id", view.Room.ID).
		Msg("Booking updated")
	return view, nil
}

// Cancel deletes a booking by id. Cancelling an id that does not exist is
// not an error.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	if err := s.db.Queries.DeleteBooking(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int64("booking_id", id).Msg("Booking cancelled")
	return nil
}

func equipmentIDs(equipment []store.Equipment) []int64 {
	ids := make([]int64, 0, len(equipment))
	for _, item := range equipment {
		ids = append(ids, item.ID)
	}
	return ids
}
