// internal/store/bookings.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

const bookingColumns = "id, start_time, end_time, first_name, last_name, room_id"

// ListBookings returns every booking ordered by start time.
func (q *Queries) ListBookings(ctx context.Context) ([]Booking, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM booking ORDER BY start_time, id")
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if err := q.attachEquipmentIDs(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking returns the booking with the given id, or sql.ErrNoRows.
func (q *Queries) GetBooking(ctx context.Context, id int64) (Booking, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM booking WHERE id = ?", id)

	var b Booking
	if err := row.Scan(&b.ID, &b.StartTime, &b.EndTime, &b.FirstName, &b.LastName, &b.RoomID); err != nil {
		return Booking{}, err
	}
	bookings := []Booking{b}
	if err := q.attachEquipmentIDs(ctx, bookings); err != nil {
		return Booking{}, err
	}
	return bookings[0], nil
}

// ListOverlapping returns all bookings whose range shares at least one
// instant with [start, end], boundaries included. A touching endpoint counts
// as an overlap. excludeID skips one booking (0 excludes nothing), so an
// update does not collide with the booking it is replacing.
func (q *Queries) ListOverlapping(ctx context.Context, start, end time.Time, excludeID int64) ([]Booking, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+bookingColumns+` FROM booking
		 WHERE ((? BETWEEN start_time AND end_time) OR (? BETWEEN start_time AND end_time))
		   AND id <> ?
		 ORDER BY start_time, id`,
		start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if err := q.attachEquipmentIDs(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// InsertBooking creates a booking row plus its equipment links and returns
// the stored booking with its assigned id.
func (q *Queries) InsertBooking(ctx context.Context, params InsertBookingParams) (Booking, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO booking (start_time, end_time, first_name, last_name, room_id)
		 VALUES (?, ?, ?, ?, ?)`,
		params.StartTime, params.EndTime, params.FirstName, params.LastName, params.RoomID)
	if err != nil {
		return Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Booking{}, fmt.Errorf("insert booking id: %w", err)
	}

	if err := q.replaceEquipmentLinks(ctx, id, params.EquipmentIDs); err != nil {
		return Booking{}, err
	}

	return Booking{
		ID:           id,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		RoomID:       params.RoomID,
		EquipmentIDs: append([]int64(nil), params.EquipmentIDs...),
	}, nil
}

// UpdateBooking rewrites a booking row in place, replacing its equipment
// links. Returns sql.ErrNoRows if the booking does not exist.
func (q *Queries) UpdateBooking(ctx context.Context, params UpdateBookingParams) error {
	result, err := q.db.ExecContext(ctx,
		`UPDATE booking
		 SET start_time = ?, end_time = ?, first_name = ?, last_name = ?, room_id = ?
		 WHERE id = ?`,
		params.StartTime, params.EndTime, params.FirstName, params.LastName, params.RoomID, params.ID)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return q.replaceEquipmentLinks(ctx, params.ID, params.EquipmentIDs)
}

// DeleteBooking removes a booking by id. Deleting a missing id is not an
// error.
func (q *Queries) DeleteBooking(ctx context.Context, id int64) error {
	if _, err := q.db.ExecContext(ctx, "DELETE FROM booking WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// DeleteEndedAtOrBefore removes every booking whose end time is at or before
// the threshold and reports how many rows were deleted.
func (q *Queries) DeleteEndedAtOrBefore(ctx context.Context, threshold time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, "DELETE FROM booking WHERE end_time <= ?", threshold)
	if err != nil {
		return 0, fmt.Errorf("delete expired bookings: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired bookings rows: %w", err)
	}
	return affected, nil
}

func scanBookings(rows *sql.Rows) ([]Booking, error) {
	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.StartTime, &b.EndTime, &b.FirstName, &b.LastName, &b.RoomID); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// attachEquipmentIDs loads the booked_equipment links for the given bookings
// in one query.
func (q *Queries) attachEquipmentIDs(ctx context.Context, bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	query := "SELECT booking_id, equipment_id FROM booked_equipment WHERE booking_id IN (" +
		placeholders(len(bookings)) + ") ORDER BY equipment_id"
	args := make([]interface{}, len(bookings))
	index := make(map[int64]int, len(bookings))
	for i := range bookings {
		args[i] = bookings[i].ID
		index[bookings[i].ID] = i
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list booked equipment: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID, equipmentID int64
		if err := rows.Scan(&bookingID, &equipmentID); err != nil {
			return fmt.Errorf("scan booked equipment: %w", err)
		}
		i := index[bookingID]
		bookings[i].EquipmentIDs = append(bookings[i].EquipmentIDs, equipmentID)
	}
	return rows.Err()
}

// replaceEquipmentLinks rewrites the booked_equipment rows for a booking.
func (q *Queries) replaceEquipmentLinks(ctx context.Context, bookingID int64, equipmentIDs []int64) error {
	if _, err := q.db.ExecContext(ctx,
		"DELETE FROM booked_equipment WHERE booking_id = ?", bookingID); err != nil {
		return fmt.Errorf("clear booked equipment: %w", err)
	}

	ids := append([]int64(nil), equipmentIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, equipmentID := range ids {
		if _, err := q.db.ExecContext(ctx,
			"INSERT INTO booked_equipment (booking_id, equipment_id) VALUES (?, ?)",
			bookingID, equipmentID); err != nil {
			return fmt.Errorf("insert booked equipment: %w", err)
		}
	}
	return nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	buf := make([]byte, 0, n*2-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '?')
	}
	return string(buf)
}
