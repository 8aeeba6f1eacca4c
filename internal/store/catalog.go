// internal/store/catalog.go
package store

import (
	"context"
	"fmt"
)

// GetRoom returns the meeting room with the given id, or sql.ErrNoRows.
func (q *Queries) GetRoom(ctx context.Context, id int64) (MeetingRoom, error) {
	var room MeetingRoom
	err := q.db.QueryRowContext(ctx,
		"SELECT id, name FROM meeting_room WHERE id = ?", id).
		Scan(&room.ID, &room.Name)
	if err != nil {
		return MeetingRoom{}, err
	}
	return room, nil
}

func (q *Queries) ListRooms(ctx context.Context) ([]MeetingRoom, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT id, name FROM meeting_room ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []MeetingRoom
	for rows.Next() {
		var room MeetingRoom
		if err := rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// ListEquipmentByIDs resolves equipment ids to rows. Ids with no matching
// row are simply absent from the result.
func (q *Queries) ListEquipmentByIDs(ctx context.Context, ids []int64) ([]Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := "SELECT id, name FROM equipment WHERE id IN (" + placeholders(len(ids)) + ") ORDER BY id"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment by ids: %w", err)
	}
	defer rows.Close()

	var items []Equipment
	for rows.Next() {
		var item Equipment
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (q *Queries) ListEquipment(ctx context.Context) ([]Equipment, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT id, name FROM equipment ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []Equipment
	for rows.Next() {
		var item Equipment
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// InsertRoom adds a meeting room to the catalog.
func (q *Queries) InsertRoom(ctx context.Context, name string) (MeetingRoom, error) {
	result, err := q.db.ExecContext(ctx, "INSERT INTO meeting_room (name) VALUES (?)", name)
	if err != nil {
		return MeetingRoom{}, fmt.Errorf("insert room: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return MeetingRoom{}, fmt.Errorf("insert room id: %w", err)
	}
	return MeetingRoom{ID: id, Name: name}, nil
}

// InsertEquipment adds an equipment item to the catalog.
func (q *Queries) InsertEquipment(ctx context.Context, name string) (Equipment, error) {
	result, err := q.db.ExecContext(ctx, "INSERT INTO equipment (name) VALUES (?)", name)
	if err != nil {
		return Equipment{}, fmt.Errorf("insert equipment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Equipment{}, fmt.Errorf("insert equipment id: %w", err)
	}
	return Equipment{ID: id, Name: name}, nil
}
