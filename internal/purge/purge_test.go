package purge

import (
	"context"
	"sync"
	"testing"
	"time"

	appdb "roomclerk/internal/db"
	"roomclerk/internal/store"
	"roomclerk/internal/testutil"
)

// mockClock is a controllable clock for testing.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock(now time.Time) *mockClock {
	return &mockClock{now: now}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func seedBooking(t *testing.T, database *appdb.DB, roomID int64, start, end time.Time) store.Booking {
	t.Helper()

	created, err := database.Queries.InsertBooking(context.Background(), store.InsertBookingParams{
		StartTime: start,
		EndTime:   end,
		FirstName: "name",
		LastName:  "surname",
		RoomID:    roomID,
	})
	if err != nil {
		t.Fatalf("insert booking: %v", err)
	}
	return created
}

func TestRun_RemovesOnlyExpiredBookings(t *testing.T) {
	database := testutil.NewTestDB(t)
	room, err := database.Queries.InsertRoom(context.Background(), "room")
	if err != nil {
		t.Fatalf("insert room: %v", err)
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	retention := 24 * time.Hour
	threshold := now.Add(-retention)

	// One booking one minute before the threshold, one exactly at it, one
	// one minute after.
	seedBooking(t, database, room.ID, threshold.Add(-time.Hour), threshold.Add(-time.Minute))
	seedBooking(t, database, room.ID, threshold.Add(-time.Hour), threshold)
	active := seedBooking(t, database, room.ID, threshold.Add(-time.Hour), threshold.Add(time.Minute))

	svc := NewService(database, retention, newMockClock(now))
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("purge run: %v", err)
	}

	remaining, err := database.Queries.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining count: got %d, want 1", len(remaining))
	}
	if remaining[0].ID != active.ID {
		t.Fatalf("remaining id: got %d, want %d", remaining[0].ID, active.ID)
	}
}

func TestRun_EmptyTableIsNotAnError(t *testing.T) {
	database := testutil.NewTestDB(t)

	svc := NewService(database, 24*time.Hour, newMockClock(time.Now()))
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("purge run on empty table: %v", err)
	}
}

func TestRun_RepeatedRunsAreStable(t *testing.T) {
	database := testutil.NewTestDB(t)
	room, err := database.Queries.InsertRoom(context.Background(), "room")
	if err != nil {
		t.Fatalf("insert room: %v", err)
	}

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	retention := time.Hour
	seedBooking(t, database, room.ID, now.Add(-3*time.Hour), now.Add(-2*time.Hour))

	svc := NewService(database, retention, newMockClock(now))
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first purge run: %v", err)
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second purge run: %v", err)
	}

	remaining, err := database.Queries.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("remaining count: got %d, want 0", len(remaining))
	}
}
