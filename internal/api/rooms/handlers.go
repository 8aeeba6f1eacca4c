// internal/api/rooms/handlers.go
package rooms

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"roomclerk/internal/api/apiutil"
	appdb "roomclerk/internal/db"
	"roomclerk/internal/store"
)

var (
	queries     *store.Queries
	queriesOnce sync.Once
)

const catalogQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
	})
}

// GET /api/v1/rooms
func HandleRoomsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := queries
	if q == nil {
		logger.Error().Msg("Store queries not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogQueryTimeout)
	defer cancel()

	rooms, err := q.ListRooms(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list rooms")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list rooms")
		return
	}
	if rooms == nil {
		rooms = []store.MeetingRoom{}
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, roomViews(rooms))
}

// GET /api/v1/equipment
func HandleEquipmentList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := queries
	if q == nil {
		logger.Error().Msg("Store queries not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), catalogQueryTimeout)
	defer cancel()

	equipment, err := q.ListEquipment(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list equipment")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list equipment")
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, equipmentViews(equipment))
}

type catalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func roomViews(rooms []store.MeetingRoom) []catalogItem {
	items := make([]catalogItem, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, catalogItem{ID: room.ID, Name: room.Name})
	}
	return items
}

func equipmentViews(equipment []store.Equipment) []catalogItem {
	items := make([]catalogItem, 0, len(equipment))
	for _, item := range equipment {
		items = append(items, catalogItem{ID: item.ID, Name: item.Name})
	}
	return items
}
