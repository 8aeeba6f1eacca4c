// internal/api/bookings/handlers.go
package bookings

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"roomclerk/internal/api/apiutil"
	"roomclerk/internal/booking"
)

var (
	service     *booking.Service
	serviceOnce sync.Once
)

const bookingQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(svc *booking.Service) {
	if svc == nil {
		return
	}
	serviceOnce.Do(func() {
		service = svc
	})
}

// GET /api/v1/bookings
func HandleBookingsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Booking service not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	views, err := svc.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list bookings")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	if views == nil {
		views = []booking.View{}
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, views)
}

// POST /api/v1/bookings
func HandleBookingCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Booking service not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req booking.Request
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	view, err := svc.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create booking")
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusCreated, view)
}

// PUT /api/v1/bookings/{id}
func HandleBookingUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Booking service not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id, err := bookingID(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req booking.Request
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	view, err := svc.Update(ctx, id, &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update booking")
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, view)
}

// DELETE /api/v1/bookings/{id}
func HandleBookingCancel(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Booking service not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id, err := bookingID(r)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	if err := svc.Cancel(ctx, id); err != nil {
		logger.Error().Err(err).Int64("booking_id", id).Msg("Failed to cancel booking")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps domain failures to HTTP statuses: invalid time
// ranges and unknown rooms are client-correctable (400), a missing booking
// is 404, a resource conflict is 409, everything else is 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var timeErr *booking.TimeRangeError
	var availErr *booking.AvailabilityError
	var fieldErrs booking.FieldErrors

	switch {
	case errors.As(err, &timeErr):
		apiutil.WriteError(w, http.StatusBadRequest, timeErr.Reason)
	case errors.As(err, &fieldErrs):
		apiutil.WriteError(w, http.StatusBadRequest, fieldErrs.Error())
	case errors.Is(err, booking.ErrRoomNotFound):
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		apiutil.WriteError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &availErr):
		apiutil.WriteError(w, http.StatusConflict, availErr.Error())
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg(fallback)
		apiutil.WriteError(w, http.StatusInternalServerError, fallback)
	}
}

func bookingID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func loadService() *booking.Service {
	return service
}
