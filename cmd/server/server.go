// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"roomclerk/internal/api"
	"roomclerk/internal/api/bookings"
	"roomclerk/internal/api/rooms"
	"roomclerk/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Booking routes
	mux.HandleFunc("GET /api/v1/bookings", bookings.HandleBookingsList)
	mux.HandleFunc("POST /api/v1/bookings", bookings.HandleBookingCreate)
	mux.HandleFunc("PUT /api/v1/bookings/{id}", bookings.HandleBookingUpdate)
	mux.HandleFunc("DELETE /api/v1/bookings/{id}", bookings.HandleBookingCancel)

	// Catalog routes
	mux.HandleFunc("GET /api/v1/rooms", rooms.HandleRoomsList)
	mux.HandleFunc("GET /api/v1/equipment", rooms.HandleEquipmentList)
}
