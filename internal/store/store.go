// Package store holds the SQL queries for the booking schema. The Queries
// struct binds to either a *sql.DB or a *sql.Tx, so callers can run any
// query inside or outside a transaction.
package store

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the subset of *sql.DB and *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Booking is a persisted booking row with its equipment links.
type Booking struct {
	ID           int64
	StartTime    time.Time
	EndTime      time.Time
	FirstName    string
	LastName     string
	RoomID       int64
	EquipmentIDs []int64
}

type MeetingRoom struct {
	ID   int64
	Name string
}

type Equipment struct {
	ID   int64
	Name string
}

type InsertBookingParams struct {
	StartTime    time.Time
	EndTime      time.Time
	FirstName    string
	LastName     string
	RoomID       int64
	EquipmentIDs []int64
}

type UpdateBookingParams struct {
	ID           int64
	StartTime    time.Time
	EndTime      time.Time
	FirstName    string
	LastName     string
	RoomID       int64
	EquipmentIDs []int64
}
