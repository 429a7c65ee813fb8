package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TripStatusPlanned   = "planned"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

// Trip keeps the destination name and per-traveler price it was booked at,
// so history and receipts still render after a destination is removed.
type Trip struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	DestinationID   *uuid.UUID `json:"destination_id,omitempty"`
	DestinationName string     `json:"destination_name"`
	TravelDate      time.Time  `json:"travel_date"`
	Travelers       int        `json:"travelers"`
	UnitPrice       int        `json:"unit_price"`
	Status          string     `json:"status"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateTripRequest struct {
	DestinationID uuid.UUID `json:"destination_id" validate:"required"`
	TravelDate    time.Time `json:"travel_date" validate:"required"`
	Travelers     int       `json:"travelers" validate:"gte=1"`
	Notes         *string   `json:"notes,omitempty"`
}

type UpdateTripStatusRequest struct {
	Status string `json:"status" validate:"required,tripstatus"`
}

// CanTransitionTripStatus encodes the lifecycle: planned moves to completed
// or cancelled, both of which are terminal.
func CanTransitionTripStatus(from, to string) bool {
	if from != TripStatusPlanned {
		return false
	}
	return to == TripStatusCompleted || to == TripStatusCancelled
}
