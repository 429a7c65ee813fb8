package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedDestination is a (user, destination) bookmark pair, unique per pair.
type SavedDestination struct {
	UserID        uuid.UUID `json:"user_id"`
	DestinationID uuid.UUID `json:"destination_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type SaveDestinationRequest struct {
	DestinationID uuid.UUID `json:"destination_id" validate:"required"`
}
