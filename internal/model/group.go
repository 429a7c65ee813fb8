package model

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DestinationID   uuid.UUID `json:"destination_id"`
	DestinationName string    `json:"destination_name,omitempty"`
	CreatorID       uuid.UUID `json:"creator_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Budget          int       `json:"budget"`
	MaxMembers      int       `json:"max_members"`
	MemberCount     int       `json:"member_count"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateGroupRequest struct {
	Name          string    `json:"name" validate:"required,min=2,max=100"`
	DestinationID uuid.UUID `json:"destination_id" validate:"required"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
	Budget        int       `json:"budget" validate:"gte=0"`
	MaxMembers    int       `json:"max_members" validate:"gte=2"`
	Description   *string   `json:"description,omitempty"`
}

type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
