package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxExpectations caps the "what to expect" bullet list on a destination.
const MaxExpectations = 4

type Destination struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Location      string    `json:"location"`
	Description1  string    `json:"description1"`
	Description2  *string   `json:"description2,omitempty"`
	Price         int       `json:"price"`
	Rating        float64   `json:"rating"`
	Categories    []string  `json:"categories"`
	ImageURL      string    `json:"image_url"`
	ImagePublicID *string   `json:"-"`
	BestTime      *string   `json:"best_time,omitempty"`
	Expectations  []string  `json:"expectations,omitempty"`
	Views         int       `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateDestinationRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Location     string   `json:"location" validate:"required,min=2,max=100"`
	Description1 string   `json:"description1" validate:"required"`
	Description2 *string  `json:"description2,omitempty"`
	Price        int      `json:"price" validate:"gte=0"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Categories   []string `json:"categories" validate:"required,min=1,dive,travelcategory"`
	BestTime     *string  `json:"best_time,omitempty"`
	Expectations []string `json:"expectations,omitempty" validate:"max=4"`
}

type UpdateDestinationRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Location     string   `json:"location" validate:"required,min=2,max=100"`
	Description1 string   `json:"description1" validate:"required"`
	Description2 *string  `json:"description2,omitempty"`
	Price        int      `json:"price" validate:"gte=0"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Categories   []string `json:"categories" validate:"required,min=1,dive,travelcategory"`
	BestTime     *string  `json:"best_time,omitempty"`
	Expectations []string `json:"expectations,omitempty" validate:"max=4"`
}

// ListDestinationsParams narrows and orders the listing.
type ListDestinationsParams struct {
	Order      string
	Categories []string
}
