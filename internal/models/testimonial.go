package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client quote. There is no approval workflow: every
// stored testimonial is shown on the public site.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Position  *string   `json:"position"`
	Company   *string   `json:"company"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
