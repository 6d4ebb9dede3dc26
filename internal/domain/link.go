package domain

import "github.com/google/uuid"

// Link is a titled URL resource attached to a trip (booking confirmations,
// house rental pages, and the like).
type Link struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"-"`
	Title  string    `json:"title"`
	URL    string    `json:"url"`
}
