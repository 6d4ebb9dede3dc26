package domain

import "github.com/google/uuid"

// Participant is a person on a trip: either the owner (creator) or an invitee.
// TripID and IsOwner are internal bookkeeping and are never serialized in
// participant listings — handlers expose only id, name, email, is_confirmed.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"-"`
	IsConfirmed bool      `json:"is_confirmed"`
}
