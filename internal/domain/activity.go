package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a dated event attached to a trip. Activities are surfaced to
// clients grouped by the calendar day of OccursAt.
type Activity struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"-"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// DayActivities is one itinerary bucket: a calendar day within the trip span
// and the activities occurring on that day, in occurs_at order.
// Days with no activities carry an empty (non-nil) slice.
type DayActivities struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
