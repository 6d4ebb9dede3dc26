package handler

import (
	"net/http"
	"time"
)

// createActivityRequest is the body of POST /trips/{tripId}/activities.
type createActivityRequest struct {
	Title    string    `json:"title" validate:"required"`
	OccursAt time.Time `json:"occurs_at" validate:"required"`
}

// GetActivities handles GET /trips/{tripId}/activities.
// Returns one bucket per calendar day of the trip, each holding that day's
// activities; days without activities appear with an empty list.
func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	days, err := s.activities.Itinerary(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"activities": days})
}

// CreateActivity handles POST /trips/{tripId}/activities.
// The activity's date must fall within the trip's window.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	var req createActivityRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"activityId": activity.ID})
}
