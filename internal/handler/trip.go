package handler

import (
	"net/http"
	"time"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/service"
)

// createTripRequest is the body of POST /trips.
// Timestamps are RFC 3339; emails_to_invite may be empty or absent.
type createTripRequest struct {
	Destination    string    `json:"destination" validate:"required,min=4"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required"`
	OwnerName      string    `json:"owner_name" validate:"required"`
	OwnerEmail     string    `json:"owner_email" validate:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" validate:"omitempty,dive,email"`
}

// updateTripRequest is the body of PUT /trips/{tripId}.
type updateTripRequest struct {
	Destination string    `json:"destination" validate:"required,min=4"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
}

// CreateTrip handles POST /trips.
// Creates the trip with its owner and invited participants, mails the owner
// a confirmation link, and returns the new trip's id.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"tripId": trip.ID})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"trip": trip})
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	var req updateTripRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.Update(r.Context(), domain.Trip{
		ID:          tripID,
		Destination: req.Destination,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"trip": trip})
}

// ConfirmTrip handles GET /trips/{tripId}/confirm.
// Confirms the trip (idempotently), mails invitees their confirmation links,
// and redirects to the trip page on the frontend. The link arrives by email,
// so this is a browser navigation, not an API call — hence the redirect.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, err := s.trips.Confirm(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+trip.ID.String(), http.StatusFound)
}
