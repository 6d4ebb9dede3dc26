package handler

import "net/http"

// createInviteRequest is the body of POST /trips/{tripId}/invites.
type createInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GetParticipants handles GET /trips/{tripId}/participants.
// The participant projection never includes trip_id or is_owner.
func (s *Server) GetParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	participants, err := s.participants.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"participants": participants})
}

// GetParticipant handles GET /participants/{participantId}.
func (s *Server) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := s.pathUUID(w, r, "participantId")
	if !ok {
		return
	}

	participant, err := s.participants.GetByID(r.Context(), participantID)
	if err != nil {
		s.serviceError(w, r, err, "participant not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"participant": participant})
}

// CreateInvite handles POST /trips/{tripId}/invites.
// Adds an unconfirmed participant and mails them their confirmation link.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	var req createInviteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	participant, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"participantId": participant.ID})
}

// ConfirmParticipant handles GET /participants/{participantId}/confirm.
// Confirms the participant (idempotently) and redirects to the trip page on
// the frontend, mirroring the trip confirmation flow.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := s.pathUUID(w, r, "participantId")
	if !ok {
		return
	}

	participant, err := s.participants.Confirm(r.Context(), participantID)
	if err != nil {
		s.serviceError(w, r, err, "participant not found")
		return
	}

	http.Redirect(w, r, s.webBaseURL+"/trips/"+participant.TripID.String(), http.StatusFound)
}
