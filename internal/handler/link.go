package handler

import "net/http"

// createLinkRequest is the body of POST /trips/{tripId}/links.
type createLinkRequest struct {
	Title string `json:"title" validate:"required,min=3"`
	URL   string `json:"url" validate:"required,url"`
}

// GetLinks handles GET /trips/{tripId}/links.
func (s *Server) GetLinks(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	links, err := s.links.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := s.pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	var req createLinkRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	link, err := s.links.Create(r.Context(), tripID, req.Title, req.URL)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"linkId": link.ID})
}
