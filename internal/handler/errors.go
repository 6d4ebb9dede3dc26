package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/validation"
)

// errorResponse is the body of every non-2xx response.
// Errors is populated only for input-shape failures.
type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// writeJSON serializes v with the given status. Encoding failures are
// swallowed: headers are already out and there is nothing useful left to do.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serviceError translates an error raised below the handler layer into a
// response, applying the process-wide taxonomy:
//
//   - domain.ErrNotFound       → 404 with the caller-supplied resource message
//   - domain.ErrValidation     → 400 with the rule's own message
//   - anything else            → 500 with an opaque message; detail is logged,
//     never surfaced
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Message: notFoundMsg})
	case errors.Is(err, domain.ErrValidation):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: clientMessage(err)})
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

// inputError reports a 400 with field-level detail for schema failures.
func (s *Server) inputError(w http.ResponseWriter, fields map[string]string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid input", Errors: fields})
}

// decodeBody decodes the JSON request body into v and validates it against
// its struct tags. On failure it writes the input-shape error response and
// returns false; handlers should just return.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.inputError(w, map[string]string{"body": "must be valid JSON"})
		return false
	}
	if err := s.valid.Validate(v); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			s.inputError(w, fields)
		} else {
			s.inputError(w, map[string]string{"body": "is invalid"})
		}
		return false
	}
	return true
}

// pathUUID parses the named chi URL parameter as a UUID.
// On failure it writes the input-shape error response and returns false.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		s.inputError(w, map[string]string{name: "must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// clientMessage extracts the caller-facing message from a validation error
// anywhere in err's chain. The message travels as ValidationError.Msg, so no
// error-string parsing is involved.
func clientMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Msg
	}
	return err.Error()
}
