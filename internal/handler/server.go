// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, participant.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/service"
	"github.com/planner-app/backend/internal/validation"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// ParticipantServicer defines the business operations the participant handlers depend on.
type ParticipantServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

// ActivityServicer defines the business operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error)
}

// LinkServicer defines the business operations the link handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

// Server implements the HTTP surface of the API.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer

	valid      *validation.Validator
	webBaseURL string
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// webBaseURL is the frontend base (no trailing slash) that the confirmation
// endpoints redirect to.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer, links LinkServicer, webBaseURL string, log *slog.Logger) *Server {
	return &Server{
		trips:        trips,
		participants: participants,
		activities:   activities,
		links:        links,
		valid:        validation.New(),
		webBaseURL:   webBaseURL,
		log:          log,
	}
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Get("/confirm", s.ConfirmTrip)
			r.Get("/activities", s.GetActivities)
			r.Post("/activities", s.CreateActivity)
			r.Get("/links", s.GetLinks)
			r.Post("/links", s.CreateLink)
			r.Get("/participants", s.GetParticipants)
			r.Post("/invites", s.CreateInvite)
		})
	})

	r.Route("/participants/{participantId}", func(r chi.Router) {
		r.Get("/", s.GetParticipant)
		r.Get("/confirm", s.ConfirmParticipant)
	})

	return r
}
