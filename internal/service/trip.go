// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// mailer calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/mail"
	"github.com/planner-app/backend/internal/repo"
)

// Options carries the cross-cutting settings services need to build
// confirmation links and outbound mail envelopes.
type Options struct {
	// APIBaseURL is this server's public base URL (no trailing slash);
	// confirmation links in emails point back at it.
	APIBaseURL string

	// WebBaseURL is the frontend base URL (no trailing slash) that the
	// confirmation endpoints redirect to.
	WebBaseURL string

	MailFromName string
	MailFromAddr string
}

// CreateTripInput is everything needed to create a trip with its participants.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService implements business logic for Trip operations.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	opts         Options
}

// NewTripService constructs a TripService backed by the provided collaborators.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, opts Options) *TripService {
	return &TripService{trips: trips, participants: participants, mailer: mailer, opts: opts}
}

// Create validates the trip window, persists the trip together with its owner
// and invited participants in one transaction, then mails the owner a
// confirmation link. A failed mail send fails the whole request.
//
// The owner participant is created confirmed; invitees start unconfirmed.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := ValidateTripWindow(in.StartsAt, in.EndsAt, time.Now()); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}

	participants := make([]domain.Participant, 0, len(in.EmailsToInvite)+1)
	participants = append(participants, domain.Participant{
		Name:        in.OwnerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range in.EmailsToInvite {
		participants = append(participants, domain.Participant{Email: email})
	}

	created, _, err := s.trips.CreateWithParticipants(ctx, trip, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	confirmLink := fmt.Sprintf("%s/trips/%s/confirm", s.opts.APIBaseURL, created.ID)
	subject, html, err := mail.TripCreated(created.Destination, created.StartsAt, created.EndsAt, confirmLink)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	msg := mail.Message{
		FromName: s.opts.MailFromName,
		FromAddr: s.opts.MailFromAddr,
		ToName:   in.OwnerName,
		ToAddr:   in.OwnerEmail,
		Subject:  subject,
		HTML:     html,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: send mail: %w", err)
	}

	return created, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update validates the new window and overwrites the trip's destination and dates.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.trips.GetByID(ctx, trip.ID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := ValidateTripWindow(trip.StartsAt, trip.EndsAt, time.Now()); err != nil {
		return domain.Trip{}, err
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm marks the trip confirmed and mails every invitee their confirmation
// link. Confirming an already-confirmed trip is a no-op that performs no write
// and sends no mail, so the endpoint stays idempotent.
//
// Invitation sends run concurrently; the first failure cancels the rest and
// fails the request.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if trip.IsConfirmed {
		return trip, nil
	}

	if err := s.trips.Confirm(ctx, id); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	trip.IsConfirmed = true

	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range participants {
		if p.IsOwner {
			continue
		}
		p := p
		g.Go(func() error {
			return s.sendInvitation(gctx, trip, p)
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Confirm: send mail: %w", err)
	}

	return trip, nil
}

// sendInvitation mails one participant their confirmation link for trip.
func (s *TripService) sendInvitation(ctx context.Context, trip domain.Trip, p domain.Participant) error {
	confirmLink := fmt.Sprintf("%s/participants/%s/confirm", s.opts.APIBaseURL, p.ID)
	subject, html, err := mail.Invitation(trip.Destination, trip.StartsAt, trip.EndsAt, confirmLink)
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, mail.Message{
		FromName: s.opts.MailFromName,
		FromAddr: s.opts.MailFromAddr,
		ToName:   p.Name,
		ToAddr:   p.Email,
		Subject:  subject,
		HTML:     html,
	})
}

// ValidateTripWindow enforces chronological sanity on a trip's date range:
// the start must not lie strictly before now, and the end must not lie
// strictly before the start. Comparison is at instant granularity — a trip
// starting exactly at now is accepted.
//
// Both violations are client faults and match domain.ErrValidation.
func ValidateTripWindow(startsAt, endsAt, now time.Time) error {
	if startsAt.Before(now) {
		return domain.Validationf("start date must not be in the past")
	}
	if endsAt.Before(startsAt) {
		return domain.Validationf("end date must not be before start date")
	}
	return nil
}
