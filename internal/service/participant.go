package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/mail"
	"github.com/planner-app/backend/internal/repo"
)

// ParticipantService implements business logic for Participant operations.
// It holds the trips repo as well because inviting someone requires verifying
// the parent trip exists.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	opts         Options
}

// NewParticipantService constructs a ParticipantService backed by the provided collaborators.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, opts Options) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, mailer: mailer, opts: opts}
}

// GetByID returns a single participant by ID.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return p, nil
}

// ListByTripID returns all participants of a trip, owner first.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// Invite adds an unconfirmed participant to the trip and mails them their
// confirmation link. A failed send fails the whole request.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	participant, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	confirmLink := fmt.Sprintf("%s/participants/%s/confirm", s.opts.APIBaseURL, participant.ID)
	subject, html, err := mail.Invitation(trip.Destination, trip.StartsAt, trip.EndsAt, confirmLink)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	msg := mail.Message{
		FromName: s.opts.MailFromName,
		FromAddr: s.opts.MailFromAddr,
		ToAddr:   participant.Email,
		Subject:  subject,
		HTML:     html,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: send mail: %w", err)
	}

	return participant, nil
}

// Confirm marks the participant confirmed. Confirming an already-confirmed
// participant is a no-op, so the endpoint stays idempotent.
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	if participant.IsConfirmed {
		return participant, nil
	}

	if err := s.participants.Confirm(ctx, id); err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	participant.IsConfirmed = true
	return participant, nil
}
