package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/mail"
	"github.com/planner-app/backend/internal/repo"
)

// Hand-written test doubles, one per interface. Each method is a function
// field — set only the ones your test needs. This is idiomatic Go: no mock
// generation library required for simple cases.

type mockTripRepo struct {
	createWithParticipants func(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error)
	getByID                func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update                 func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm                func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error) {
	return m.createWithParticipants(ctx, trip, participants)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Confirm(ctx context.Context, id uuid.UUID) error {
	return m.confirm(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) error {
	return m.confirm(ctx, id)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockLinkRepo struct {
	create       func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.LinkRepo = (*mockLinkRepo)(nil)

// mockMailer records every sent message. Safe for concurrent sends.
// Set fail to make every Send return that error.
type mockMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	fail error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMailer) messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

var _ mail.Mailer = (*mockMailer)(nil)
