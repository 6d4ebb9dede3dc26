package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/handler"
	"github.com/planner-app/backend/internal/service"
)

const testWebBaseURL = "http://localhost:5173"

// Test doubles for the Servicer interfaces. Set only the method fields your
// test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.confirm(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockParticipantServicer struct {
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	invite       func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

type mockActivityServicer struct {
	create    func(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	itinerary func(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	return m.create(ctx, tripID, title, occursAt)
}
func (m *mockActivityServicer) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	return m.itinerary(ctx, tripID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockLinkServicer struct {
	create       func(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

func (m *mockLinkServicer) Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error) {
	return m.create(ctx, tripID, title, url)
}
func (m *mockLinkServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.LinkServicer = (*mockLinkServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its router, the
// same way main.go wires it in production. Pass nil for services a test
// never reaches.
func newHTTPHandler(trips handler.TripServicer, participants handler.ParticipantServicer, activities handler.ActivityServicer, links handler.LinkServicer) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(trips, participants, activities, links, testWebBaseURL, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Lisbon",
		StartsAt:    time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC),
	}
}
