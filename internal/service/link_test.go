package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/service"
)

func TestLinkService_Create(t *testing.T) {
	trip := tripOnDays(10, 12)
	var created domain.Link
	links := &mockLinkRepo{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			l.ID = uuid.New()
			created = l
			return l, nil
		},
	}
	svc := service.NewLinkService(tripRepoReturning(trip), links)

	got, err := svc.Create(context.Background(), trip.ID, "Airbnb", "https://airbnb.com/rooms/123")

	require.NoError(t, err)
	assert.Equal(t, trip.ID, created.TripID)
	assert.Equal(t, "Airbnb", got.Title)
	assert.Equal(t, "https://airbnb.com/rooms/123", got.URL)
}

func TestLinkService_Create_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	links := &mockLinkRepo{
		create: func(_ context.Context, l domain.Link) (domain.Link, error) {
			t.Fatal("no link should be created for a missing trip")
			return l, nil
		},
	}
	svc := service.NewLinkService(trips, links)

	_, err := svc.Create(context.Background(), uuid.New(), "Airbnb", "https://airbnb.com/rooms/123")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTripID(t *testing.T) {
	trip := tripOnDays(10, 12)
	list := []domain.Link{
		{ID: uuid.New(), Title: "Airbnb", URL: "https://airbnb.com/rooms/123"},
		{ID: uuid.New(), Title: "Flights", URL: "https://flights.example.com"},
	}
	links := &mockLinkRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Link, error) { return list, nil },
	}
	svc := service.NewLinkService(tripRepoReturning(trip), links)

	got, err := svc.ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestLinkService_ListByTripID_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewLinkService(trips, &mockLinkRepo{})

	_, err := svc.ListByTripID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLinkService_ListByTripID_EmptyIsNotNil(t *testing.T) {
	trip := tripOnDays(10, 12)
	links := &mockLinkRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Link, error) { return nil, nil },
	}
	svc := service.NewLinkService(tripRepoReturning(trip), links)

	got, err := svc.ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
