package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/repo"
)

// LinkService implements business logic for Link operations.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService backed by the provided repos.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create persists a new link on the trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *LinkService) Create(ctx context.Context, tripID uuid.UUID, title, url string) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	link, err := s.links.Create(ctx, domain.Link{TripID: tripID, Title: title, URL: url})
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return link, nil
}

// ListByTripID returns all links of a trip in insertion order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LinkService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	links, err := s.links.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LinkService.ListByTripID: %w", err)
	}
	if links == nil {
		return []domain.Link{}, nil
	}
	return links, nil
}
