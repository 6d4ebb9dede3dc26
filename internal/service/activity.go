package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planner-app/backend/internal/dateutil"
	"github.com/planner-app/backend/internal/domain"
	"github.com/planner-app/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo as well because creating an activity requires the
// parent trip's date window.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create persists a new activity after checking that its calendar day lies
// within the trip's date window. Out-of-window activities are rejected with
// domain.ErrValidation rather than silently stored and never surfaced.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	offset := dateutil.DaysBetween(trip.StartsAt, occursAt)
	if offset < 0 || offset > dateutil.DaysBetween(trip.StartsAt, trip.EndsAt) {
		return domain.Activity{}, domain.Validationf("invalid activity date")
	}

	activity, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return activity, nil
}

// Itinerary returns the trip's activities grouped into one bucket per calendar
// day of the trip span.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayActivities, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}

	days, err := BuildItinerary(trip, activities)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	return days, nil
}

// BuildItinerary groups activities by calendar day across the trip span.
//
// It produces daysBetween(starts_at, ends_at)+1 buckets in ascending date
// order, one per calendar day from starts_at through ends_at inclusive. An
// activity lands in the bucket whose date equals its occurs_at calendar day;
// days without activities get an empty (non-nil) list. Activities whose day
// falls outside the span match no bucket and are dropped.
//
// The trip window validator guarantees starts_at <= ends_at at write time, so
// a reversed window here is a programming error, not a client fault.
func BuildItinerary(trip domain.Trip, activities []domain.Activity) ([]domain.DayActivities, error) {
	span := dateutil.DaysBetween(trip.StartsAt, trip.EndsAt)
	if span < 0 {
		return nil, fmt.Errorf("itinerary: trip %s ends before it starts", trip.ID)
	}

	days := make([]domain.DayActivities, 0, span+1)
	for i := 0; i <= span; i++ {
		date := dateutil.StartOfDay(trip.StartsAt).AddDate(0, 0, i)

		bucket := []domain.Activity{}
		for _, a := range activities {
			if dateutil.SameDay(a.OccursAt, date) {
				bucket = append(bucket, a)
			}
		}

		days = append(days, domain.DayActivities{Date: date, Activities: bucket})
	}
	return days, nil
}
