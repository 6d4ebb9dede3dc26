package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/backend/internal/domain"
)

// ---- GET /trips/{tripId}/links ---------------------------------------------

func TestGetLinks_200(t *testing.T) {
	tripID := uuid.New()
	list := []domain.Link{
		{ID: uuid.New(), TripID: tripID, Title: "Airbnb", URL: "https://airbnb.com/rooms/123"},
	}
	svc := &mockLinkServicer{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Link, error) {
			assert.Equal(t, tripID, id)
			return list, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/links", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Links []domain.Link `json:"links"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Links, 1)
	assert.Equal(t, "Airbnb", resp.Links[0].Title)
}

func TestGetLinks_404_TripNotFound(t *testing.T) {
	svc := &mockLinkServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Link, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/links", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /trips/{tripId}/links --------------------------------------------

func TestCreateLink_201(t *testing.T) {
	tripID := uuid.New()
	fixture := domain.Link{ID: uuid.New(), TripID: tripID, Title: "Airbnb", URL: "https://airbnb.com/rooms/123"}
	svc := &mockLinkServicer{
		create: func(_ context.Context, id uuid.UUID, title, url string) (domain.Link, error) {
			assert.Equal(t, tripID, id)
			assert.Equal(t, "Airbnb", title)
			assert.Equal(t, "https://airbnb.com/rooms/123", url)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title": "Airbnb",
		"url":   "https://airbnb.com/rooms/123",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		LinkID uuid.UUID `json:"linkId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.LinkID)
}

func TestCreateLink_400_InvalidURL(t *testing.T) {
	svc := &mockLinkServicer{
		create: func(_ context.Context, _ uuid.UUID, _, _ string) (domain.Link, error) {
			t.Fatal("service must not be called on an invalid body")
			return domain.Link{}, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title": "Airbnb",
		"url":   "not a url",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Errors, "url")
}

func TestCreateLink_400_ShortTitle(t *testing.T) {
	svc := &mockLinkServicer{}

	body := jsonBody(t, map[string]any{
		"title": "ab",
		"url":   "https://airbnb.com/rooms/123",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/links", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
