package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/delivery/http/handler"
	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/utils"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase"
)

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) StopAutocomplete(ctx context.Context, query string) (*schema.PlacesResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.PlacesResult), args.Error(1)
}

func (m *MockPlacesRepository) Arrivals(ctx context.Context, stopAreaID string) (*schema.TransportSnapshot, error) {
	args := m.Called(ctx, stopAreaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.TransportSnapshot), args.Error(1)
}

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) PlaceAutocomplete(ctx context.Context, input string) (*schema.AutocompleteResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.AutocompleteResult), args.Error(1)
}

func (m *MockGeocodeRepository) PlaceDetails(ctx context.Context, placeID string) (*schema.GeometryResult, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.GeometryResult), args.Error(1)
}

// MockJourneyRepository is a mock of JourneyRepository
type MockJourneyRepository struct {
	mock.Mock
}

func (m *MockJourneyRepository) Raw(ctx context.Context, from, to string) ([]byte, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockJourneyRepository) Planned(ctx context.Context, fromLon, fromLat, toLon, toLat float64) (*schema.JourneysResult, error) {
	args := m.Called(ctx, fromLon, fromLat, toLon, toLat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.JourneysResult), args.Error(1)
}

type testEnv struct {
	app      *fiber.App
	places   *MockPlacesRepository
	geocode  *MockGeocodeRepository
	journeys *MockJourneyRepository
}

// newTestEnv wires real usecases and handlers over mocked providers, with the
// same routes the server registers.
func newTestEnv() *testEnv {
	logger := zap.NewNop()

	places := &MockPlacesRepository{}
	geocode := &MockGeocodeRepository{}
	journeys := &MockJourneyRepository{}

	placesHandler := handler.NewPlacesHandler(usecase.NewPlacesUseCase(places, logger), logger)
	geocodeHandler := handler.NewGeocodeHandler(usecase.NewGeocodeUseCase(geocode, logger), logger)
	journeyHandler := handler.NewJourneyHandler(usecase.NewJourneyUseCase(journeys, logger), logger)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/places", placesHandler.Autocomplete)
	api.Get("/arrivals", placesHandler.Arrivals)
	api.Get("/address", geocodeHandler.Autocomplete)
	api.Get("/address/details", geocodeHandler.Details)
	api.Get("/journey", journeyHandler.Journey)

	return &testEnv{
		app:      app,
		places:   places,
		geocode:  geocode,
		journeys: journeys,
	}
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, body
}

func decodeError(t *testing.T, body []byte) utils.ErrorResponse {
	t.Helper()

	var envelope utils.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func samplePlaces() *schema.PlacesResult {
	return &schema.PlacesResult{
		Places: []schema.Place{
			{
				ID:           "stop_area:IDFM:71135",
				Name:         "Gare d'Austerlitz (Paris)",
				Quality:      80,
				EmbeddedType: "stop_area",
			},
			{
				ID:           "stop_area:IDFM:71139",
				Name:         "Austerlitz Quai (Paris)",
				Quality:      60,
				EmbeddedType: "stop_area",
			},
		},
		Warnings:       []schema.Warning{},
		FeedPublishers: []schema.FeedPublisher{},
		Links:          []schema.Link{},
		Context: schema.Context{
			CurrentDatetime: "20260831T120000",
			Timezone:        "Europe/Paris",
		},
	}
}

func TestPlacesHandler_Autocomplete(t *testing.T) {
	t.Run("missing query is rejected before any provider call", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/places")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		envelope := decodeError(t, body)
		assert.Equal(t, "error", envelope.Status)
		assert.Equal(t, "`query` parameter is required", envelope.Message)

		env.places.AssertNotCalled(t, "StopAutocomplete", mock.Anything, mock.Anything)
	})

	t.Run("successful lookup returns the entity unwrapped", func(t *testing.T) {
		env := newTestEnv()
		env.places.On("StopAutocomplete", mock.Anything, "Austerlitz").Return(samplePlaces(), nil)

		resp, body := doRequest(t, env.app, "/api/places?query=Austerlitz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result schema.PlacesResult
		require.NoError(t, json.Unmarshal(body, &result))
		require.Len(t, result.Places, 2)
		assert.Equal(t, "stop_area:IDFM:71135", result.Places[0].ID)
		assert.Equal(t, "Gare d'Austerlitz (Paris)", result.Places[0].Name)

		env.places.AssertExpectations(t)
	})

	t.Run("q is accepted as an alias for query", func(t *testing.T) {
		env := newTestEnv()
		env.places.On("StopAutocomplete", mock.Anything, "Austerlitz").Return(samplePlaces(), nil)

		resp, _ := doRequest(t, env.app, "/api/places?q=Austerlitz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env.places.AssertExpectations(t)
	})

	t.Run("provider rate limit status reaches the caller", func(t *testing.T) {
		env := newTestEnv()
		env.places.On("StopAutocomplete", mock.Anything, "Austerlitz").
			Return(nil, apperrors.Upstream(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests)))

		resp, body := doRequest(t, env.app, "/api/places?query=Austerlitz")
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		envelope := decodeError(t, body)
		assert.Equal(t, "error", envelope.Status)
		assert.Contains(t, envelope.Message, "Too Many Requests")
	})

	t.Run("provider contract drift surfaces as a 500", func(t *testing.T) {
		env := newTestEnv()
		env.places.On("StopAutocomplete", mock.Anything, "Austerlitz").
			Return(nil, apperrors.Validation([]string{"places: required"}))

		resp, body := doRequest(t, env.app, "/api/places?query=Austerlitz")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		envelope := decodeError(t, body)
		assert.Equal(t, "error", envelope.Status)
	})
}

func TestPlacesHandler_Arrivals(t *testing.T) {
	t.Run("missing stop is rejected", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/arrivals")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "`stop` parameter is required", decodeError(t, body).Message)

		env.places.AssertNotCalled(t, "Arrivals", mock.Anything, mock.Anything)
	})

	t.Run("snapshot is returned as-is", func(t *testing.T) {
		env := newTestEnv()
		snapshot := &schema.TransportSnapshot{
			FeedPublishers: []schema.FeedPublisher{},
			Disruptions:    []schema.Disruption{},
			Arrivals:       []schema.Arrival{},
		}
		env.places.On("Arrivals", mock.Anything, "stop_area:IDFM:71135").Return(snapshot, nil)

		resp, _ := doRequest(t, env.app, "/api/arrivals?stop=stop_area%3AIDFM%3A71135")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env.places.AssertExpectations(t)
	})
}

func TestGeocodeHandler(t *testing.T) {
	t.Run("autocomplete requires query", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/address")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "`query` parameter is required", decodeError(t, body).Message)

		env.geocode.AssertNotCalled(t, "PlaceAutocomplete", mock.Anything, mock.Anything)
	})

	t.Run("autocomplete forwards the input untouched", func(t *testing.T) {
		env := newTestEnv()
		result := &schema.AutocompleteResult{
			Predictions: []schema.AutocompletePrediction{
				{Description: "5 Rue Crozatier, Paris, France", PlaceID: "place_id_1"},
			},
			Status: "OK",
		}
		env.geocode.On("PlaceAutocomplete", mock.Anything, "5 rue croz").Return(result, nil)

		resp, body := doRequest(t, env.app, "/api/address?query=5+rue+croz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded schema.AutocompleteResult
		require.NoError(t, json.Unmarshal(body, &decoded))
		require.Len(t, decoded.Predictions, 1)
		assert.Equal(t, "place_id_1", decoded.Predictions[0].PlaceID)

		env.geocode.AssertExpectations(t)
	})

	t.Run("details requires id", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/address/details")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "`id` parameter is required", decodeError(t, body).Message)

		env.geocode.AssertNotCalled(t, "PlaceDetails", mock.Anything, mock.Anything)
	})

	t.Run("details returns geometry", func(t *testing.T) {
		env := newTestEnv()
		result := &schema.GeometryResult{
			Result: schema.PlaceDetails{
				Geometry: schema.Geometry{
					Location: schema.LatLng{Lat: 48.8566, Lng: 2.3522},
				},
			},
			Status: "OK",
		}
		env.geocode.On("PlaceDetails", mock.Anything, "place_id_1").Return(result, nil)

		resp, body := doRequest(t, env.app, "/api/address/details?id=place_id_1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded schema.GeometryResult
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, 48.8566, decoded.Result.Geometry.Location.Lat)
	})
}

func TestJourneyHandler_Journey(t *testing.T) {
	t.Run("missing parameters never reach the backend", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/journey?from=2.3522%3B48.8566")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "both 'from' and 'to' parameters are required", decodeError(t, body).Message)

		env.journeys.AssertNotCalled(t, "Raw", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed pair names the offending parameter", func(t *testing.T) {
		env := newTestEnv()

		resp, body := doRequest(t, env.app, "/api/journey?from=not-a-pair&to=2.2945%3B48.8584")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "'from' must be in format 'longitude;latitude'", decodeError(t, body).Message)

		env.journeys.AssertNotCalled(t, "Raw", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("latitude-only value is still malformed", func(t *testing.T) {
		env := newTestEnv()

		resp, _ := doRequest(t, env.app, "/api/journey?from=2.3522%3B48.8566&to=48.8584")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env.journeys.AssertNotCalled(t, "Raw", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("backend body is forwarded verbatim", func(t *testing.T) {
		env := newTestEnv()
		backendBody := []byte(`{"journeys":[{"duration":1260,"sections":[]}],"context":{"timezone":"Europe/Paris"}}`)
		env.journeys.On("Raw", mock.Anything, "2.3522;48.8566", "2.2945;48.8584").Return(backendBody, nil)

		resp, body := doRequest(t, env.app, "/api/journey?from=2.3522%3B48.8566&to=2.2945%3B48.8584")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, string(backendBody), string(body))

		env.journeys.AssertExpectations(t)
	})

	t.Run("backend failure keeps its status and message", func(t *testing.T) {
		env := newTestEnv()
		env.journeys.On("Raw", mock.Anything, "2.3522;48.8566", "2.2945;48.8584").
			Return(nil, apperrors.Upstream(http.StatusUnprocessableEntity, "no journey found between these points"))

		resp, body := doRequest(t, env.app, "/api/journey?from=2.3522%3B48.8566&to=2.2945%3B48.8584")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		envelope := decodeError(t, body)
		assert.Equal(t, "error", envelope.Status)
		assert.Contains(t, envelope.Message, "no journey found between these points")
	})
}
