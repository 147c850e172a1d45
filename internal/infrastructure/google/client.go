// Package google talks to the Google Places web API for address autocomplete
// and place geometry lookups.
package google

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/config"
	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// Autocomplete is biased to the Paris service area.
const (
	biasLocation = "48.8566,2.3522"
	biasRadius   = "1000"
	biasCountry  = "country:fr"
	language     = "fr"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates the Google Places client, failing fast when the API key
// is absent.
func NewClient(cfg *config.GoogleConfig, logger *zap.Logger) (repository.GeocodeRepository, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.Configuration("GOOGLE_MAPS_API_KEY")
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}, nil
}

// PlaceAutocomplete returns address predictions for input.
func (c *client) PlaceAutocomplete(ctx context.Context, input string) (*schema.AutocompleteResult, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("location", biasLocation)
	params.Set("radius", biasRadius)
	params.Set("components", biasCountry)
	params.Set("language", language)
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/place/autocomplete/json?"+params.Encode())
	if err != nil {
		return nil, err
	}

	result, err := schema.ParseAutocomplete(body)
	if err != nil {
		c.logger.Error("Autocomplete response failed validation", zap.Error(err))
		return nil, err
	}

	if err := checkStatus(result.Status); err != nil {
		c.logger.Error("Google API returned non-OK status",
			zap.String("status", result.Status))
		return nil, err
	}

	return result, nil
}

// PlaceDetails resolves placeID into geometry only, to minimize the payload.
func (c *client) PlaceDetails(ctx context.Context, placeID string) (*schema.GeometryResult, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "geometry")
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/place/details/json?"+params.Encode())
	if err != nil {
		return nil, err
	}

	result, err := schema.ParseGeometry(body)
	if err != nil {
		c.logger.Error("Place details response failed validation", zap.Error(err))
		return nil, err
	}

	if err := checkStatus(result.Status); err != nil {
		c.logger.Error("Google API returned non-OK status",
			zap.String("status", result.Status))
		return nil, err
	}

	return result, nil
}

// checkStatus maps the provider's in-body status onto the error taxonomy.
// Google answers 200 even for denied or malformed requests.
func checkStatus(status string) error {
	if status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	return apperrors.Upstream(http.StatusBadGateway, fmt.Sprintf("google API returned status %s", status))
}

func (c *client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Google API returned error",
			zap.Int("status_code", resp.StatusCode))
		return nil, apperrors.Upstream(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	return body, nil
}
