// Package ratp talks to the PRIM marketplace API (Île-de-France Mobilités),
// which fronts the navitia transit dataset for the Paris region.
package ratp

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/config"
	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	baseURLV2  string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates the PRIM client. The API key is the one required
// credential: when it is absent construction fails and no request can ever be
// attempted.
func NewClient(cfg *config.RatpConfig, logger *zap.Logger) (repository.PlacesRepository, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.Configuration("RATP_API_KEY")
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		baseURLV2: cfg.BaseURLV2,
		apiKey:    cfg.APIKey,
		logger:    logger,
	}, nil
}

// StopAutocomplete queries the navitia places endpoint. Geojson payloads are
// disabled to save bandwidth; the provider's relevance ordering is preserved.
func (c *client) StopAutocomplete(ctx context.Context, query string) (*schema.PlacesResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("display_geojson", "false")

	body, err := c.get(ctx, c.baseURLV2+"/navitia/places/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	result, err := schema.ParsePlaces(body)
	if err != nil {
		c.logger.Error("Places response failed validation", zap.Error(err))
		return nil, err
	}

	return result, nil
}

// Arrivals fetches the next arrivals snapshot for one stop area, disruptions
// included.
func (c *client) Arrivals(ctx context.Context, stopAreaID string) (*schema.TransportSnapshot, error) {
	endpoint := c.baseURL + "/navitia/stop_areas/" + url.PathEscape(stopAreaID) + "/arrivals"

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	result, err := schema.ParseTransport(body)
	if err != nil {
		c.logger.Error("Arrivals response failed validation", zap.Error(err))
		return nil, err
	}

	return result, nil
}

// get performs one authenticated call and maps failures onto the error
// taxonomy: network faults are transport errors, non-200 statuses are
// upstream errors with the status preserved.
func (c *client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.Transport(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	c.logger.Debug("Calling PRIM API", zap.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("PRIM API returned error",
			zap.Int("status_code", resp.StatusCode))
		return nil, apperrors.Upstream(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	return body, nil
}
