// Package backend talks to the internal journey computation service.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/config"
	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the journey backend client. The base URL is not validated
// here; when it is wrong the first call surfaces a transport error.
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.JourneyRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Raw forwards from/to untouched and returns the backend body verbatim on
// 200. On an error status the backend's own message is extracted when the
// body carries one.
func (c *client) Raw(ctx context.Context, from, to string) ([]byte, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/journey?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach journey backend", zap.Error(err))
		return nil, apperrors.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Transport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Journey backend returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, apperrors.Upstream(resp.StatusCode, errorMessage(body))
	}

	if !json.Valid(body) {
		return nil, apperrors.Validation([]string{"(root): body is not valid JSON"})
	}

	return body, nil
}

// Planned encodes each coordinate pair as "<lon>;<lat>" and validates the
// response against the journeys schema.
func (c *client) Planned(ctx context.Context, fromLon, fromLat, toLon, toLat float64) (*schema.JourneysResult, error) {
	body, err := c.Raw(ctx, coordPair(fromLon, fromLat), coordPair(toLon, toLat))
	if err != nil {
		return nil, err
	}

	result, err := schema.ParseJourneys(body)
	if err != nil {
		c.logger.Error("Journeys response failed validation", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func coordPair(lon, lat float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + ";" + strconv.FormatFloat(lat, 'f', -1, 64)
}

// errorMessage pulls a human-readable message out of a backend error body,
// falling back to a generic one.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "backend server error"
}
