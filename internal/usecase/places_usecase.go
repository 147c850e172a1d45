package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// PlacesUseCase serves stop lookups against the transit provider.
type PlacesUseCase struct {
	places repository.PlacesRepository
	logger *zap.Logger
}

func NewPlacesUseCase(places repository.PlacesRepository, logger *zap.Logger) *PlacesUseCase {
	return &PlacesUseCase{
		places: places,
		logger: logger,
	}
}

// Autocomplete returns stop candidates for query, provider ordering intact.
func (uc *PlacesUseCase) Autocomplete(ctx context.Context, query string) (*schema.PlacesResult, error) {
	result, err := uc.places.StopAutocomplete(ctx, query)
	if err != nil {
		uc.logger.Error("Stop autocomplete failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("Stop autocomplete completed",
		zap.String("query", query),
		zap.Int("places", len(result.Places)))

	return result, nil
}

// Arrivals returns the transport snapshot for one stop area.
func (uc *PlacesUseCase) Arrivals(ctx context.Context, stopAreaID string) (*schema.TransportSnapshot, error) {
	result, err := uc.places.Arrivals(ctx, stopAreaID)
	if err != nil {
		uc.logger.Error("Arrivals lookup failed",
			zap.String("stop_area", stopAreaID),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}
