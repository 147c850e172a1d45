package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// GeocodeUseCase serves address lookups against the mapping provider.
type GeocodeUseCase struct {
	geocode repository.GeocodeRepository
	logger  *zap.Logger
}

func NewGeocodeUseCase(geocode repository.GeocodeRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocode: geocode,
		logger:  logger,
	}
}

// Autocomplete returns address predictions for input.
func (uc *GeocodeUseCase) Autocomplete(ctx context.Context, input string) (*schema.AutocompleteResult, error) {
	result, err := uc.geocode.PlaceAutocomplete(ctx, input)
	if err != nil {
		uc.logger.Error("Address autocomplete failed",
			zap.String("input", input),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}

// Details resolves a place id into its geometry.
func (uc *GeocodeUseCase) Details(ctx context.Context, placeID string) (*schema.GeometryResult, error) {
	result, err := uc.geocode.PlaceDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Place details failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}
