package repository

import (
	"context"

	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// GeocodeRepository is the generic places/mapping provider used to resolve
// free-form addresses into coordinates.
type GeocodeRepository interface {
	// PlaceAutocomplete returns address predictions for input, biased to the
	// service area.
	PlaceAutocomplete(ctx context.Context, input string) (*schema.AutocompleteResult, error)

	// PlaceDetails resolves an opaque place id into its geometry. Only the
	// geometry field set is requested to minimize the payload.
	PlaceDetails(ctx context.Context, placeID string) (*schema.GeometryResult, error)
}
