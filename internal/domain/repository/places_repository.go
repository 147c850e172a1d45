package repository

import (
	"context"

	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// PlacesRepository is the transit data provider: stop autocomplete and the
// arrivals/disruptions snapshot for a stop area.
type PlacesRepository interface {
	// StopAutocomplete forwards query to the provider's places endpoint and
	// returns the validated result, provider ordering preserved.
	StopAutocomplete(ctx context.Context, query string) (*schema.PlacesResult, error)

	// Arrivals returns the validated transport snapshot for one stop area.
	Arrivals(ctx context.Context, stopAreaID string) (*schema.TransportSnapshot, error)
}
