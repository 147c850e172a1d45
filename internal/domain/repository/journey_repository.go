package repository

import (
	"context"

	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// JourneyRepository is the internal backend computing routes between two
// coordinate pairs.
type JourneyRepository interface {
	// Raw forwards pre-validated "<lon>;<lat>" pairs and returns the backend's
	// JSON body verbatim.
	Raw(ctx context.Context, from, to string) ([]byte, error)

	// Planned encodes the coordinates itself and validates the response
	// against the journeys schema.
	Planned(ctx context.Context, fromLon, fromLat, toLon, toLat float64) (*schema.JourneysResult, error)
}
