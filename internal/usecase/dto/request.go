package dto

// PlacesRequest - stop autocomplete query parameters.
type PlacesRequest struct {
	Query string `json:"query" validate:"required"`
}

// ArrivalsRequest - arrivals snapshot query parameters.
type ArrivalsRequest struct {
	Stop string `json:"stop" validate:"required"`
}

// AddressRequest - address autocomplete query parameters.
type AddressRequest struct {
	Query string `json:"query" validate:"required"`
}

// DetailsRequest - place geometry query parameters.
type DetailsRequest struct {
	PlaceID string `json:"id" validate:"required"`
}

// JourneyRequest - journey lookup parameters. Both ends must be "<lon>;<lat>"
// pairs; nothing is forwarded until they match.
type JourneyRequest struct {
	From string `json:"from" validate:"required,coordpair"`
	To   string `json:"to" validate:"required,coordpair"`
}
