package schema

// Google Places payloads. Only the fields this gateway consumes are declared;
// the rest of the (large) provider response is ignored.

type AutocompletePrediction struct {
	Description string   `json:"description" validate:"required"`
	PlaceID     string   `json:"place_id" validate:"required"`
	Types       []string `json:"types,omitempty"`
}

// AutocompleteResult carries address predictions in provider ranking order.
type AutocompleteResult struct {
	Predictions []AutocompletePrediction `json:"predictions" validate:"required,dive"`
	Status      string                   `json:"status" validate:"required"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type PlaceDetails struct {
	Geometry Geometry `json:"geometry"`
}

// GeometryResult is the details response, requested with fields=geometry so
// the provider omits everything else.
type GeometryResult struct {
	Result PlaceDetails `json:"result"`
	Status string       `json:"status" validate:"required"`
}

// ParseAutocomplete validates raw against the autocomplete shape.
func ParseAutocomplete(raw []byte) (*AutocompleteResult, error) {
	var result AutocompleteResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseGeometry validates raw against the place details shape.
func ParseGeometry(raw []byte) (*GeometryResult, error) {
	var result GeometryResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
