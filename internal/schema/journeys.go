package schema

// SectionPlace is the from/to endpoint of a section. ID is optional for
// address-type endpoints that never feed a details lookup.
type SectionPlace struct {
	ID          *string `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Coordinates Coord   `json:"coordinates"`
}

// Section is one leg of a journey. Sections are temporally ordered within
// their journey; the first from is the journey origin, the last to its
// destination.
type Section struct {
	Duration          int          `json:"duration"`
	DepartureDateTime string       `json:"departure_date_time" validate:"required"`
	ArrivalDateTime   string       `json:"arrival_date_time" validate:"required"`
	From              SectionPlace `json:"from"`
	To                SectionPlace `json:"to"`
	Type              string       `json:"type" validate:"required"`
}

// Journey is a computed route between two coordinate pairs.
type Journey struct {
	Duration int       `json:"duration"`
	Sections []Section `json:"sections" validate:"required,dive"`
}

// JourneysResult wraps computed journeys in provider preference order
// (typically fastest first); the order is preserved as received.
type JourneysResult struct {
	Journeys []Journey `json:"journeys" validate:"required,dive"`
}

// ParseJourneys validates raw against the journeys shape.
func ParseJourneys(raw []byte) (*JourneysResult, error) {
	var result JourneysResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
