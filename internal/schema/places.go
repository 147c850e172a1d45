package schema

// Coord is a string-encoded latitude/longitude pair. Values are kept as
// strings end-to-end to preserve the provider's precision and formatting.
type Coord struct {
	Lat string `json:"lat" validate:"required"`
	Lon string `json:"lon" validate:"required"`
}

type Network struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type CommercialMode struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type PhysicalMode struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type AdministrativeRegion struct {
	ID      string  `json:"id" validate:"required"`
	Insee   string  `json:"insee" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Label   string  `json:"label" validate:"required"`
	Level   int     `json:"level"`
	Coord   Coord   `json:"coord"`
	ZipCode *string `json:"zip_code"`
}

type Code struct {
	Type  string `json:"type" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type Line struct {
	ID             string         `json:"id" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	Code           string         `json:"code"`
	CommercialMode CommercialMode `json:"commercial_mode"`
	PhysicalModes  []PhysicalMode `json:"physical_modes" validate:"required,dive"`
	Network        Network        `json:"network"`
	Color          string         `json:"color"`
	TextColor      string         `json:"text_color"`
}

// StopArea enriches a transit-aware place with its coordinates, covering
// administrative regions, available lines and external codes.
type StopArea struct {
	ID                    string                 `json:"id" validate:"required"`
	Coord                 Coord                  `json:"coord"`
	Label                 string                 `json:"label" validate:"required"`
	Name                  string                 `json:"name" validate:"required"`
	AdministrativeRegions []AdministrativeRegion `json:"administrative_regions" validate:"required,dive"`
	Timezone              string                 `json:"timezone" validate:"required"`
	CommercialModes       []CommercialMode       `json:"commercial_modes" validate:"required,dive"`
	PhysicalModes         []PhysicalMode         `json:"physical_modes" validate:"required,dive"`
	Comment               *string                `json:"comment"`
	Codes                 []Code                 `json:"codes" validate:"required,dive"`
	Lines                 []Line                 `json:"lines" validate:"required,dive"`
}

// Place is one autocomplete candidate. ID is required here: every result may
// be used for a subsequent details lookup.
type Place struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Quality      int       `json:"quality"`
	EmbeddedType string    `json:"embedded_type" validate:"required"`
	StopArea     *StopArea `json:"stop_area,omitempty"`
}

type Warning struct {
	ID      string `json:"id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type FeedPublisher struct {
	ID      string `json:"id" validate:"required"`
	License string `json:"license" validate:"required"`
	Name    string `json:"name" validate:"required"`
	URL     string `json:"url" validate:"required"`
}

type Context struct {
	CurrentDatetime string `json:"current_datetime" validate:"required"`
	Timezone        string `json:"timezone" validate:"required"`
}

type Link struct {
	Href      string `json:"href" validate:"required"`
	Templated bool   `json:"templated"`
	Rel       string `json:"rel" validate:"required"`
	Type      string `json:"type" validate:"required"`
}

// PlacesResult is the autocomplete response envelope. The places sequence
// keeps the provider's relevance ordering and is never re-sorted.
type PlacesResult struct {
	Places         []Place         `json:"places" validate:"required,dive"`
	Warnings       []Warning       `json:"warnings" validate:"required,dive"`
	FeedPublishers []FeedPublisher `json:"feed_publishers" validate:"required,dive"`
	Context        Context         `json:"context"`
	Links          []Link          `json:"links" validate:"required,dive"`
}

// ParsePlaces validates raw against the places shape.
func ParsePlaces(raw []byte) (*PlacesResult, error) {
	var result PlacesResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
