package schema

import "encoding/json"

// The transport snapshot is the richest payload the transit provider returns:
// pagination, active disruptions and upcoming arrivals in one envelope. It is
// a validation target only and is never transformed before being returned.

type Pagination struct {
	TotalResult  int `json:"total_result"`
	StartPage    int `json:"start_page"`
	ItemsPerPage int `json:"items_per_page"`
	ItemsOnPage  int `json:"items_on_page"`
}

// TransportLink mirrors the provider's navigation links, every field of which
// may be absent depending on context.
type TransportLink struct {
	Type      string `json:"type,omitempty"`
	ID        string `json:"id,omitempty"`
	Templated bool   `json:"templated,omitempty"`
	Rel       string `json:"rel,omitempty"`
	Href      string `json:"href,omitempty"`
	Internal  bool   `json:"internal,omitempty"`
}

type ApplicationPeriod struct {
	Begin string `json:"begin" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type Severity struct {
	Name     string `json:"name" validate:"required"`
	Effect   string `json:"effect"`
	Color    string `json:"color"`
	Priority int    `json:"priority"`
}

type Channel struct {
	ContentType string   `json:"content_type"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
}

// DisruptionMessage is one rider-facing text, qualified by the channel it was
// written for.
type DisruptionMessage struct {
	Text    string  `json:"text" validate:"required"`
	Channel Channel `json:"channel"`
}

type TransportStopArea struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Codes    []Code          `json:"codes,omitempty"`
	Timezone string          `json:"timezone"`
	Label    string          `json:"label"`
	Coord    Coord           `json:"coord"`
	Links    []TransportLink `json:"links"`
}

type PTObject struct {
	ID           string             `json:"id" validate:"required"`
	Name         string             `json:"name" validate:"required"`
	Quality      int                `json:"quality"`
	StopArea     *TransportStopArea `json:"stop_area,omitempty"`
	EmbeddedType string             `json:"embedded_type" validate:"required"`
}

type ImpactedObject struct {
	PTObject PTObject `json:"pt_object"`
}

// Disruption is one active service disruption: what it affects, how severe it
// is, when it applies and what riders are told.
type Disruption struct {
	ID                 string              `json:"id" validate:"required"`
	DisruptionID       string              `json:"disruption_id" validate:"required"`
	ImpactID           string              `json:"impact_id" validate:"required"`
	ApplicationPeriods []ApplicationPeriod `json:"application_periods" validate:"required,dive"`
	Status             string              `json:"status" validate:"required"`
	UpdatedAt          string              `json:"updated_at"`
	Cause              string              `json:"cause"`
	Category           string              `json:"category"`
	Tags               []string            `json:"tags,omitempty"`
	Severity           Severity            `json:"severity"`
	Messages           []DisruptionMessage `json:"messages" validate:"required,dive"`
	ImpactedObjects    []ImpactedObject    `json:"impacted_objects" validate:"required,dive"`
	URI                string              `json:"uri"`
	DisruptionURI      string              `json:"disruption_uri"`
	Contributor        string              `json:"contributor"`
}

type Direction struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Quality      int               `json:"quality"`
	StopArea     TransportStopArea `json:"stop_area"`
	EmbeddedType string            `json:"embedded_type"`
}

type GeoJSON struct {
	Type        string            `json:"type"`
	Coordinates []json.RawMessage `json:"coordinates"`
}

type TransportNetwork struct {
	ID    string          `json:"id" validate:"required"`
	Name  string          `json:"name" validate:"required"`
	Links []TransportLink `json:"links"`
	Codes []Code          `json:"codes,omitempty"`
}

type TransportLine struct {
	ID             string           `json:"id" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Code           string           `json:"code"`
	Color          string           `json:"color"`
	TextColor      string           `json:"text_color"`
	Codes          []Code           `json:"codes"`
	PhysicalModes  []PhysicalMode   `json:"physical_modes"`
	CommercialMode CommercialMode   `json:"commercial_mode"`
	Network        TransportNetwork `json:"network"`
	OpeningTime    string           `json:"opening_time"`
	ClosingTime    string           `json:"closing_time"`
	GeoJSON        GeoJSON          `json:"geojson"`
	Links          []TransportLink  `json:"links"`
}

type Route struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	IsFrequence   string          `json:"is_frequence"`
	DirectionType string          `json:"direction_type"`
	PhysicalModes []PhysicalMode  `json:"physical_modes"`
	Codes         []Code          `json:"codes"`
	Direction     Direction       `json:"direction"`
	GeoJSON       GeoJSON         `json:"geojson"`
	Links         []TransportLink `json:"links"`
	Line          TransportLine   `json:"line"`
}

type FareZone struct {
	Name string `json:"name"`
}

type TransportAddress struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	HouseNumber           *int                   `json:"house_number,omitempty"`
	Coord                 Coord                  `json:"coord"`
	Label                 string                 `json:"label"`
	AdministrativeRegions []AdministrativeRegion `json:"administrative_regions,omitempty"`
}

type StopPoint struct {
	ID                    string                 `json:"id" validate:"required"`
	Name                  string                 `json:"name" validate:"required"`
	Codes                 []Code                 `json:"codes"`
	Label                 string                 `json:"label"`
	Coord                 Coord                  `json:"coord"`
	Links                 []TransportLink        `json:"links"`
	CommercialModes       []CommercialMode       `json:"commercial_modes"`
	PhysicalModes         []PhysicalMode         `json:"physical_modes"`
	AdministrativeRegions []AdministrativeRegion `json:"administrative_regions"`
	StopArea              TransportStopArea      `json:"stop_area"`
	Equipments            []string               `json:"equipments"`
	Address               TransportAddress       `json:"address"`
	FareZone              FareZone               `json:"fare_zone"`
}

type StopDateTime struct {
	DepartureDateTime     string            `json:"departure_date_time" validate:"required"`
	BaseDepartureDateTime string            `json:"base_departure_date_time"`
	ArrivalDateTime       string            `json:"arrival_date_time" validate:"required"`
	BaseArrivalDateTime   string            `json:"base_arrival_date_time"`
	AdditionalInformation []json.RawMessage `json:"additional_informations"`
	Links                 []json.RawMessage `json:"links"`
	DataFreshness         string            `json:"data_freshness"`
}

type DisplayInformations struct {
	CommercialMode string            `json:"commercial_mode"`
	Network        string            `json:"network"`
	Direction      string            `json:"direction"`
	Label          string            `json:"label"`
	Color          string            `json:"color"`
	Code           string            `json:"code"`
	Headsign       string            `json:"headsign"`
	Name           string            `json:"name"`
	Links          []json.RawMessage `json:"links"`
	TextColor      string            `json:"text_color"`
	TripShortName  string            `json:"trip_short_name"`
	Description    string            `json:"description"`
	PhysicalMode   string            `json:"physical_mode"`
	Equipments     []string          `json:"equipments"`
}

// Arrival is one upcoming arrival at a stop: the serving route, the stop
// point, timing and the display strings shown to riders.
type Arrival struct {
	Route               Route               `json:"route"`
	StopPoint           StopPoint           `json:"stop_point"`
	StopDateTime        StopDateTime        `json:"stop_date_time"`
	DisplayInformations DisplayInformations `json:"display_informations"`
	Links               []TransportLink     `json:"links"`
}

type TransportSnapshot struct {
	Pagination     Pagination        `json:"pagination"`
	FeedPublishers []FeedPublisher   `json:"feed_publishers" validate:"required,dive"`
	Disruptions    []Disruption      `json:"disruptions" validate:"required,dive"`
	Context        Context           `json:"context"`
	Arrivals       []Arrival         `json:"arrivals" validate:"required,dive"`
	Links          []TransportLink   `json:"links"`
	Notes          []json.RawMessage `json:"notes"`
	Exceptions     []json.RawMessage `json:"exceptions"`
}

// ParseTransport validates raw against the transport snapshot shape.
func ParseTransport(raw []byte) (*TransportSnapshot, error) {
	var result TransportSnapshot
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
