package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
)

const placesFixture = `{
	"places": [
		{
			"id": "stop_area:IDFM:71135",
			"name": "Gare d'Austerlitz",
			"quality": 70,
			"embedded_type": "stop_area",
			"stop_area": {
				"id": "stop_area:IDFM:71135",
				"coord": {"lat": "48.842481", "lon": "2.364382"},
				"label": "Gare d'Austerlitz (Paris)",
				"name": "Gare d'Austerlitz",
				"administrative_regions": [
					{
						"id": "admin:fr:75056",
						"insee": "75056",
						"name": "Paris",
						"label": "Paris (75000-75116)",
						"level": 8,
						"coord": {"lat": "48.856614", "lon": "2.3522219"},
						"zip_code": "75000;75116"
					}
				],
				"timezone": "Europe/Paris",
				"commercial_modes": [{"id": "commercial_mode:Metro", "name": "Métro"}],
				"physical_modes": [{"id": "physical_mode:Metro", "name": "Métro"}],
				"comment": null,
				"codes": [{"type": "source", "value": "71135"}],
				"lines": [
					{
						"id": "line:IDFM:C01375",
						"name": "5",
						"code": "5",
						"commercial_mode": {"id": "commercial_mode:Metro", "name": "Métro"},
						"physical_modes": [{"id": "physical_mode:Metro", "name": "Métro"}],
						"network": {"id": "network:IDFM:Operator_100", "name": "RATP"},
						"color": "DE8B53",
						"text_color": "000000"
					}
				]
			}
		},
		{
			"id": "stop_area:IDFM:71264",
			"name": "Gare de Lyon",
			"quality": 60,
			"embedded_type": "stop_area"
		}
	],
	"warnings": [{"id": "beta_endpoint", "message": "this API is in beta"}],
	"feed_publishers": [
		{
			"id": "IDFM",
			"license": "ODbL",
			"name": "Île-de-France Mobilités",
			"url": "https://prim.iledefrance-mobilites.fr"
		}
	],
	"context": {"current_datetime": "20240115T101500", "timezone": "Europe/Paris"},
	"links": [
		{
			"href": "https://prim.iledefrance-mobilites.fr/marketplace/v2/navitia/places",
			"templated": false,
			"rel": "self",
			"type": "places"
		}
	]
}`

func TestParsePlaces(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		result, err := ParsePlaces([]byte(placesFixture))
		require.NoError(t, err)
		require.Len(t, result.Places, 2)

		assert.Equal(t, "stop_area:IDFM:71135", result.Places[0].ID)
		assert.Equal(t, "Gare d'Austerlitz", result.Places[0].Name)
		assert.Equal(t, 70, result.Places[0].Quality)
		assert.Equal(t, "stop_area", result.Places[0].EmbeddedType)

		require.NotNil(t, result.Places[0].StopArea)
		assert.Equal(t, "48.842481", result.Places[0].StopArea.Coord.Lat)
		assert.Equal(t, "2.364382", result.Places[0].StopArea.Coord.Lon)
		require.Len(t, result.Places[0].StopArea.Lines, 1)
		assert.Equal(t, "5", result.Places[0].StopArea.Lines[0].Code)

		// A result without a stop area is still a valid place.
		assert.Nil(t, result.Places[1].StopArea)
	})

	t.Run("provider ordering is preserved", func(t *testing.T) {
		result, err := ParsePlaces([]byte(placesFixture))
		require.NoError(t, err)

		assert.Equal(t, "Gare d'Austerlitz", result.Places[0].Name)
		assert.Equal(t, "Gare de Lyon", result.Places[1].Name)
	})

	t.Run("parse is idempotent over a round-trip", func(t *testing.T) {
		first, err := ParsePlaces([]byte(placesFixture))
		require.NoError(t, err)

		serialized, err := json.Marshal(first)
		require.NoError(t, err)

		second, err := ParsePlaces(serialized)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing places field", func(t *testing.T) {
		result, err := ParsePlaces([]byte(`{
			"warnings": [],
			"feed_publishers": [],
			"context": {"current_datetime": "20240115T101500", "timezone": "Europe/Paris"},
			"links": []
		}`))
		assert.Nil(t, result)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.KindValidation, appErr.Kind)
		require.NotEmpty(t, appErr.Fields)
		assert.Contains(t, appErr.Fields[0], "places")
	})

	t.Run("wrong type is not coerced", func(t *testing.T) {
		result, err := ParsePlaces([]byte(`{
			"places": "not a list",
			"warnings": [],
			"feed_publishers": [],
			"context": {"current_datetime": "20240115T101500", "timezone": "Europe/Paris"},
			"links": []
		}`))
		assert.Nil(t, result)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Fields[0], "places")
	})

	t.Run("element failing nested validation", func(t *testing.T) {
		result, err := ParsePlaces([]byte(`{
			"places": [{"name": "no id", "quality": 1, "embedded_type": "stop_area"}],
			"warnings": [],
			"feed_publishers": [],
			"context": {"current_datetime": "20240115T101500", "timezone": "Europe/Paris"},
			"links": []
		}`))
		assert.Nil(t, result)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Fields[0], "id")
	})

	t.Run("undeclared fields are ignored", func(t *testing.T) {
		result, err := ParsePlaces([]byte(`{
			"places": [],
			"warnings": [],
			"feed_publishers": [],
			"context": {"current_datetime": "20240115T101500", "timezone": "Europe/Paris"},
			"links": [],
			"disruptions": [{"whatever": true}],
			"equipments": []
		}`))
		require.NoError(t, err)
		assert.Empty(t, result.Places)
	})

	t.Run("not json at all", func(t *testing.T) {
		result, err := ParsePlaces([]byte(`<html>oops</html>`))
		assert.Nil(t, result)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
