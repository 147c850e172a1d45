package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/utils"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/validator"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase/dto"
)

// PlacesHandler serves transit stop lookups.
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// Autocomplete godoc
// @Summary Stop autocomplete
// @Description Forwards the query to the transit provider's places endpoint and returns the validated result. Result ordering follows the provider's relevance ranking.
// @Tags Places
// @Produce json
// @Param query query string true "Search text ('q' is accepted as an alias)"
// @Success 200 {object} schema.PlacesResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/places [get]
func (h *PlacesHandler) Autocomplete(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}

	req := dto.PlacesRequest{Query: query}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.Input("`query` parameter is required"))
	}

	result, err := h.placesUC.Autocomplete(c.Context(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// Arrivals godoc
// @Summary Arrivals snapshot for a stop area
// @Description Returns the validated next-arrivals snapshot (pagination, disruptions, arrivals) for one stop area.
// @Tags Places
// @Produce json
// @Param stop query string true "Stop area identifier"
// @Success 200 {object} schema.TransportSnapshot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/arrivals [get]
func (h *PlacesHandler) Arrivals(c *fiber.Ctx) error {
	req := dto.ArrivalsRequest{Stop: c.Query("stop")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.Input("`stop` parameter is required"))
	}

	result, err := h.placesUC.Arrivals(c.Context(), req.Stop)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
