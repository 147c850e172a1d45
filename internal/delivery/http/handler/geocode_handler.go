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

// GeocodeHandler serves address lookups backed by the mapping provider.
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Autocomplete godoc
// @Summary Address autocomplete
// @Description Returns address predictions biased to the service area, in provider ranking order.
// @Tags Address
// @Produce json
// @Param query query string true "Address text"
// @Success 200 {object} schema.AutocompleteResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/address [get]
func (h *GeocodeHandler) Autocomplete(c *fiber.Ctx) error {
	req := dto.AddressRequest{Query: c.Query("query")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.Input("`query` parameter is required"))
	}

	result, err := h.geocodeUC.Autocomplete(c.Context(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// Details godoc
// @Summary Place geometry
// @Description Resolves an opaque place id (from a previous autocomplete) into its geometry.
// @Tags Address
// @Produce json
// @Param id query string true "Place identifier"
// @Success 200 {object} schema.GeometryResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/address/details [get]
func (h *GeocodeHandler) Details(c *fiber.Ctx) error {
	req := dto.DetailsRequest{PlaceID: c.Query("id")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.Input("`id` parameter is required"))
	}

	result, err := h.geocodeUC.Details(c.Context(), req.PlaceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
