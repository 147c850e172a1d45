package handler

import (
	stderrors "errors"
	"fmt"

	v10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/utils"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/validator"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase/dto"
)

// JourneyHandler proxies route lookups to the journey backend.
type JourneyHandler struct {
	journeyUC *usecase.JourneyUseCase
	logger    *zap.Logger
}

func NewJourneyHandler(journeyUC *usecase.JourneyUseCase, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: journeyUC,
		logger:    logger,
	}
}

// Journey godoc
// @Summary Journey lookup
// @Description Validates the coordinate pairs, forwards them to the journey backend and returns its body verbatim.
// @Tags Journey
// @Produce json
// @Param from query string true "Origin as <longitude>;<latitude>"
// @Param to query string true "Destination as <longitude>;<latitude>"
// @Success 200 {object} schema.JourneysResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/journey [get]
func (h *JourneyHandler) Journey(c *fiber.Ctx) error {
	req := dto.JourneyRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	// Nothing goes out until both parameters are well-formed.
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, journeyInputError(err))
	}

	body, err := h.journeyUC.Raw(c.Context(), req.From, req.To)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRawJSON(c, body)
}

// journeyInputError names the violated constraint: absence first, then
// format.
func journeyInputError(err error) error {
	var fieldErrs v10.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return apperrors.Input("both 'from' and 'to' parameters are required")
			}
		}
		return apperrors.Input(
			fmt.Sprintf("'%s' must be in format 'longitude;latitude'", fieldErrs[0].Field()))
	}
	return apperrors.Input("invalid parameters")
}
