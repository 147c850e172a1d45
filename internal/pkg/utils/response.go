package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
)

// ErrorResponse is the envelope every failing endpoint returns. The "status"
// field is the discriminator the browser client branches on.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SendJSON returns data as the response body, untouched.
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendRawJSON returns a pre-serialized JSON body verbatim.
func SendRawJSON(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// SendError maps the error taxonomy onto an HTTP status plus the JSON error
// envelope. Errors outside the taxonomy become a plain 500.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Status:  "error",
			Message: appErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Status:  "error",
		Message: "an unexpected error occurred",
	})
}
