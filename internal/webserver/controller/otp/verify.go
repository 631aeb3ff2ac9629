package otp

import (
	"github.com/gofiber/fiber/v2"
)

type verifyRequest struct {
	Code string `json:"code" form:"code"`
}

// Verify trades a correct code for a signed assertion. The assertion is what
// the RSVP submission demands; the code itself is spent here.
func (ctl *Controller) Verify(c *fiber.Ctx) error {
	token, err := ctl.tokens.Validate(c.Params("secret"))
	if err != nil {
		return err
	}

	var request verifyRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}
	if request.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code is required")
	}

	assertion, err := ctl.verifier.Verify(token, request.Code)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"assertion": assertion})
}
