package rsvp

import (
	"time"

	"github.com/avelys/guestpass/internal/otp"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type submitRequest struct {
	Status string `json:"status" form:"status"`
}

// Submit upserts the caller's RSVP. Resubmitting is allowed and simply
// overwrites the previous answer.
func (ctl *Controller) Submit(c *fiber.Ctx) error {
	token, err := ctl.tokens.Validate(c.Params("secret"))
	if err != nil {
		return err
	}

	assertion, err := assertionData(c)
	if err != nil {
		return err
	}

	var request submitRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	response, err := ctl.responses.Submit(assertion, token, request.Status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"contact_uuid": response.ContactUUID,
		"status":       response.Status,
		"verified_at":  response.VerifiedAt.Format(time.RFC3339),
		"responded_at": response.RespondedAt.Format(time.RFC3339),
	})
}

// assertionData rebuilds the verified assertion the jwt middleware stashed
// in the request context.
func assertionData(c *fiber.Ctx) (otp.Assertion, error) {
	parsed, ok := c.Locals("assertion").(*jwt.Token)
	if !ok {
		return otp.Assertion{}, fiber.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return otp.Assertion{}, fiber.ErrUnauthorized
	}

	assertion, err := otp.FromClaims(claims)
	if err != nil {
		return otp.Assertion{}, fiber.ErrUnauthorized
	}
	return assertion, nil
}
