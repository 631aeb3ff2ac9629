package invitation

import (
	"github.com/gofiber/fiber/v2"
)

type revokeRequest struct {
	TokenUUID string `json:"token_uuid" form:"token_uuid"`
}

// Revoke flags a token as revoked. Idempotent; forwarded children keep their
// own validity.
func (ctl *Controller) Revoke(c *fiber.Ctx) error {
	var request revokeRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}
	if request.TokenUUID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "token_uuid is required")
	}

	if err := ctl.issuer.Revoke(request.TokenUUID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"revoked": request.TokenUUID})
}
