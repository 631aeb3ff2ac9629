package invitation

import (
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

type createRequest struct {
	ContactUUID string `json:"contact_uuid" form:"contact_uuid"`
	TTLHours    int    `json:"ttl_hours" form:"ttl_hours"`
}

// Create mints a root share token for a guest list. The response is the only
// place the plaintext secret ever appears.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	list, err := ctl.subjects.FindByUUID(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if list == nil {
		return fiber.ErrNotFound
	}

	var request createRequest
	if err := c.BodyParser(&request); err != nil && err != fiber.ErrUnprocessableEntity {
		return fiber.ErrBadRequest
	}

	issued, err := ctl.issuer.Create(
		list.UUID,
		model.KindShare,
		request.ContactUUID,
		time.Duration(request.TTLHours)*time.Hour,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token_uuid": issued.Token.UUID,
		"secret":     issued.Secret,
		"share_url":  issued.ShareURL,
		"expires_at": issued.Token.ExpiresAt.Format(time.RFC3339),
	})
}
