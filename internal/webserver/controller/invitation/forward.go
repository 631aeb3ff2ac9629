package invitation

import (
	"net/mail"
	"time"

	"github.com/avelys/guestpass/internal/token"
	"github.com/gofiber/fiber/v2"
)

type forwardRequest struct {
	ForwarderName        string `json:"forwarder_name" form:"forwarder_name"`
	ForwarderEmail       string `json:"forwarder_email" form:"forwarder_email"`
	RecipientName        string `json:"recipient_name" form:"recipient_name"`
	RecipientEmail       string `json:"recipient_email" form:"recipient_email"`
	RecipientContactUUID string `json:"recipient_contact_uuid" form:"recipient_contact_uuid"`
}

// Forward turns a valid share token into a child token for a new recipient
// and mails them the link. The forward stands whether or not the email makes
// it out.
func (ctl *Controller) Forward(c *fiber.Ctx) error {
	var request forwardRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if request.ForwarderName == "" || request.RecipientName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "forwarder and recipient names are required")
	}
	if _, err := mail.ParseAddress(request.RecipientEmail); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect recipient email address")
	}
	if _, err := mail.ParseAddress(request.ForwarderEmail); request.ForwarderEmail != "" && err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect forwarder email address")
	}

	issued, err := ctl.chain.Forward(
		c.Params("secret"),
		token.Party{
			Name:  request.ForwarderName,
			Email: request.ForwarderEmail,
		},
		token.Party{
			Name:        request.RecipientName,
			Email:       request.RecipientEmail,
			ContactUUID: request.RecipientContactUUID,
		},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"share_url":  issued.ShareURL,
		"depth":      issued.Token.Depth,
		"expires_at": issued.Token.ExpiresAt.Format(time.RFC3339),
	})
}
