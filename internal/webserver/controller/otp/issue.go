package otp

import (
	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

type issueRequest struct {
	ContactUUID string `json:"contact_uuid" form:"contact_uuid"`
}

// Issue re-validates the token and mails a fresh code to the address bound
// to the declared identity. The code never appears in the response.
func (ctl *Controller) Issue(c *fiber.Ctx) error {
	token, err := ctl.tokens.Validate(c.Params("secret"))
	if err != nil {
		return err
	}

	var request issueRequest
	if err := c.BodyParser(&request); err != nil && err != fiber.ErrUnprocessableEntity {
		return fiber.ErrBadRequest
	}

	contactUUID := request.ContactUUID
	if contactUUID == "" {
		contactUUID = token.ContactUUID
	}
	if contactUUID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "contact_uuid is required")
	}

	email, err := ctl.contactEmail(token, contactUUID)
	if err != nil {
		return err
	}

	if err := ctl.verifier.Issue(token, contactUUID, email); err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sent"})
}

// contactEmail finds where the code should go: a forwarded token carries its
// recipient's address, otherwise the contact must be on the guest list.
func (ctl *Controller) contactEmail(token *model.Token, contactUUID string) (string, error) {
	if token.RecipientEmail != "" && contactUUID == token.ContactUUID {
		return token.RecipientEmail, nil
	}

	list, err := ctl.subjects.FindByUUID(token.SubjectUUID)
	if err != nil {
		return "", fiber.ErrInternalServerError
	}
	if list != nil {
		for _, guest := range list.Guests {
			if guest.ContactUUID == contactUUID && guest.Email != "" {
				return guest.Email, nil
			}
		}
	}

	return "", fiber.NewError(fiber.StatusBadRequest, "no email address known for this contact")
}
