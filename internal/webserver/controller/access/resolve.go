package access

import (
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// Resolve re-validates the secret on every call and returns the guest list
// snapshot. Validity is never cached; a token revoked a moment ago must stop
// resolving now.
func (ctl *Controller) Resolve(c *fiber.Ctx) error {
	token, err := ctl.tokens.Validate(c.Params("secret"))
	if err != nil {
		return err
	}

	list, err := ctl.subjects.FindByUUID(token.SubjectUUID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if list == nil {
		return fiber.ErrInternalServerError
	}

	responses, err := ctl.responses.BySubject(token.SubjectUUID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	latest := map[string]model.Response{}
	for _, response := range responses {
		current, ok := latest[response.ContactUUID]
		if !ok || response.RespondedAt.After(current.RespondedAt) {
			latest[response.ContactUUID] = response
		}
	}

	guests := make([]fiber.Map, 0, len(list.Guests))
	for _, guest := range list.Guests {
		status := model.StatusPending
		if response, ok := latest[guest.ContactUUID]; ok {
			status = response.Status
		}
		guests = append(guests, fiber.Map{
			"contact_uuid": guest.ContactUUID,
			"name":         guest.Name,
			"rsvp_status":  status,
		})
	}

	return c.JSON(fiber.Map{
		"list": fiber.Map{
			"uuid":       list.UUID,
			"title":      list.Title,
			"host":       list.Host,
			"venue":      list.Venue,
			"event_date": list.EventDate.Format(time.RFC3339),
		},
		"guests": guests,
		"invitation": fiber.Map{
			"kind":           token.Kind,
			"depth":          token.Depth,
			"expires_at":     token.ExpiresAt.Format(time.RFC3339),
			"forwarder_name": token.ForwarderName,
			"recipient_name": token.RecipientName,
		},
	})
}
