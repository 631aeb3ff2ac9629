package webserver

import (
	"errors"
	"log"

	"github.com/avelys/guestpass/internal/otp"
	"github.com/avelys/guestpass/internal/rsvp"
	"github.com/avelys/guestpass/internal/token"
	"github.com/gofiber/fiber/v2"
)

// New builds the Fiber application and sets up the required routes.
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "guestpass",
		ErrorHandler: errorHandler,
	})

	routes(app, controllers, cfg)

	return app
}

// invalidLinkBody is what every token validation failure answers with. Not
// found, expired and revoked are deliberately indistinguishable from
// outside.
const invalidLinkBody = "this link is no longer valid"

func errorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, token.ErrNotFound),
		errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrRevoked):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": invalidLinkBody})
	case errors.Is(err, token.ErrDepthExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "chain_depth_exceeded"})
	case errors.Is(err, token.ErrFanOutExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "chain_fan_out_exceeded"})
	case errors.Is(err, otp.ErrCooldown):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "code_recently_sent"})
	case errors.Is(err, otp.ErrNoActiveChallenge):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no_active_challenge"})
	case errors.Is(err, otp.ErrChallengeExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": "challenge_expired"})
	case errors.Is(err, otp.ErrInvalidCode):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_code"})
	case errors.Is(err, otp.ErrTooManyAttempts):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_attempts"})
	case errors.Is(err, otp.ErrBadAssertion),
		errors.Is(err, rsvp.ErrTokenMismatch),
		errors.Is(err, rsvp.ErrStaleAssertion):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_assertion"})
	case errors.Is(err, rsvp.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_status"})
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	log.Println(err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
