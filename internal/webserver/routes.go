package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers, cfg Config) {
	invites := app.Group("/invites")

	invites.Get("/:secret", controllers.Access.Resolve)
	invites.Post("/:secret/forward", controllers.Invitation.Forward)
	invites.Post("/:secret/otp", RateLimit(cfg.OtpRatePerMinute, cfg.OtpRateBurst), controllers.Otp.Issue)
	invites.Post("/:secret/otp/verify", controllers.Otp.Verify)
	invites.Post("/:secret/rsvp", RequireAssertion(cfg.Secret), controllers.Rsvp.Submit)

	app.Post("/lists/:uuid/invites", RequireAPIKey(cfg.APIKey), controllers.Invitation.Create)
	app.Post("/tokens/revoke", RequireAPIKey(cfg.APIKey), controllers.Invitation.Revoke)
}
