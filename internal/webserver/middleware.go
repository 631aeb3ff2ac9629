package webserver

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// RequireAssertion only lets a request through when it carries a valid
// signed assertion produced by a successful code verification.
func RequireAssertion(secret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    secret,
		SigningMethod: "HS256",
		ContextKey:    "assertion",
		TokenLookup:   "header:Authorization",
		AuthScheme:    "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_assertion"})
		},
	})
}

// RequireAPIKey guards the staff endpoints. With no key configured the
// endpoints do not exist as far as callers can tell.
func RequireAPIKey(key string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return fiber.ErrNotFound
		}
		presented := c.Get("X-Api-Key")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
