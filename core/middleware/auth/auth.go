// Package auth protects the API surface with a shared API key.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-Api-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables authentication.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API
// key. When no key is configured the middleware is a pass-through.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		provided := c.Get(HeaderName)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
