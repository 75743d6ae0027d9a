// Package rayid assigns a unique request ID (RayID) to every incoming
// request for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the RayID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the fiber locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that generates a RayID per request, storing it in
// the context locals and echoing it in the response headers. An incoming
// X-Ray-Id header is honored so upstream proxies can carry their own IDs
// through.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
