// Package auth holds the shared-secret authorization check gating the
// catalog mutation API.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderAdminKey is the header carrying the admin capability token.
const HeaderAdminKey = "X-ADMIN-KEY"

// AdminKeyGuard rejects any request whose X-ADMIN-KEY header does not
// exactly match the configured secret. The comparison is constant-time so
// the secret cannot be probed byte by byte. A missing or empty secret
// locks the guarded routes entirely rather than leaving them open.
func AdminKeyGuard(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(HeaderAdminKey)
		if secret == "" || provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "unauthorized: valid X-ADMIN-KEY header required",
			})
		}
		return c.Next()
	}
}
