package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAuth parses the session cookie and stores the claims in the
// request context. Missing or unreadable sessions get a 401.
func RequireAuth(codec Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}

		claims, err := codec.Verify(token)
		if err != nil || claims.UIN == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}

		c.Locals("session", claims)
		c.Locals("uin", claims.UIN)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireRole rejects sessions whose role does not match. Must run after
// RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") != role {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Next()
	}
}

// SessionFromContext returns the claims stored by RequireAuth.
func SessionFromContext(c *fiber.Ctx) Claims {
	if claims, ok := c.Locals("session").(Claims); ok {
		return claims
	}
	return Claims{}
}
