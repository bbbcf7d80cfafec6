package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/identity"
)

// RequireRoles gates a route on the token's role claim. With no roles listed
// any authenticated identity passes; otherwise the identity's role must
// match one of them.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}

		ident, err := identity.FromContext(c)
		if err != nil {
			// The token guard runs first, so a missing identity here is a
			// malformed request rather than an auth failure.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found in request",
			})
		}

		for _, role := range roles {
			if ident.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Insufficient role",
		})
	}
}
