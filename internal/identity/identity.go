package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNoIdentity = errors.New("no authenticated identity in request context")

// Identity is the decoded token subject attached to a request after the
// token guard has run.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// FromContext extracts the Identity from the verified JWT that the token
// guard stored in Fiber locals.
func FromContext(c *fiber.Ctx) (*Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoIdentity
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrNoIdentity
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Identity{ID: id, Email: email, Role: role}, nil
}
