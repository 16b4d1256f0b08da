// file: internals/helpers/locals.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrNoUserContext = errors.New("no authenticated user in context")

// GetUserIDFromLocals reads the user_id set by the JWT middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, ErrNoUserContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserContext
	}
	return id, nil
}

// GetEmployerIDFromLocals reads the viewer's employer id claim, if any.
// Viewers without an employer (candidates) legitimately have none.
func GetEmployerIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals("employer_id").(string)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func IsAdminFromLocals(c *fiber.Ctx) bool {
	v, _ := c.Locals("is_admin").(bool)
	return v
}
