package handlers

import (
	"errors"

	"littlekicks/internal/apperr"
	"littlekicks/internal/domain"
	applog "littlekicks/internal/log"
	"littlekicks/internal/services"

	"github.com/gofiber/fiber/v2"
)

// authCtx builds the explicit caller identity from the session middleware.
func authCtx(c *fiber.Ctx) services.AuthContext {
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		return services.AuthContext{UserID: u.ID, Email: u.Email}
	}
	return services.AuthContext{}
}

// jsonError maps a service error onto the wire. Taxonomy errors keep their
// kind and status; anything else is logged server-side and hidden behind a
// generic 500.
func jsonError(c *fiber.Ctx, action string, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		applog.Security(c, action, map[string]any{"kind": string(e.Kind), "reason": e.Message})
		return c.Status(e.Status).JSON(fiber.Map{"error": e.Message, "kind": e.Kind})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong. Please try again.",
	})
}
