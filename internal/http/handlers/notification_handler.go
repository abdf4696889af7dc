package handlers

import (
	"littlekicks/internal/services"
	"littlekicks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	Notifs *services.NotificationService
}

// GET /api/notifications (RequireUser)
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	auth := authCtx(c)
	out, err := h.Notifs.ListForUser(auth.UserID)
	if err != nil {
		return jsonError(c, "notification.list.fail", err)
	}
	return c.JSON(out)
}

// POST /api/notifications/:id/read (RequireUser)
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
	}
	if err := h.Notifs.MarkRead(authCtx(c), id); err != nil {
		return jsonError(c, "notification.read.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
