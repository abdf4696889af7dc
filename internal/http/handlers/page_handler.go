package handlers

import (
	applog "littlekicks/internal/log"
	"littlekicks/internal/services"
	"littlekicks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the thin HTML surface; the JSON API is the primary one.
type PageHandler struct {
	Listings *services.ListingService
}

// GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	shoeType := ""
	if t, ok := validate.ShoeType(c.Query("type")); ok {
		shoeType = t
	}
	shoes, err := h.Listings.List(shoeType, "")
	if err != nil {
		applog.Error(c, "page.home.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load listings"})
	}
	return render(c, "home", fiber.Map{"Shoes": shoes, "Type": shoeType})
}

// GET /shoe/:id
func (h *PageHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This shoe is no longer listed"})
	}
	shoe, err := h.Listings.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This shoe is no longer listed"})
	}
	return render(c, "shoe", fiber.Map{"S": shoe})
}
