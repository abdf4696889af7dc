package handlers

import (
	"littlekicks/internal/domain"
	"littlekicks/internal/log"
	"littlekicks/internal/services"
	"littlekicks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShoeHandler struct {
	Listings *services.ListingService
}

type createShoeReq struct {
	Type        string  `json:"type"`
	Brand       string  `json:"brand"`
	Year        int     `json:"year"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Images      string  `json:"images"`
}

// POST /api/shoes
func (h *ShoeHandler) Create(c *fiber.Ctx) error {
	var req createShoeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	bad := func(field string) error {
		log.Security(c, "validation.fail", map[string]any{"field": field})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + field})
	}

	typ, ok := validate.ShoeType(req.Type)
	if !ok {
		return bad("type")
	}
	brand, ok := validate.Name(req.Brand)
	if !ok {
		return bad("brand")
	}
	if !validate.Year(req.Year) {
		return bad("year")
	}
	color, ok := validate.Name(req.Color)
	if !ok {
		return bad("color")
	}
	size, ok := validate.Size(req.Size)
	if !ok {
		return bad("size")
	}
	cond, ok := validate.Condition(req.Condition)
	if !ok {
		return bad("condition")
	}
	desc, ok := validate.Description(req.Description)
	if !ok {
		return bad("description")
	}
	if !validate.Price(req.Price) {
		return bad("price")
	}

	shoe, err := h.Listings.Create(authCtx(c), services.NewListing{
		Type:        typ,
		Brand:       brand,
		Year:        req.Year,
		Color:       color,
		Size:        size,
		Condition:   cond,
		Description: desc,
		Price:       req.Price,
		Images:      req.Images,
	})
	if err != nil {
		return jsonError(c, "shoe.create.fail", err)
	}

	log.Audit(c, "shoe.create", map[string]any{"shoe_id": shoe.ID})
	return c.Status(fiber.StatusCreated).JSON(shoe)
}

// GET /api/shoes?type=&status=
func (h *ShoeHandler) List(c *fiber.Ctx) error {
	shoeType := ""
	if t, ok := validate.ShoeType(c.Query("type")); ok {
		shoeType = t
	}
	status := c.Query("status")
	if status != domain.ShoePendingSale && status != domain.ShoeSold {
		status = domain.ShoeAvailable
	}

	shoes, err := h.Listings.List(shoeType, status)
	if err != nil {
		return jsonError(c, "shoe.list.fail", err)
	}
	return c.JSON(shoes)
}

// GET /api/shoes/:id
func (h *ShoeHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shoe not found"})
	}
	shoe, err := h.Listings.Get(id)
	if err != nil {
		return jsonError(c, "shoe.get.fail", err)
	}
	return c.JSON(shoe)
}
