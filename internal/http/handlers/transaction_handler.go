package handlers

import (
	"littlekicks/internal/log"
	"littlekicks/internal/services"
	"littlekicks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	Txns *services.TransactionService
}

type createTxnReq struct {
	ShoeID     string   `json:"shoeId"`
	OfferPrice *float64 `json:"offerPrice"`
	BuyerName  string   `json:"buyerName"`
	BuyerEmail string   `json:"buyerEmail"`
}

// POST /api/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req createTxnReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	shoeID, ok := validate.ID(req.ShoeID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "shoeId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shoeId"})
	}
	if req.OfferPrice != nil && !validate.Price(*req.OfferPrice) {
		log.Security(c, "validation.fail", map[string]any{"field": "offerPrice"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid offerPrice"})
	}
	if req.BuyerEmail != "" {
		if _, ok := validate.Email(req.BuyerEmail); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "buyerEmail"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid buyerEmail"})
		}
	}

	t, err := h.Txns.Create(authCtx(c), services.NewTransaction{
		ShoeID:     shoeID,
		OfferPrice: req.OfferPrice,
		GuestName:  req.BuyerName,
		GuestEmail: req.BuyerEmail,
	})
	if err != nil {
		return jsonError(c, "transaction.create.fail", err)
	}

	log.Audit(c, "transaction.create", map[string]any{"transaction_id": t.ID, "shoe_id": t.ShoeID, "status": t.Status})
	return c.Status(fiber.StatusCreated).JSON(t)
}

// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
	}
	t, err := h.Txns.Get(id)
	if err != nil {
		return jsonError(c, "transaction.get.fail", err)
	}
	return c.JSON(t)
}

type updateTxnReq struct {
	Action         string `json:"action"`
	TrackingNumber string `json:"trackingNumber"`
	ShippingMethod string `json:"shippingMethod"`
}

// PATCH /api/transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
	}

	var req updateTxnReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	t, err := h.Txns.Apply(authCtx(c), id, services.ActionInput{
		Action:         req.Action,
		TrackingNumber: req.TrackingNumber,
		ShippingMethod: req.ShippingMethod,
	})
	if err != nil {
		return jsonError(c, "transaction.update.fail", err)
	}

	log.Audit(c, "transaction.update", map[string]any{"transaction_id": t.ID, "action": req.Action, "status": t.Status})
	return c.JSON(t)
}
