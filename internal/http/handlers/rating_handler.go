package handlers

import (
	"littlekicks/internal/log"
	"littlekicks/internal/services"
	"littlekicks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	Ratings *services.RatingService
}

type createRatingReq struct {
	TransactionID string `json:"transactionId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// POST /api/ratings
func (h *RatingHandler) Create(c *fiber.Ctx) error {
	var req createRatingReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	txnID, ok := validate.ID(req.TransactionID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "transactionId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid transactionId"})
	}
	if !validate.RatingValue(req.Rating) {
		log.Security(c, "validation.fail", map[string]any{"field": "rating"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rating must be between 1 and 5"})
	}

	rt, err := h.Ratings.Submit(authCtx(c), services.NewRating{
		TransactionID: txnID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return jsonError(c, "rating.create.fail", err)
	}

	log.Audit(c, "rating.create", map[string]any{"transaction_id": txnID, "rating": req.Rating})
	return c.Status(fiber.StatusCreated).JSON(rt)
}
