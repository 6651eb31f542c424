package handlers

import (
	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ParticipantHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	BattleID string `json:"battle_id"`
	Name     string `json:"name"`
}

func (h *ParticipantHandler) parse(c *fiber.Ctx) (registerRequest, bool) {
	var req registerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return req, false
		}
	}
	if req.BattleID == "" {
		req.BattleID = c.Query("battle_id")
	}
	return req, true
}

// POST /sellers
func (h *ParticipantHandler) CreateSeller(c *fiber.Ctx) error {
	req, ok := h.parse(c)
	if !ok {
		return badRequest(c, "sellers.create", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "sellers.create", "battle_id is required")
	}
	seller, err := h.Auth.RegisterSeller(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "sellers.create", err, nil)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "sellers.create", map[string]any{"seller_id": seller.ID})
	return c.JSON(seller)
}

// POST /buyers
func (h *ParticipantHandler) CreateBuyer(c *fiber.Ctx) error {
	req, ok := h.parse(c)
	if !ok {
		return badRequest(c, "buyers.create", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "buyers.create", "battle_id is required")
	}
	if req.Name == "" {
		req.Name = c.Query("name")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "buyers.create", "name is required (max 64 characters)")
	}
	buyer, err := h.Auth.RegisterBuyer(c.UserContext(), battleID, name)
	if err != nil {
		return fail(c, "buyers.create", err, nil)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "buyers.create", map[string]any{"buyer_id": buyer.ID})
	return c.JSON(buyer)
}
