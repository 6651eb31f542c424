package handlers

import (
	applog "marketplace/internal/log"
	"marketplace/internal/services"

	"github.com/gofiber/fiber/v2"
)

type RankingHandler struct {
	Rankings *services.RankingService
}

// POST /rankings/initialize?battle_id=
func (h *RankingHandler) Initialize(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "rankings.initialize", "battle_id is required")
	}
	res, err := h.Rankings.InitializeRandom(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "rankings.initialize", err, nil)
	}
	applog.Audit(c, "rankings.initialize", map[string]any{"updated_count": res.UpdatedCount})
	return c.JSON(fiber.Map{
		"message":       "Rankings initialized randomly",
		"updated_count": res.UpdatedCount,
	})
}

// POST /rankings/update-by-sales?battle_id=
func (h *RankingHandler) UpdateBySales(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "rankings.update", "battle_id is required")
	}
	res, err := h.Rankings.UpdateBySales(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "rankings.update", err, nil)
	}
	applog.Audit(c, "rankings.update", map[string]any{"updated_count": res.UpdatedCount})
	top := res.Top
	if top == nil {
		top = []services.RankedProduct{}
	}
	return c.JSON(fiber.Map{
		"message":       "Rankings updated by sales",
		"updated_count": res.UpdatedCount,
		"top_products":  top,
	})
}
