package handlers

import (
	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// POST /product and POST /product/:id
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	seller := currentSeller(c)
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "product.create", "invalid request payload")
	}
	if id := c.Params("id"); id != "" {
		in.ID = id
	}
	p, err := h.Catalog.Create(c.UserContext(), seller, in)
	if err != nil {
		return fail(c, "product.create", err, map[string]any{"seller_id": seller.ID})
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID, "seller_id": seller.ID, "variant": p.TowelVariant})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /product/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	seller := currentSeller(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "product.update", "invalid product id")
	}
	var patch services.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "product.update", "invalid request payload")
	}
	p, err := h.Catalog.Update(c.UserContext(), seller, id, patch)
	if err != nil {
		return fail(c, "product.update", err, map[string]any{"product_id": id, "seller_id": seller.ID})
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": p.ID, "seller_id": seller.ID})
	return c.JSON(p)
}

// GET /product/:id?battle_id=
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "product.get", "battle_id is required")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "product.get", "invalid product id")
	}
	p, err := h.Catalog.Get(c.UserContext(), battleID, id)
	if err != nil {
		return fail(c, "product.get", err, nil)
	}
	return c.JSON(p)
}

type rankingRequest struct {
	BattleID string `json:"battle_id"`
	Ranking  int    `json:"ranking"`
}

// PATCH /product/:id/ranking
func (h *ProductHandler) SetRanking(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "product.ranking", "invalid product id")
	}
	var req rankingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "product.ranking", "invalid request payload")
	}
	if req.BattleID == "" {
		req.BattleID = c.Query("battle_id")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "product.ranking", "battle_id is required")
	}
	if err := h.Catalog.SetRanking(c.UserContext(), battleID, id, req.Ranking); err != nil {
		return fail(c, "product.ranking", err, map[string]any{"product_id": id})
	}
	applog.Audit(c, "product.ranking", map[string]any{"product_id": id, "ranking": req.Ranking})
	p, err := h.Catalog.Get(c.UserContext(), battleID, id)
	if err != nil {
		return fail(c, "product.ranking", err, nil)
	}
	return c.JSON(p)
}

type batchRankingRequest struct {
	BattleID string                 `json:"battle_id"`
	Rankings []domain.RankingUpdate `json:"rankings"`
}

// PATCH /product/batch/rankings
func (h *ProductHandler) SetRankings(c *fiber.Ctx) error {
	var req batchRankingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "product.rankings", "invalid request payload")
	}
	if req.BattleID == "" {
		req.BattleID = c.Query("battle_id")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "product.rankings", "battle_id is required")
	}
	if err := h.Catalog.SetRankings(c.UserContext(), battleID, req.Rankings); err != nil {
		return fail(c, "product.rankings", err, nil)
	}
	applog.Audit(c, "product.rankings", map[string]any{"count": len(req.Rankings)})
	return c.JSON(fiber.Map{"updated_count": len(req.Rankings)})
}
