package handlers

import (
	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	Purchases   *services.PurchaseService
	Leaderboard *services.LeaderboardService
}

// POST /buy/:productId
func (h *PurchaseHandler) Buy(c *fiber.Ctx) error {
	buyer := currentBuyer(c)
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "purchase.create", "invalid product id")
	}
	p, err := h.Purchases.Purchase(c.UserContext(), buyer, productID)
	if err != nil {
		return fail(c, "purchase.create", err, map[string]any{"product_id": productID, "buyer_id": buyer.ID})
	}
	applog.Audit(c, "purchase.create", map[string]any{
		"purchase_id": p.ID,
		"product_id":  p.ProductID,
		"buyer_id":    buyer.ID,
		"price":       p.PriceOfPurchase,
		"round":       p.Round,
	})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GET /buy/stats/seller/:sellerId?battle_id=
func (h *PurchaseHandler) SellerStats(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "stats.seller", "battle_id is required")
	}
	sellerID, ok := validate.ID(c.Params("sellerId"))
	if !ok {
		return badRequest(c, "stats.seller", "invalid seller id")
	}
	stats, err := h.Purchases.SellerStats(c.UserContext(), battleID, sellerID)
	if err != nil {
		return fail(c, "stats.seller", err, map[string]any{"seller_id": sellerID})
	}
	return c.JSON(stats)
}

// GET /buy/stats/by-seller?battle_id=
func (h *PurchaseHandler) BySeller(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "stats.by_seller", "battle_id is required")
	}
	sales, err := h.Purchases.SalesBySeller(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "stats.by_seller", err, nil)
	}
	return c.JSON(fiber.Map{"battle_id": battleID, "sellers": sales})
}

// GET /buy/stats/leaderboard?battle_id=
func (h *PurchaseHandler) LeaderboardJSON(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "stats.leaderboard", "battle_id is required")
	}
	lb, err := h.Leaderboard.Leaderboard(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "stats.leaderboard", err, nil)
	}
	return c.JSON(lb)
}
