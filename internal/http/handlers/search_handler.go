package handlers

import (
	"marketplace/internal/repos"
	"marketplace/internal/services"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// SearchHandler lists a battle's products in ranking order.
type SearchHandler struct {
	Catalog *services.CatalogService
}

// GET /search?battle_id=&q=&seller_id=&limit=
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "search", "battle_id is required")
	}
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return badRequest(c, "search", "query contains unsupported characters")
	}
	f := repos.SearchFilter{Query: q, Limit: validate.Limit(c.Query("limit"), 0)}
	if raw := c.Query("seller_id"); raw != "" {
		sellerID, ok := validate.ID(raw)
		if !ok {
			return badRequest(c, "search", "invalid seller_id")
		}
		f.SellerID = sellerID
	}
	products, err := h.Catalog.Search(c.UserContext(), battleID, f)
	if err != nil {
		return fail(c, "search", err, nil)
	}
	return c.JSON(products)
}
