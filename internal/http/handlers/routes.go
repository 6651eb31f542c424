package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Routes mounts every marketplace endpoint on app.
func Routes(app *fiber.App, d *Deps) {
	admin := RequireAdmin(d.AdminKey)
	seller := RequireSeller(d.Auth)
	buyer := RequireBuyer(d.Auth)

	// Participants
	app.Post("/sellers", d.ParticipantHandler.CreateSeller)
	app.Post("/createSeller", d.ParticipantHandler.CreateSeller)
	app.Post("/buyers", d.ParticipantHandler.CreateBuyer)
	app.Post("/createBuyer", d.ParticipantHandler.CreateBuyer)

	// Image catalog
	app.Get("/images", d.ImageHandler.Grouped)
	app.Get("/images/product-numbers", d.ImageHandler.Categories)
	app.Get("/images/product-number/:n", d.ImageHandler.ByCategory)

	// Battle controls. The battle link and seller names are readable by
	// participants; everything else needs the admin key.
	app.Get("/admin/metadata", d.AdminHandler.GetBattleLink)
	app.Get("/admin/metadata/seller_names", d.AdminHandler.GetSellerNames)
	ag := app.Group("/admin", admin)
	ag.Post("/images", d.ImageHandler.Create)
	ag.Get("/phase", d.AdminHandler.GetPhase)
	ag.Post("/phase", d.AdminHandler.SetPhase)
	ag.Get("/day", d.AdminHandler.GetDay)
	ag.Post("/day", d.AdminHandler.SetDay)
	ag.Get("/round", d.AdminHandler.GetRound)
	ag.Post("/round", d.AdminHandler.SetRound)
	ag.Post("/metadata", d.AdminHandler.SetBattleLink)
	ag.Post("/metadata/seller_names", d.AdminHandler.SetSellerNames)
	ag.Get("/metadata/all", d.AdminHandler.ListMetadata)
	ag.Get("/metadata/:key", d.AdminHandler.GetRaw)
	ag.Post("/metadata/:key", d.AdminHandler.PutRaw)

	// Products; the batch route goes before /:id so "batch" is not taken as an id.
	app.Patch("/product/batch/rankings", admin, d.ProductHandler.SetRankings)
	app.Post("/product", seller, d.ProductHandler.Create)
	app.Post("/product/:id", seller, d.ProductHandler.Create)
	app.Patch("/product/:id/ranking", admin, d.ProductHandler.SetRanking)
	app.Patch("/product/:id", seller, d.ProductHandler.Update)
	app.Get("/product/:id", d.ProductHandler.Get)
	app.Get("/search", d.SearchHandler.Search)

	// Purchases and standings
	app.Post("/buy/:productId", buyer, d.PurchaseHandler.Buy)
	app.Get("/buy/stats/seller/:sellerId", d.PurchaseHandler.SellerStats)
	app.Get("/buy/stats/by-seller", d.PurchaseHandler.BySeller)
	app.Get("/buy/stats/leaderboard", d.PurchaseHandler.LeaderboardJSON)
	app.Get("/leaderboard/:battleId", d.LeaderboardHandler.Page)

	app.Post("/rankings/initialize", admin, d.RankingHandler.Initialize)
	app.Post("/rankings/update-by-sales", admin, d.RankingHandler.UpdateBySales)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
