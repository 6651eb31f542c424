package handlers

import (
	"marketplace/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler renders the public standings page of a battle.
type LeaderboardHandler struct {
	Leaderboard *services.LeaderboardService
}

// GET /leaderboard/:battleId
func (h *LeaderboardHandler) Page(c *fiber.Ctx) error {
	battleID, ok := battleValue(c, c.Params("battleId"))
	if !ok {
		c.Status(fiber.StatusBadRequest)
		return render(c, "leaderboard", fiber.Map{"Err": "Unknown battle"})
	}
	lb, err := h.Leaderboard.Leaderboard(c.UserContext(), battleID)
	if err != nil {
		status, msg := MapErrorToHTTP(err)
		if status >= 500 {
			return err // app error handler logs it
		}
		c.Status(status)
		return render(c, "leaderboard", fiber.Map{"Err": msg})
	}
	return render(c, "leaderboard", fiber.Map{"Board": lb})
}
