package handlers

import (
	"crypto/subtle"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	localSeller   = "seller"
	localBuyer    = "buyer"
	localBattleID = "battle_id"
)

// RequireSeller resolves the bearer token to a seller of its battle.
func RequireSeller(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		seller, err := svc.SellerFromToken(c.UserContext(), auth.Bearer(c.Get(fiber.HeaderAuthorization)))
		if err != nil {
			return fail(c, "auth.seller", err, nil)
		}
		c.Locals(localSeller, seller)
		c.Locals(localBattleID, seller.BattleID)
		return c.Next()
	}
}

// RequireBuyer resolves the bearer token to a buyer of its battle.
func RequireBuyer(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		buyer, err := svc.BuyerFromToken(c.UserContext(), auth.Bearer(c.Get(fiber.HeaderAuthorization)))
		if err != nil {
			return fail(c, "auth.buyer", err, nil)
		}
		c.Locals(localBuyer, buyer)
		c.Locals(localBattleID, buyer.BattleID)
		return c.Next()
	}
}

// RequireAdmin checks X-Admin-Key. An empty key leaves admin routes open.
func RequireAdmin(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		got := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.Status(fiber.StatusUnauthorized)
			applog.Security(c, "access.denied.admin", map[string]any{"key_present": got != ""})
			return c.JSON(fiber.Map{"error": "Invalid or missing admin key"})
		}
		return c.Next()
	}
}

func currentSeller(c *fiber.Ctx) domain.Seller {
	s, _ := c.Locals(localSeller).(domain.Seller)
	return s
}

func currentBuyer(c *fiber.Ctx) domain.Buyer {
	b, _ := c.Locals(localBuyer).(domain.Buyer)
	return b
}
