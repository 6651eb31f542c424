package handlers

import (
	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the orchestrator's battle controls.
type AdminHandler struct {
	Phases   *services.PhaseService
	Clock    *services.ClockService
	Metadata *services.MetadataService
}

type phaseRequest struct {
	BattleID string `json:"battle_id"`
	Phase    string `json:"phase"`
}

type counterRequest struct {
	BattleID string `json:"battle_id"`
	Day      *int   `json:"day"`
	Round    *int   `json:"round"`
}

// GET /admin/phase?battle_id=
func (h *AdminHandler) GetPhase(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.phase", "battle_id is required")
	}
	p, err := h.Phases.Current(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.phase", err, nil)
	}
	return c.JSON(fiber.Map{"phase": p})
}

// POST /admin/phase
func (h *AdminHandler) SetPhase(c *fiber.Ctx) error {
	var req phaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "admin.phase.set", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.phase.set", "battle_id is required")
	}
	p, err := h.Phases.Set(c.UserContext(), battleID, domain.Phase(req.Phase))
	if err != nil {
		return fail(c, "admin.phase.set", err, nil)
	}
	applog.Audit(c, "admin.phase.set", map[string]any{"phase": p})
	return c.JSON(fiber.Map{"phase": p})
}

// GET /admin/day?battle_id=
func (h *AdminHandler) GetDay(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.day", "battle_id is required")
	}
	day, err := h.Clock.Day(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.day", err, nil)
	}
	return c.JSON(fiber.Map{"day": day})
}

// POST /admin/day
func (h *AdminHandler) SetDay(c *fiber.Ctx) error {
	var req counterRequest
	if err := c.BodyParser(&req); err != nil || req.Day == nil {
		return badRequest(c, "admin.day.set", "day is required")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.day.set", "battle_id is required")
	}
	day, err := h.Clock.SetDay(c.UserContext(), battleID, *req.Day)
	if err != nil {
		return fail(c, "admin.day.set", err, nil)
	}
	applog.Audit(c, "admin.day.set", map[string]any{"day": day})
	return c.JSON(fiber.Map{"day": day})
}

// GET /admin/round?battle_id=
func (h *AdminHandler) GetRound(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.round", "battle_id is required")
	}
	round, err := h.Clock.Round(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.round", err, nil)
	}
	return c.JSON(fiber.Map{"round": round})
}

// POST /admin/round
func (h *AdminHandler) SetRound(c *fiber.Ctx) error {
	var req counterRequest
	if err := c.BodyParser(&req); err != nil || req.Round == nil {
		return badRequest(c, "admin.round.set", "round is required")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.round.set", "battle_id is required")
	}
	round, err := h.Clock.SetRound(c.UserContext(), battleID, *req.Round)
	if err != nil {
		return fail(c, "admin.round.set", err, nil)
	}
	applog.Audit(c, "admin.round.set", map[string]any{"round": round})
	return c.JSON(fiber.Map{"round": round})
}

type battleLinkRequest struct {
	BattleID   string `json:"battle_id"`
	BackendURL string `json:"backend_url"`
}

// GET /admin/metadata?battle_id=
func (h *AdminHandler) GetBattleLink(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.metadata", "battle_id is required")
	}
	link, err := h.Metadata.BattleLink(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.metadata", err, nil)
	}
	var url any
	if link != "" {
		url = link
	}
	return c.JSON(fiber.Map{"battle_id": battleID, "backend_url": url})
}

// POST /admin/metadata
func (h *AdminHandler) SetBattleLink(c *fiber.Ctx) error {
	var req battleLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "admin.metadata.set", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.metadata.set", "battle_id and backend_url are required")
	}
	url, ok := validate.URL(req.BackendURL)
	if !ok {
		return badRequest(c, "admin.metadata.set", "battle_id and backend_url are required")
	}
	if err := h.Metadata.SetBattleLink(c.UserContext(), battleID, url); err != nil {
		return fail(c, "admin.metadata.set", err, nil)
	}
	applog.Audit(c, "admin.metadata.set", map[string]any{"backend_url": url})
	return c.JSON(fiber.Map{"status": "success", "battle_id": battleID, "backend_url": url})
}

type sellerNamesRequest struct {
	BattleID    string            `json:"battle_id"`
	SellerNames map[string]string `json:"seller_names"`
}

// GET /admin/metadata/seller_names?battle_id=
func (h *AdminHandler) GetSellerNames(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.seller_names", "battle_id is required")
	}
	names, err := h.Metadata.SellerNames(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.seller_names", err, nil)
	}
	return c.JSON(fiber.Map{"seller_names": names})
}

// POST /admin/metadata/seller_names
func (h *AdminHandler) SetSellerNames(c *fiber.Ctx) error {
	var req sellerNamesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "admin.seller_names.set", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.seller_names.set", "battle_id is required")
	}
	if req.SellerNames == nil {
		req.SellerNames = map[string]string{}
	}
	if err := h.Metadata.SetSellerNames(c.UserContext(), battleID, req.SellerNames); err != nil {
		return fail(c, "admin.seller_names.set", err, nil)
	}
	applog.Audit(c, "admin.seller_names.set", map[string]any{"count": len(req.SellerNames)})
	return c.JSON(fiber.Map{"status": "success", "seller_names": req.SellerNames})
}

// GET /admin/metadata/all?battle_id=
func (h *AdminHandler) ListMetadata(c *fiber.Ctx) error {
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.metadata.list", "battle_id is required")
	}
	entries, err := h.Metadata.List(c.UserContext(), battleID)
	if err != nil {
		return fail(c, "admin.metadata.list", err, nil)
	}
	if entries == nil {
		entries = []domain.Metadata{}
	}
	return c.JSON(fiber.Map{"battle_id": battleID, "metadata": entries})
}

type rawMetaRequest struct {
	BattleID string `json:"battle_id"`
	Value    string `json:"value"`
}

// GET /admin/metadata/:key?battle_id=
func (h *AdminHandler) GetRaw(c *fiber.Ctx) error {
	key, ok := validate.MetaKey(c.Params("key"))
	if !ok {
		return badRequest(c, "admin.metadata.raw", "invalid metadata key")
	}
	battleID, ok := battleQuery(c)
	if !ok {
		return badRequest(c, "admin.metadata.raw", "battle_id is required")
	}
	v, found, err := h.Metadata.GetRaw(c.UserContext(), battleID, key)
	if err != nil {
		return fail(c, "admin.metadata.raw", err, nil)
	}
	var value any
	if found {
		value = v
	}
	return c.JSON(fiber.Map{"key": key, "battle_id": battleID, "value": value})
}

// POST /admin/metadata/:key
func (h *AdminHandler) PutRaw(c *fiber.Ctx) error {
	key, ok := validate.MetaKey(c.Params("key"))
	if !ok {
		return badRequest(c, "admin.metadata.raw.set", "invalid metadata key")
	}
	var req rawMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "admin.metadata.raw.set", "invalid request payload")
	}
	battleID, ok := battleValue(c, req.BattleID)
	if !ok {
		return badRequest(c, "admin.metadata.raw.set", "battle_id is required")
	}
	if err := h.Metadata.Put(c.UserContext(), battleID, domain.RawValue{Key: key, Value: req.Value}); err != nil {
		return fail(c, "admin.metadata.raw.set", err, map[string]any{"key": key})
	}
	applog.Audit(c, "admin.metadata.raw.set", map[string]any{"key": key})
	return c.JSON(fiber.Map{"key": key, "battle_id": battleID, "value": req.Value})
}
