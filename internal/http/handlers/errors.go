package handlers

import (
	"errors"
	"net/http"

	applog "marketplace/internal/log"
	"marketplace/internal/marketerrors"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// MapErrorToHTTP maps engine errors to a status code and a client-safe message.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrAuthentication):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, marketerrors.ErrPhaseViolation), errors.Is(err, marketerrors.ErrOwnership):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, marketerrors.ErrRankingConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// fail writes {"error": msg} with the mapped status and logs at a level
// matching it. Internal details only reach the log.
func fail(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	status, msg := MapErrorToHTTP(err)
	c.Status(status)
	switch {
	case status >= 500:
		applog.Error(c, action+".fail", err, fields)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if fields == nil {
			fields = map[string]any{}
		}
		fields["reason"] = msg
		applog.Security(c, action+".denied", fields)
	default:
		applog.Info(c, action+".rejected", map[string]any{"reason": msg})
	}
	return c.JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, action, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"handler": action, "reason": msg})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// battleQuery reads and validates ?battle_id= and tags the request with it.
func battleQuery(c *fiber.Ctx) (string, bool) {
	return battleValue(c, c.Query("battle_id"))
}

func battleValue(c *fiber.Ctx, raw string) (string, bool) {
	id, ok := validate.ID(raw)
	if ok {
		c.Locals(localBattleID, id)
	}
	return id, ok
}

// ErrorHandler is the app-wide fallback. Client errors raised by fiber keep
// their status; anything else becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		applog.Info(c, "request.rejected", map[string]any{"reason": fe.Message})
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// NotFound answers any route nothing else matched.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "route not found"})
}
