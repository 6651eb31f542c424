package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"

	"marketplace/internal/config"
	"marketplace/internal/http/handlers"
	"marketplace/internal/repos"
	"marketplace/web"
)

const testAdminKey = "test-admin-key"

// newApp mounts every route over a fresh seeded in-memory database.
func newApp(t *testing.T, adminKey string) *fiber.App {
	t.Helper()
	return newAppWith(t, fiber.Config{}, adminKey)
}

// newAppWith is newApp with a custom fiber config and extra middleware
// mounted ahead of the routes.
func newAppWith(t *testing.T, cfg fiber.Config, adminKey string, mw ...fiber.Handler) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, repos.SeedImages(db))
	t.Cleanup(func() { _ = db.Close() })

	cfg.Views = web.Engine()
	cfg.ErrorHandler = handlers.ErrorHandler
	app := fiber.New(cfg)
	app.Use(requestid.New())
	for _, h := range mw {
		app.Use(h)
	}
	handlers.Routes(app, handlers.NewDeps(db, config.Config{AdminAPIKey: adminKey}, rand.New(rand.NewSource(7))))
	app.Use(handlers.NotFound)
	return app
}

// call sends body as JSON and returns the status and raw response body.
// Extra args are header name/value pairs.
func call(t *testing.T, app *fiber.App, method, path string, body any, hdr ...string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func bearer(token string) []string { return []string{"Authorization", "Bearer " + token} }

func admin() []string { return []string{"X-Admin-Key", testAdminKey} }

type participant struct {
	ID        string `json:"id"`
	BattleID  string `json:"battle_id"`
	AuthToken string `json:"auth_token"`
}

func registerSeller(t *testing.T, app *fiber.App, battle string) participant {
	t.Helper()
	status, body := call(t, app, "POST", "/sellers", map[string]string{"battle_id": battle})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[participant](t, body)
}

func registerBuyer(t *testing.T, app *fiber.App, battle, name string) participant {
	t.Helper()
	status, body := call(t, app, "POST", "/buyers", map[string]string{"battle_id": battle, "name": name})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[participant](t, body)
}

func setPhase(t *testing.T, app *fiber.App, battle, phase string) {
	t.Helper()
	status, body := call(t, app, "POST", "/admin/phase", map[string]string{"battle_id": battle, "phase": phase}, admin()...)
	require.Equal(t, fiber.StatusOK, status, string(body))
}

func towel(name string, price int) map[string]any {
	return map[string]any{
		"name":              name,
		"short_description": "soft",
		"long_description":  "very soft cotton",
		"price_in_cent":     price,
		"towel_variant":     "budget",
		"image_ids":         []string{"img-01-front", "img-01-detail"},
	}
}

func createProduct(t *testing.T, app *fiber.App, s participant, name string, price int) map[string]any {
	t.Helper()
	status, body := call(t, app, "POST", "/product", towel(name, price), bearer(s.AuthToken)...)
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[map[string]any](t, body)
}
