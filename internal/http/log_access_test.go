package handlers_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	applog "marketplace/internal/log"
)

// captureLog sends log output to a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	applog.SetOutput(&buf)
	t.Cleanup(func() { applog.SetOutput(os.Stdout) })
	return &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal(line, &e), string(line))
		out = append(out, e)
	}
	return out
}

func findEntry(entries []map[string]any, action string) map[string]any {
	for _, e := range entries {
		if e["action"] == action {
			return e
		}
	}
	return nil
}

func TestDeniedAdminAccessIsLogged(t *testing.T) {
	app := newApp(t, testAdminKey)
	buf := captureLog(t)

	status, _ := call(t, app, "POST", "/admin/phase", map[string]string{"battle_id": "b1", "phase": "open"}, "X-Admin-Key", "guess")
	require.Equal(t, fiber.StatusUnauthorized, status)

	e := findEntry(logEntries(t, buf), "access.denied.admin")
	require.NotNil(t, e, buf.String())
	require.Equal(t, "warning", e["level"])
	require.Equal(t, "/admin/phase", e["path"])
	require.Equal(t, true, e["key_present"])
	require.NotEmpty(t, e["req_id"])
	require.NotContains(t, buf.String(), "guess")
}

func TestWritesAreAudited(t *testing.T) {
	app := newApp(t, "")
	s := registerSeller(t, app, "b1")
	buf := captureLog(t)

	p := createProduct(t, app, s, "Towel", 900)

	e := findEntry(logEntries(t, buf), "product.create")
	require.NotNil(t, e, buf.String())
	require.Equal(t, true, e["audit"])
	require.Equal(t, "b1", e["battle_id"])
	require.Equal(t, p["id"], e["product_id"])
	require.NotContains(t, buf.String(), s.AuthToken)
}

func TestPhaseViolationIsLoggedWithBattle(t *testing.T) {
	app := newApp(t, "")
	s := registerSeller(t, app, "b1")
	setPhase(t, app, "b1", "buyer_shopping")
	buf := captureLog(t)

	status, _ := call(t, app, "POST", "/product", towel("Towel", 900), bearer(s.AuthToken)...)
	require.Equal(t, fiber.StatusForbidden, status)

	e := findEntry(logEntries(t, buf), "product.create.denied")
	require.NotNil(t, e, buf.String())
	require.Equal(t, "b1", e["battle_id"])
	require.Equal(t, s.ID, e["seller_id"])
	require.Contains(t, e["reason"], "buyer_shopping")
}
