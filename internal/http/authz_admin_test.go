package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesNeedKey(t *testing.T) {
	app := newApp(t, testAdminKey)

	routes := []struct{ method, path string }{
		{"GET", "/admin/phase?battle_id=b1"},
		{"POST", "/admin/round"},
		{"POST", "/admin/metadata"},
		{"POST", "/admin/metadata/seller_names"},
		{"GET", "/admin/metadata/custom?battle_id=b1"},
		{"POST", "/admin/images"},
		{"POST", "/rankings/initialize?battle_id=b1"},
		{"PATCH", "/product/batch/rankings"},
		{"PATCH", "/product/p1/ranking"},
	}
	for _, r := range routes {
		for _, key := range []string{"", "wrong"} {
			status, body := call(t, app, r.method, r.path, map[string]any{}, "X-Admin-Key", key)
			require.Equal(t, fiber.StatusUnauthorized, status, "%s %s key=%q", r.method, r.path, key)
			require.JSONEq(t, `{"error":"Invalid or missing admin key"}`, string(body))
		}
	}
}

func TestAdminCountersAndPhase(t *testing.T) {
	app := newApp(t, testAdminKey)

	status, body := call(t, app, "GET", "/admin/phase?battle_id=b1", nil, admin()...)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"phase":"seller_management"}`, string(body))

	status, body = call(t, app, "POST", "/admin/phase", map[string]any{"battle_id": "b1", "phase": "closed"}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status, string(body))

	status, body = call(t, app, "GET", "/admin/day?battle_id=b1", nil, admin()...)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"day":0}`, string(body))

	status, body = call(t, app, "POST", "/admin/day", map[string]any{"battle_id": "b1", "day": 4}, admin()...)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"day":4}`, string(body))

	status, body = call(t, app, "POST", "/admin/day", map[string]any{"battle_id": "b1", "day": -1}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.JSONEq(t, `{"error":"Day must be a non-negative integer"}`, string(body))

	status, body = call(t, app, "GET", "/admin/round?battle_id=b1", nil, admin()...)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"round":1}`, string(body))

	status, _ = call(t, app, "POST", "/admin/round", map[string]any{"battle_id": "b1", "round": 0}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, "POST", "/admin/round", map[string]any{"battle_id": "b1"}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, body = call(t, app, "POST", "/admin/round", map[string]any{"battle_id": "b1", "round": 10001}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.JSONEq(t, `{"error":"Round must not exceed 10000"}`, string(body))
}

func TestMetadataReadsAreOpen(t *testing.T) {
	app := newApp(t, testAdminKey)

	status, body := call(t, app, "GET", "/admin/metadata?battle_id=b1", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.JSONEq(t, `{"battle_id":"b1","backend_url":null}`, string(body))

	status, body = call(t, app, "POST", "/admin/metadata", map[string]any{"battle_id": "b1", "backend_url": "http://orchestrator:9000"}, admin()...)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.Equal(t, "success", decode[map[string]any](t, body)["status"])

	_, body = call(t, app, "GET", "/admin/metadata?battle_id=b1", nil)
	require.JSONEq(t, `{"battle_id":"b1","backend_url":"http://orchestrator:9000"}`, string(body))

	status, body = call(t, app, "GET", "/admin/metadata/seller_names?battle_id=b1", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"seller_names":{}}`, string(body))

	status, _ = call(t, app, "POST", "/admin/metadata/seller_names", map[string]any{
		"battle_id":    "b1",
		"seller_names": map[string]string{"s1": "Towel Town"},
	}, admin()...)
	require.Equal(t, fiber.StatusOK, status)

	_, body = call(t, app, "GET", "/admin/metadata/seller_names?battle_id=b1", nil)
	require.JSONEq(t, `{"seller_names":{"s1":"Towel Town"}}`, string(body))
}

func TestRawMetadataKeys(t *testing.T) {
	app := newApp(t, testAdminKey)

	status, body := call(t, app, "POST", "/admin/metadata/strategy_hint", map[string]any{"battle_id": "b1", "value": "undercut"}, admin()...)
	require.Equal(t, fiber.StatusOK, status, string(body))

	_, body = call(t, app, "GET", "/admin/metadata/strategy_hint?battle_id=b1", nil, admin()...)
	require.JSONEq(t, `{"key":"strategy_hint","battle_id":"b1","value":"undercut"}`, string(body))

	_, body = call(t, app, "GET", "/admin/metadata/strategy_hint?battle_id=b2", nil, admin()...)
	require.JSONEq(t, `{"key":"strategy_hint","battle_id":"b2","value":null}`, string(body))

	// typed keys stay out of the raw path
	status, _ = call(t, app, "POST", "/admin/metadata/current_round", map[string]any{"battle_id": "b1", "value": "9"}, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestListAllMetadata(t *testing.T) {
	app := newApp(t, testAdminKey)

	status, _ := call(t, app, "GET", "/admin/metadata/all?battle_id=b1", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)

	status, body := call(t, app, "GET", "/admin/metadata/all?battle_id=b1", nil, admin()...)
	require.Equal(t, fiber.StatusOK, status, string(body))
	require.JSONEq(t, `{"battle_id":"b1","metadata":[]}`, string(body))

	call(t, app, "POST", "/admin/day", map[string]any{"battle_id": "b1", "day": 2}, admin()...)
	call(t, app, "POST", "/admin/metadata/strategy_hint", map[string]any{"battle_id": "b1", "value": "undercut"}, admin()...)
	call(t, app, "POST", "/admin/day", map[string]any{"battle_id": "b2", "day": 7}, admin()...)

	_, body = call(t, app, "GET", "/admin/metadata/all?battle_id=b1", nil, admin()...)
	require.JSONEq(t, `{"battle_id":"b1","metadata":[
		{"key":"current_day","battle_id":"b1","value":"2"},
		{"key":"strategy_hint","battle_id":"b1","value":"undercut"}
	]}`, string(body))

	status, _ = call(t, app, "GET", "/admin/metadata/all", nil, admin()...)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestEmptyAdminKeyLeavesRoutesOpen(t *testing.T) {
	app := newApp(t, "")
	status, _ := call(t, app, "GET", "/admin/phase?battle_id=b1", nil)
	require.Equal(t, fiber.StatusOK, status)
}
