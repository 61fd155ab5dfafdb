package controllers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/campus/routes"
	"campus-guide-backend/config"
	"campus-guide-backend/translations"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newCampusApp(t *testing.T, loaded bool) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	if loaded {
		write := func(name, content string) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}
		write("config.json", `{"version": 4}`)
		write("buildings.json", `[
			{"code": "LIB", "name_en": "Library", "name_fr": "Bibliothèque", "address": "125 Campus Drive",
			 "latitude": 45.3832, "longitude": -75.6985,
			 "rooms": [{"name": "122", "type": "study"}]},
			{"code": "UC", "name_en": "University Centre", "latitude": 45.3841, "longitude": -75.6972, "rooms": []}
		]`)
		write("study_spots.json", `[{"name_en": "Silent floor", "building": "LIB", "room": "122"}]`)
	}

	snapshots := repositories.NewSnapshotRepository(dir, zaptest.NewLogger(t))
	if loaded {
		require.NoError(t, snapshots.Load())
	}

	app := fiber.New()
	routes.CampusRouterInit(app, snapshots, translations.NewProvider())
	return app
}

func get(t *testing.T, app *fiber.App, url string) (int, map[string]json.RawMessage) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestGetBuildingsListsSummaries(t *testing.T) {
	app := newCampusApp(t, true)

	status, payload := get(t, app, "/api/v1/buildings?lang=fr")
	require.Equal(t, fiber.StatusOK, status)

	var buildings []struct {
		Code      string `json:"code"`
		Name      string `json:"name"`
		RoomCount int    `json:"room_count"`
	}
	require.NoError(t, json.Unmarshal(payload["buildings"], &buildings))
	require.Len(t, buildings, 2)

	assert.Equal(t, "LIB", buildings[0].Code)
	assert.Equal(t, "Bibliothèque", buildings[0].Name)
	assert.Equal(t, 1, buildings[0].RoomCount)
}

func TestGetBuildingByCode(t *testing.T) {
	app := newCampusApp(t, true)

	status, _ := get(t, app, "/api/v1/buildings/lib")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = get(t, app, "/api/v1/buildings/NOPE")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetClosestBuilding(t *testing.T) {
	app := newCampusApp(t, true)

	status, payload := get(t, app, "/api/v1/buildings/closest?latitude=45.3842&longitude=-75.6973")
	require.Equal(t, fiber.StatusOK, status)

	var code string
	require.NoError(t, json.Unmarshal(payload["code"], &code))
	assert.Equal(t, "UC", code)
}

func TestGetClosestBuildingValidatesCoordinates(t *testing.T) {
	app := newCampusApp(t, true)

	status, _ := get(t, app, "/api/v1/buildings/closest?latitude=abc&longitude=-75")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = get(t, app, "/api/v1/buildings/closest?latitude=120&longitude=-75")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestContentUnavailableBeforeLoad(t *testing.T) {
	app := newCampusApp(t, false)

	status, _ := get(t, app, "/api/v1/buildings")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	status, _ = get(t, app, "/api/v1/study-spots")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestExportBuildingsReturnsWorkbook(t *testing.T) {
	app := newCampusApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/buildings/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType),
	)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "buildings_v4.xlsx")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
