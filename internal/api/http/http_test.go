package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lmm-be/internal/config"
	"lmm-be/internal/service"
	"lmm-be/internal/service/catalog"
	"lmm-be/internal/service/dto"
	"lmm-be/internal/service/rolelist"
	"lmm-be/internal/state"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCatalog 为 false 时模拟角色目录加载失败，只影响分配服务
func newTestApp(t *testing.T, withCatalog bool) *iris.Application {
	t.Helper()

	roles, err := catalog.New([]catalog.Role{
		{ID: 53, Name: "Mr. Nosey", Archetype: "Town Investigative"},
		{ID: 4, Name: "Little Miss<br>Bossy", Archetype: "Town Support"},
		{ID: 12, Name: "Little Miss<br>Naughty", Archetype: "Mafia Killing"},
	})
	require.NoError(t, err)

	assignCatalog := roles
	if !withCatalog {
		assignCatalog = nil
	}

	appState := state.NewAppState(
		&config.AppConfig{},
		service.NewRoleService(roles, catalog.InvestigativeGroups{}),
		service.NewRolelistService(rolelist.New(map[int][]string{
			3: {"Town Investigative", "Town Support", "Mafia Killing"},
		})),
		service.NewAssignmentService(assignCatalog),
	)

	app := NewApp(appState)
	require.NoError(t, app.Build())
	return app
}

func do(app *iris.Application, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestCreateAssignment(t *testing.T) {
	app := newTestApp(t, true)

	rec := do(app, http.MethodPost, "/api/v1/assignments",
		`{"role_list":"Town Investigative\nMafia Any\nNeutral Any","player_list":"Ann","seed":"s"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AssignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Deterministic)
	assert.Equal(t, 2, resp.Assigned)
	assert.Equal(t, 1, resp.Failed)
	require.NotNil(t, resp.Assignments[0].Player)
	assert.Equal(t, "Ann", *resp.Assignments[0].Player)
	assert.Equal(t, 53, resp.Assignments[0].Role.ID)
	assert.Equal(t, "No roles found for alignment: Neutral", resp.Assignments[2].Error)
}

func TestCreateAssignment_BadRequests(t *testing.T) {
	app := newTestApp(t, true)

	rec := do(app, http.MethodPost, "/api/v1/assignments", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")

	rec = do(app, http.MethodPost, "/api/v1/assignments", `{"role_list":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAssignment_CatalogUnavailable(t *testing.T) {
	app := newTestApp(t, false)

	rec := do(app, http.MethodPost, "/api/v1/assignments", `{"role_list":"Town Any"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoleRoutes(t *testing.T) {
	app := newTestApp(t, true)

	rec := do(app, http.MethodGet, "/api/v1/roles?gender=girls", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var gallery dto.GalleryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gallery))
	assert.Equal(t, 2, gallery.Shown)
	assert.Equal(t, 3, gallery.Total)

	rec = do(app, http.MethodGet, "/api/v1/roles?archetype=Mafia+Killing", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gallery))
	assert.Equal(t, 1, gallery.Shown)

	rec = do(app, http.MethodGet, "/api/v1/roles/4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"Little Miss Bossy"`)

	rec = do(app, http.MethodGet, "/api/v1/roles/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(app, http.MethodGet, "/api/v1/roles/search?q=naughty", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":12`)

	rec = do(app, http.MethodGet, "/api/v1/roles/archetypes/toggle", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRolelistRoutes(t *testing.T) {
	app := newTestApp(t, true)

	rec := do(app, http.MethodGet, "/api/v1/rolelists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default":3`)

	rec = do(app, http.MethodGet, "/api/v1/rolelists/10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view dto.RolelistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 3, view.PlayerCount)
	assert.Equal(t, "2 Town, 1 Mafia", view.Summary)
}
