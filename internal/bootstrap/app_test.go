package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/employee-records/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("STORAGE_DRIVER", "json")

	app := NewApp()
	require.NoError(t, app.Initialize(context.Background()))
	return app
}

func get(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := get(app, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAllChildRoutesRegistered(t *testing.T) {
	app := newTestApp(t)

	resources := []string{
		"education", "employmentHistory", "compensation", "bonuses", "timeOff",
		"documents", "benefits", "dependents", "training", "assets", "notes",
		"emergencyContacts", "onboarding", "offboarding",
	}

	for _, name := range resources {
		rec := get(app, "/api/employees/emp-1/"+name)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", name)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "["), "list body for %s", name)

		req := httptest.NewRequest(http.MethodDelete, "/api/"+name+"/does-not-exist", nil)
		del := httptest.NewRecorder()
		app.Echo.ServeHTTP(del, req)
		assert.Equal(t, http.StatusNoContent, del.Code, "DELETE %s", name)
	}
}

func TestCreateThroughFullStack(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/employees/emp-1/assets",
		strings.NewReader(`{"name":"ThinkPad","serialNumber":"SN-100"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"employeeId":"emp-1"`)
}

func TestOpenStorageDrivers(t *testing.T) {
	jsonStore, err := OpenStorage("json", t.TempDir())
	require.NoError(t, err)
	_, ok := jsonStore.(*storage.Store)
	assert.True(t, ok)

	sqliteStore, err := OpenStorage("sqlite", t.TempDir())
	require.NoError(t, err)
	sq, ok := sqliteStore.(*storage.SQLiteStore)
	require.True(t, ok)
	require.NoError(t, sq.Close())

	_, err = OpenStorage("bolt", t.TempDir())
	assert.Error(t, err)
}
