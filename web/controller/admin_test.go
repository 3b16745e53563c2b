package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quote-hunt/catalog"
	"quote-hunt/database"
	"quote-hunt/logger"
	"quote-hunt/web/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

const testCatalog = `{
  "gameTitle": "Test Hunt",
  "locations": {
    "loc1": {
      "name": "First",
      "collectible": {"id": "q1", "type": "quote", "title": "T", "content": "C", "author": "A"}
    }
  }
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("QH_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	dbPath := t.TempDir() + "/test.db"
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
	settingService := service.SettingService{}
	if err := settingService.SetAdminPassword("hunter2"); err != nil {
		t.Fatalf("set admin password: %v", err)
	}

	cat, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}

	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	engine.Use(sessions.Sessions("quote-hunt", store))

	api := engine.Group("/api")
	NewHuntController(api, cat)
	panel := engine.Group("/panel/api")
	NewAdminController(panel, cat)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGateRejectsWithoutLogin(t *testing.T) {
	engine := newTestRouter(t)

	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/panel/api/stats"},
		{http.MethodGet, "/panel/api/collections"},
		{http.MethodDelete, "/panel/api/collections"},
		{http.MethodGet, "/panel/api/qrcode?locationId=loc1"},
		{http.MethodGet, "/panel/api/server/status"},
		{http.MethodGet, "/panel/api/server/logs"},
	} {
		w := doRequest(engine, probe.method, probe.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", probe.method, probe.path)
	}
}

func TestLoginFlow(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"hunter2"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	w = doRequest(engine, http.MethodGet, "/panel/api/stats", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "totalUsers")

	w = doRequest(engine, http.MethodGet, "/panel/api/session", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestGateRejectsTamperedCookie(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"hunter2"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	for _, c := range cookies {
		if len(c.Value) > 4 {
			c.Value = c.Value[:len(c.Value)-4] + "AAAA"
		}
	}
	w = doRequest(engine, http.MethodGet, "/panel/api/stats", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetEmptiesLedger(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/api/collection", `{"username":"alice","locationId":"loc1"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":true`)

	w = doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"hunter2"}`, nil)
	cookies := w.Result().Cookies()

	w = doRequest(engine, http.MethodDelete, "/panel/api/collections", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodGet, "/panel/api/stats", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalUsers":0`)
	assert.Contains(t, w.Body.String(), `"totalCollections":0`)
}

func TestQrcodeReturnsPng(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"hunter2"}`, nil)
	cookies := w.Result().Cookies()

	w = doRequest(engine, http.MethodGet, "/panel/api/qrcode?locationId=loc1", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, w.Body.Len() > 0)

	w = doRequest(engine, http.MethodGet, "/panel/api/qrcode?locationId=nowhere", "", cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogsEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/panel/api/login", `{"password":"hunter2"}`, nil)
	cookies := w.Result().Cookies()

	logger.Warning("qr batch reprint requested")

	w = doRequest(engine, http.MethodGet, "/panel/api/server/logs?count=20&level=info", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "qr batch reprint requested")

	// Debug entries are filtered out at the default level.
	logger.Debug("wal checkpoint done")
	w = doRequest(engine, http.MethodGet, "/panel/api/server/logs", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "wal checkpoint done")
}

func TestRegisterEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/api/users/register", `{"username":"a"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(engine, http.MethodPost, "/api/users/register", `{"username":"alice"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestCollectEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(engine, http.MethodPost, "/api/collection", `{"username":"alice","locationId":"nowhere"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(engine, http.MethodPost, "/api/collection", `{"username":"alice","locationId":"loc1"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":true`)

	w = doRequest(engine, http.MethodPost, "/api/collection", `{"username":"alice","locationId":"loc1"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":false`)

	w = doRequest(engine, http.MethodGet, "/api/collection/exists?username=alice&locationId=loc1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exists":true`)

	w = doRequest(engine, http.MethodGet, "/api/collection?username=alice", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locationId":"loc1"`)
}
