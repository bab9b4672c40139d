package webserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	cfg := &config.AppConfig{}
	*cfg = *config.DefaultAppConfig
	cfg.Logger.FileEnable = false
	s := Init(cfg, nil, actions.NewRegistry(nil, nil))

	PubGET("/public/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	ApiGET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	// issues a session cookie for the gate tests
	PubGET("/testlogin", func(c echo.Context) error {
		sess, _ := session.Get(SessionName, c)
		sess.Values[sessionOprKey] = int64(99)
		require.NoError(t, sess.Save(c.Request(), c.Response()))
		return c.NoContent(http.StatusOK)
	})
	return s
}

func TestSessionGateRedirectsAnonymousAdminRequests(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGateRejectsAnonymousApiRequests(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized")
}

func TestSessionGateIgnoresPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/public/ping", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestSessionGateAllowsAuthenticatedApiRequests(t *testing.T) {
	s := newTestServer(t)
	orig := operatorLoader
	operatorLoader = func(_ *gorm.DB, id int64) (*domain.SysOpr, error) {
		return &domain.SysOpr{ID: id, Username: "admin"}, nil
	}
	t.Cleanup(func() { operatorLoader = orig })

	loginReq := httptest.NewRequest(http.MethodGet, "/testlogin", nil)
	loginRec := httptest.NewRecorder()
	s.Echo().ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)
	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
