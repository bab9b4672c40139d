package webserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

const (
	SessionName   = "chainrent_session"
	sessionOprKey = "operator_id"

	loginPath  = "/login"
	adminPath  = "/admin"
	apiPrefix  = "/api/"
	loginRoute = "/api/login"
)

// sessionGate is the single enforcement point for the admin surface: every
// request under /admin or /api requires an authenticated session. Browser
// paths are redirected to the login route, API paths get a 401 envelope.
func sessionGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		gated := strings.HasPrefix(path, adminPath) || strings.HasPrefix(path, apiPrefix)
		if !gated || path == loginRoute {
			return next(c)
		}
		if CurrentSession(c).Authenticated() {
			return next(c)
		}
		if strings.HasPrefix(path, apiPrefix) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"code": "NOT_AUTHORIZED", "error": "Not authorized"})
		}
		return c.Redirect(http.StatusFound, loginPath)
	}
}

// operatorLoader resolves a session operator id against the operator table;
// swapped out in tests.
var operatorLoader = func(db *gorm.DB, id int64) (*domain.SysOpr, error) {
	var opr domain.SysOpr
	err := db.Where("id = ? and status = ?", id, common.ENABLED).First(&opr).Error
	if err != nil {
		return nil, err
	}
	return &opr, nil
}

// CurrentSession resolves the caller's session into an explicit value for the
// action layer. Anonymous requests yield an unauthenticated session.
func CurrentSession(c echo.Context) *actions.Session {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return &actions.Session{}
	}
	oprID, ok := sess.Values[sessionOprKey].(int64)
	if !ok || oprID == 0 {
		return &actions.Session{}
	}
	opr, err := operatorLoader(server.db, oprID)
	if err != nil {
		return &actions.Session{}
	}
	return &actions.Session{Operator: opr}
}

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (s *WebServer) initAuthRoutes() {
	s.root.POST(loginRoute, loginHandler)
	s.root.POST("/api/logout", logoutHandler)
	s.root.GET("/api/session", sessionHandler)
}

func loginHandler(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"code": "INVALID_REQUEST", "error": "Unable to parse login parameters"})
	}

	var opr domain.SysOpr
	err := server.db.Where("username = ? and status = ?", strings.TrimSpace(payload.Username), common.ENABLED).First(&opr).Error
	if err != nil || !common.CheckPassword(opr.Password, payload.Password) {
		zap.L().Warn("login rejected", zap.String("username", payload.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "LOGIN_FAILED", "error": "Invalid username or password"})
	}

	sess, _ := session.Get(SessionName, c)
	sess.Options.Path = "/"
	sess.Options.HttpOnly = true
	sess.Options.MaxAge = 86400
	sess.Values[sessionOprKey] = opr.ID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"code": "SESSION_ERROR", "error": "Failed to establish session"})
	}

	server.db.Model(&domain.SysOpr{}).Where("id = ?", opr.ID).Update("last_login", time.Now())
	zap.L().Info("operator login", zap.String("username", opr.Username))
	return c.JSON(http.StatusOK, echo.Map{"data": opr})
}

// logoutHandler ends the current session.
func logoutHandler(c echo.Context) error {
	sess, _ := session.Get(SessionName, c)
	sess.Options.MaxAge = -1
	delete(sess.Values, sessionOprKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"code": "SESSION_ERROR", "error": "Failed to end session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// sessionHandler reports the logged-in operator, used by the admin shell.
func sessionHandler(c echo.Context) error {
	s := CurrentSession(c)
	if !s.Authenticated() {
		return c.JSON(http.StatusUnauthorized, echo.Map{"code": "NOT_AUTHORIZED", "error": "Not authorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": s.Operator})
}
