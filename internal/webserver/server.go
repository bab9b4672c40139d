// Package webserver hosts the public marketing API and the session-gated
// admin API on a single echo instance. Route modules register their handlers
// through the package-level helpers.
package webserver

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/actions"
)

type WebServer struct {
	cfg  *config.AppConfig
	db   *gorm.DB
	acts *actions.Registry
	root *echo.Echo
}

var server *WebServer

// Init builds the shared server instance. Route modules (adminapi, publicapi)
// register their handlers afterwards via ApiGET/PubGET and friends.
func Init(cfg *config.AppConfig, db *gorm.DB, acts *actions.Registry) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = jsonSerializer{}

	secret := cfg.Web.Secret
	if secret == "" {
		// Sessions won't survive a restart without a configured secret.
		secret = random.String(32)
	}

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(secret))))
	e.Use(zapLogger)
	e.Use(sessionGate)

	server = &WebServer{cfg: cfg, db: db, acts: acts, root: e}
	server.initAuthRoutes()
	return server
}

// Actions returns the action registry shared by route modules.
func Actions() *actions.Registry {
	return server.acts
}

// Config returns the application configuration.
func Config() *config.AppConfig {
	return server.cfg
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.S().Infof("starting web server %s", addr)
	return s.root.Start(addr)
}

func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// PubGET registers an unauthenticated route.
func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

// ApiGET registers an admin API route under /api; the session gate covers the
// whole prefix.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT("/api"+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE("/api"+path, h)
}

// jsonSerializer swaps echo's JSON codec for json-iterator.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsoniter.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsoniter.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

func zapLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		req := c.Request()
		res := c.Response()
		zap.L().Debug("http request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", res.Status))
		return err
	}
}
