// Package adminapi serves the back-office CRUD endpoints under /api. All
// routes sit behind the webserver session gate; handlers stay thin and call
// into the action layer.
package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/docstore"
	"github.com/chainrent/chainrent/internal/webserver"
)

// InitRouter registers every admin route module.
func InitRouter() {
	registerProductRoutes()
	registerEarningRoutes()
	registerTestimonialRoutes()
	registerContactRoutes()
	registerDashboardRoutes()
	registerExportRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"data": data})
}

func okMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

func list(c echo.Context, rows interface{}, total int64) error {
	return c.JSON(http.StatusOK, echo.Map{"data": rows, "total": total})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	body := echo.Map{"code": code, "error": message}
	if detail != nil {
		body["detail"] = detail
	}
	return c.JSON(status, body)
}

// failErr maps action-layer errors onto the response envelope: authorization
// failures and missing documents keep their own codes, everything else
// collapses into a store failure message.
func failErr(c echo.Context, message string, err error) error {
	switch {
	case errors.Is(err, actions.ErrNotAuthorized):
		return fail(c, http.StatusUnauthorized, "NOT_AUTHORIZED", "Not authorized", nil)
	case errors.Is(err, docstore.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", message, nil)
	default:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", message, err.Error())
	}
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseLimit reads an optional ?limit= query; zero lets the action layer
// apply its default.
func parseLimit(c echo.Context) int {
	return cast.ToInt(c.QueryParam("limit"))
}

// bindMap decodes the request body as a loose field map so numeric form
// values arrive coercible; absent keys stay absent for merge-patch handlers.
func bindMap(c echo.Context) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func sessionOf(c echo.Context) *actions.Session {
	return webserver.CurrentSession(c)
}
