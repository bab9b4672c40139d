package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/chainrent/chainrent/internal/webserver"
)

func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard", getDashboard)
}

// getDashboard returns the cross-entity counts and aggregates shown on the
// admin landing screen.
func getDashboard(c echo.Context) error {
	summary, err := webserver.Actions().Summary.Site(c.Request().Context())
	if err != nil {
		return failErr(c, "Failed to build dashboard summary", err)
	}
	return ok(c, summary)
}
