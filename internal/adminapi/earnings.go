package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/internal/webserver"
)

// Client records are managed on the admin "earnings" screen, hence the route
// naming.
func registerEarningRoutes() {
	webserver.ApiGET("/earnings", listEarnings)
	webserver.ApiGET("/earnings/:id", getEarning)
	webserver.ApiPOST("/earnings", createEarning)
	webserver.ApiPUT("/earnings/:id", updateEarning)
	webserver.ApiDELETE("/earnings/:id", deleteEarning)
}

// earningView is a Client with its derived return-on-investment attached.
type earningView struct {
	domain.Client
	Roi float64 `json:"roi"`
}

func earningViews(rows []domain.Client) []earningView {
	views := make([]earningView, 0, len(rows))
	for _, row := range rows {
		views = append(views, earningView{Client: row, Roi: row.Roi()})
	}
	return views
}

func listEarnings(c echo.Context) error {
	rows, total, err := webserver.Actions().Clients.List(c.Request().Context(), parseLimit(c))
	if err != nil {
		return failErr(c, "Failed to get clients", err)
	}
	return list(c, earningViews(rows), total)
}

func getEarning(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID", nil)
	}
	rec, err := webserver.Actions().Clients.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, "Client not found", err)
	}
	return ok(c, earningView{Client: *rec, Roi: rec.Roi()})
}

func createEarning(c echo.Context) error {
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse client", nil)
	}
	in := actions.ClientInput{
		Name:       cast.ToString(payload["name"]),
		Location:   cast.ToString(payload["location"]),
		Investment: cast.ToFloat64(payload["investment"]),
		Earnings:   cast.ToFloat64(payload["earnings"]),
		Period:     cast.ToInt(payload["period"]),
	}
	rec, err := webserver.Actions().Clients.Create(c.Request().Context(), sessionOf(c), in)
	if err != nil {
		return failErr(c, "Failed to create client", err)
	}
	return ok(c, rec)
}

func updateEarning(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID", nil)
	}
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse client", nil)
	}

	var patch actions.ClientPatch
	if v, present := payload["name"]; present {
		s := cast.ToString(v)
		patch.Name = &s
	}
	if v, present := payload["location"]; present {
		s := cast.ToString(v)
		patch.Location = &s
	}
	if v, present := payload["investment"]; present {
		f := cast.ToFloat64(v)
		patch.Investment = &f
	}
	if v, present := payload["earnings"]; present {
		f := cast.ToFloat64(v)
		patch.Earnings = &f
	}
	if v, present := payload["period"]; present {
		n := cast.ToInt(v)
		patch.Period = &n
	}

	rec, err := webserver.Actions().Clients.AdminUpdate(c.Request().Context(), id, patch)
	if err != nil {
		return failErr(c, "Failed to update client", err)
	}
	return ok(c, rec)
}

func deleteEarning(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID", nil)
	}
	if err := webserver.Actions().Clients.AdminDelete(c.Request().Context(), id); err != nil {
		return failErr(c, "Failed to delete client", err)
	}
	return okMessage(c, "Client deleted successfully")
}
