package adminapi

import (
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/chainrent/chainrent/internal/webserver"
)

func registerExportRoutes() {
	webserver.ApiGET("/contacts/export", exportContacts)
	webserver.ApiGET("/earnings/export", exportEarnings)
}

type contactCsvRow struct {
	ID        int64  `csv:"id"`
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Messages  string `csv:"messages"`
	CreatedAt string `csv:"created_at"`
}

type earningCsvRow struct {
	ID         int64   `csv:"id"`
	Name       string  `csv:"name"`
	Location   string  `csv:"location"`
	Investment float64 `csv:"investment"`
	Earnings   float64 `csv:"earnings"`
	Period     int     `csv:"period"`
	Roi        float64 `csv:"roi"`
}

func writeCsv(c echo.Context, filename string, rows interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(rows, c.Response())
}

func exportContacts(c echo.Context) error {
	records, _, err := webserver.Actions().Contacts.List(c.Request().Context(), 0)
	if err != nil {
		return failErr(c, "Failed to get contacts", err)
	}
	rows := make([]contactCsvRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, contactCsvRow{
			ID:        rec.ID,
			Name:      rec.Name,
			Email:     rec.Email,
			Messages:  rec.Messages,
			CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return writeCsv(c, "contacts.csv", &rows)
}

func exportEarnings(c echo.Context) error {
	records, _, err := webserver.Actions().Clients.List(c.Request().Context(), 0)
	if err != nil {
		return failErr(c, "Failed to get clients", err)
	}
	rows := make([]earningCsvRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, earningCsvRow{
			ID:         rec.ID,
			Name:       rec.Name,
			Location:   rec.Location,
			Investment: rec.Investment,
			Earnings:   rec.Earnings,
			Period:     rec.Period,
			Roi:        rec.Roi(),
		})
	}
	return writeCsv(c, "earnings.csv", &rows)
}
