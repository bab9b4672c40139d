// Package publicapi serves the unauthenticated read surface consumed by the
// marketing pages, plus the contact form submission.
package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/internal/news"
	"github.com/chainrent/chainrent/internal/webserver"
)

var feed *news.Service

// InitRouter registers the public routes. The news service may be nil when
// the feed is disabled.
func InitRouter(newsFeed *news.Service) {
	feed = newsFeed
	webserver.PubGET("/public/products", listPublicProducts)
	webserver.PubGET("/public/testimonials", listPublicTestimonials)
	webserver.PubGET("/public/earnings", listPublicEarnings)
	webserver.PubGET("/public/metrics", getPublicMetrics)
	webserver.PubGET("/public/news", listPublicNews)
	webserver.PubPOST("/public/contact", submitContact)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"data": data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}

func displayLimit(c echo.Context) int {
	limit := cast.ToInt(c.QueryParam("limit"))
	max := webserver.Config().Web.DisplayLimit
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}

// listPublicProducts fetches the catalog and keeps only the entries the
// marketing page may show (active or announced), newest first.
func listPublicProducts(c echo.Context) error {
	rows, _, err := webserver.Actions().Products.List(c.Request().Context(), 0)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to get products")
	}
	limit := displayLimit(c)
	visible := make([]domain.Product, 0, limit)
	for _, row := range rows {
		if row.Status != domain.ProductActive && row.Status != domain.ProductComingSoon {
			continue
		}
		visible = append(visible, row)
		if len(visible) == limit {
			break
		}
	}
	return ok(c, visible)
}

// listPublicTestimonials returns only published reviews.
func listPublicTestimonials(c echo.Context) error {
	rows, _, err := webserver.Actions().Testimonials.List(c.Request().Context(), 0)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to get testimonials")
	}
	limit := displayLimit(c)
	visible := make([]domain.Testimonial, 0, limit)
	for _, row := range rows {
		if row.Status != domain.TestimonialActive {
			continue
		}
		visible = append(visible, row)
		if len(visible) == limit {
			break
		}
	}
	return ok(c, visible)
}

type earningCard struct {
	Name       string  `json:"name"`
	Initials   string  `json:"initials"`
	Location   string  `json:"location"`
	Investment string  `json:"investment"`
	Earnings   string  `json:"earnings"`
	Period     int     `json:"period"`
	Roi        float64 `json:"roi"`
}

// listPublicEarnings renders the case-study cards with derived display
// fields attached.
func listPublicEarnings(c echo.Context) error {
	rows, _, err := webserver.Actions().Clients.List(c.Request().Context(), displayLimit(c))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to get clients")
	}
	cards := make([]earningCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, earningCard{
			Name:       row.Name,
			Initials:   domain.Initials(row.Name),
			Location:   row.Location,
			Investment: domain.FormatCurrency(row.Investment),
			Earnings:   domain.FormatCurrency(row.Earnings),
			Period:     row.Period,
			Roi:        row.Roi(),
		})
	}
	return ok(c, cards)
}

func getPublicMetrics(c echo.Context) error {
	summary, err := webserver.Actions().Summary.Site(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to build site metrics")
	}
	return ok(c, summary)
}

func listPublicNews(c echo.Context) error {
	if feed == nil {
		return ok(c, []news.Item{})
	}
	items, fetchedAt := feed.Items()
	return c.JSON(http.StatusOK, echo.Map{"data": items, "fetched_at": fetchedAt})
}

type contactPayload struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Messages string `json:"messages" form:"messages"`
}

func submitContact(c echo.Context) error {
	var payload contactPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse contact form")
	}
	_, err := webserver.Actions().Contacts.Submit(c.Request().Context(), actions.ContactInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Messages: payload.Messages,
	})
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Thank you for reaching out. We will get back to you soon."})
}
