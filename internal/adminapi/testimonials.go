package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/internal/webserver"
)

func registerTestimonialRoutes() {
	webserver.ApiGET("/testimonials", listTestimonials)
	webserver.ApiGET("/testimonials/:id", getTestimonial)
	webserver.ApiPOST("/testimonials", createTestimonial)
	webserver.ApiPUT("/testimonials/:id", updateTestimonial)
	webserver.ApiDELETE("/testimonials/:id", deleteTestimonial)
}

func listTestimonials(c echo.Context) error {
	rows, total, err := webserver.Actions().Testimonials.List(c.Request().Context(), parseLimit(c))
	if err != nil {
		return failErr(c, "Failed to get testimonials", err)
	}
	return list(c, rows, total)
}

func getTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial ID", nil)
	}
	rec, err := webserver.Actions().Testimonials.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, "Testimonial not found", err)
	}
	return ok(c, rec)
}

func createTestimonial(c echo.Context) error {
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse testimonial", nil)
	}
	in := actions.TestimonialInput{
		Name:     cast.ToString(payload["name"]),
		Position: cast.ToString(payload["position"]),
		Content:  cast.ToString(payload["content"]),
		Rating:   domain.TestimonialRating(cast.ToString(payload["rating"])),
		Status:   domain.TestimonialStatus(cast.ToString(payload["status"])),
	}
	rec, err := webserver.Actions().Testimonials.Create(c.Request().Context(), sessionOf(c), in)
	if err != nil {
		return failErr(c, "Failed to create testimonial", err)
	}
	return ok(c, rec)
}

func updateTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial ID", nil)
	}
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse testimonial", nil)
	}

	var patch actions.TestimonialPatch
	if v, present := payload["name"]; present {
		s := cast.ToString(v)
		patch.Name = &s
	}
	if v, present := payload["position"]; present {
		s := cast.ToString(v)
		patch.Position = &s
	}
	if v, present := payload["content"]; present {
		s := cast.ToString(v)
		patch.Content = &s
	}
	if v, present := payload["rating"]; present {
		r := domain.TestimonialRating(cast.ToString(v))
		patch.Rating = &r
	}
	if v, present := payload["status"]; present {
		s := domain.TestimonialStatus(cast.ToString(v))
		patch.Status = &s
	}

	rec, err := webserver.Actions().Testimonials.AdminUpdate(c.Request().Context(), id, patch)
	if err != nil {
		return failErr(c, "Failed to update testimonial", err)
	}
	return ok(c, rec)
}

func deleteTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial ID", nil)
	}
	if err := webserver.Actions().Testimonials.AdminDelete(c.Request().Context(), id); err != nil {
		return failErr(c, "Failed to delete testimonial", err)
	}
	return okMessage(c, "Testimonial deleted successfully")
}
