package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/internal/webserver"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	rows, total, err := webserver.Actions().Products.List(c.Request().Context(), parseLimit(c))
	if err != nil {
		return failErr(c, "Failed to get products", err)
	}
	return list(c, rows, total)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	rec, err := webserver.Actions().Products.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, "Product not found", err)
	}
	return ok(c, rec)
}

func createProduct(c echo.Context) error {
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}
	// Numeric form fields are coerced, not rejected; a malformed value
	// becomes zero.
	in := actions.ProductInput{
		Name:          cast.ToString(payload["name"]),
		Apy:           cast.ToFloat64(payload["apy"]),
		Risk:          domain.ProductRisk(cast.ToString(payload["risk"])),
		MinInvestment: cast.ToFloat64(payload["min_investment"]),
		MaxInvestment: cast.ToFloat64(payload["max_investment"]),
		Investors:     cast.ToInt64(payload["investors"]),
		Status:        domain.ProductStatus(cast.ToString(payload["status"])),
		Category:      domain.ProductCategory(cast.ToString(payload["category"])),
		Features:      cast.ToString(payload["features"]),
	}
	rec, err := webserver.Actions().Products.Create(c.Request().Context(), sessionOf(c), in)
	if err != nil {
		return failErr(c, "Failed to create product", err)
	}
	return ok(c, rec)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}

	var patch actions.ProductPatch
	if v, present := payload["name"]; present {
		s := cast.ToString(v)
		patch.Name = &s
	}
	if v, present := payload["apy"]; present {
		f := cast.ToFloat64(v)
		patch.Apy = &f
	}
	if v, present := payload["risk"]; present {
		r := domain.ProductRisk(cast.ToString(v))
		patch.Risk = &r
	}
	if v, present := payload["min_investment"]; present {
		f := cast.ToFloat64(v)
		patch.MinInvestment = &f
	}
	if v, present := payload["max_investment"]; present {
		f := cast.ToFloat64(v)
		patch.MaxInvestment = &f
	}
	if v, present := payload["investors"]; present {
		n := cast.ToInt64(v)
		patch.Investors = &n
	}
	if v, present := payload["status"]; present {
		s := domain.ProductStatus(cast.ToString(v))
		patch.Status = &s
	}
	if v, present := payload["category"]; present {
		s := domain.ProductCategory(cast.ToString(v))
		patch.Category = &s
	}
	if v, present := payload["features"]; present {
		s := cast.ToString(v)
		patch.Features = &s
	}

	rec, err := webserver.Actions().Products.AdminUpdate(c.Request().Context(), id, patch)
	if err != nil {
		return failErr(c, "Failed to update product", err)
	}
	return ok(c, rec)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := webserver.Actions().Products.AdminDelete(c.Request().Context(), id); err != nil {
		return failErr(c, "Failed to delete product", err)
	}
	return okMessage(c, "Product deleted successfully")
}
