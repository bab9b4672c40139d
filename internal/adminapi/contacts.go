package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/webserver"
)

// Contacts are created by visitors through the public form; the admin surface
// is an inbox with edit and delete for cleanup.
func registerContactRoutes() {
	webserver.ApiGET("/contacts", listContacts)
	webserver.ApiGET("/contacts/:id", getContact)
	webserver.ApiPOST("/contacts", createContact)
	webserver.ApiPUT("/contacts/:id", updateContact)
	webserver.ApiDELETE("/contacts/:id", deleteContact)
}

func listContacts(c echo.Context) error {
	rows, total, err := webserver.Actions().Contacts.List(c.Request().Context(), parseLimit(c))
	if err != nil {
		return failErr(c, "Failed to get contacts", err)
	}
	return list(c, rows, total)
}

func getContact(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID", nil)
	}
	rec, err := webserver.Actions().Contacts.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, "Contact not found", err)
	}
	return ok(c, rec)
}

func createContact(c echo.Context) error {
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse contact", nil)
	}
	in := actions.ContactInput{
		Name:     cast.ToString(payload["name"]),
		Email:    cast.ToString(payload["email"]),
		Messages: cast.ToString(payload["messages"]),
	}
	rec, err := webserver.Actions().Contacts.Create(c.Request().Context(), sessionOf(c), in)
	if err != nil {
		return failErr(c, "Failed to create contact", err)
	}
	return ok(c, rec)
}

func updateContact(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID", nil)
	}
	payload, err := bindMap(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse contact", nil)
	}

	var patch actions.ContactPatch
	if v, present := payload["name"]; present {
		s := cast.ToString(v)
		patch.Name = &s
	}
	if v, present := payload["email"]; present {
		s := cast.ToString(v)
		patch.Email = &s
	}
	if v, present := payload["messages"]; present {
		s := cast.ToString(v)
		patch.Messages = &s
	}

	rec, err := webserver.Actions().Contacts.AdminUpdate(c.Request().Context(), id, patch)
	if err != nil {
		return failErr(c, "Failed to update contact", err)
	}
	return ok(c, rec)
}

func deleteContact(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID", nil)
	}
	if err := webserver.Actions().Contacts.AdminDelete(c.Request().Context(), id); err != nil {
		return failErr(c, "Failed to delete contact", err)
	}
	return okMessage(c, "Contact deleted successfully")
}
