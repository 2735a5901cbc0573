package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the validator. Both
// failures become a 400 carrying a short message.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	return validate(c, req)
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
