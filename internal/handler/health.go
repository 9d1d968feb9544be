package handler // handler package contains HTTP handlers

import (
	"net/http" // status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health answers liveness probes with a plain "ok" so load balancers and
// monitoring can verify the service is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
