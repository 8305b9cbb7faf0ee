package handler

import (
	"staffhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, "ok", map[string]string{"status": "healthy"})
}
