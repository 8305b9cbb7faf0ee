package handler

import (
	"log/slog"

	"staffhub/internal/delivery/http/response"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin analytics endpoints. The
// role gate lives in the router: the whole /admin group requires Admin.
type AdminHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// AnalyzeStaff handles GET /admin/analyze_staff.
func (h *AdminHandler) AnalyzeStaff(c echo.Context) error {
	output, err := h.uc.AnalyzeStaff(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取员工分析数据成功", output)
}
