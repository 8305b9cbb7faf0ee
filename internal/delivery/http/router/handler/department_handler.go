package handler

import (
	"log/slog"

	"staffhub/internal/delivery/http/response"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DepartmentHandler holds dependencies for the department listing.
type DepartmentHandler struct {
	uc     usecase.StaffUsecase
	logger *slog.Logger
}

// NewDepartmentHandler is the constructor for DepartmentHandler, injected by Fx.
func NewDepartmentHandler(uc usecase.StaffUsecase, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{uc: uc, logger: logger}
}

// List handles GET /department/list.
func (h *DepartmentHandler) List(c echo.Context) error {
	output, err := h.uc.Departments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取部门列表成功", output)
}

// Levels handles GET /department/level_list.
func (h *DepartmentHandler) Levels(c echo.Context) error {
	output, err := h.uc.Levels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取职级列表成功", output)
}
