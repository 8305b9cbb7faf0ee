package handler

import (
	"log/slog"

	"staffhub/internal/delivery/http/response"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttendanceHandler holds dependencies for the attendance endpoints.
type AttendanceHandler struct {
	uc     usecase.AttendanceUsecase
	logger *slog.Logger
}

// NewAttendanceHandler is the constructor for AttendanceHandler, injected by Fx.
func NewAttendanceHandler(uc usecase.AttendanceUsecase, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, logger: logger}
}

// Table handles GET /attendance/attendanceTable.
func (h *AttendanceHandler) Table(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Table(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取考勤统计数据成功", output)
}

// CheckIn handles POST /attendance/check_in.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var input usecase.CheckInInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.CheckIn(c.Request().Context(), principal, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "打卡成功", nil)
}
