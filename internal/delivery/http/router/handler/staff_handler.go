package handler

import (
	"log/slog"

	"staffhub/internal/delivery/http/response"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaffHandler holds dependencies for the employee profile endpoints.
// These routes answer the legacy envelope dialect.
type StaffHandler struct {
	uc     usecase.StaffUsecase
	logger *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.StaffUsecase, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{uc: uc, logger: logger}
}

// InfoList handles POST /staff/info_list.
func (h *StaffHandler) InfoList(c echo.Context) error {
	var input usecase.ListStaffInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取员工列表成功", output)
}

// Info handles POST /staff/info/:id.
func (h *StaffHandler) Info(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Detail(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取员工信息成功", output)
}

// Add handles POST /staff/add.
func (h *StaffHandler) Add(c echo.Context) error {
	var input usecase.AddStaffInput
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

	output, err := h.uc.Add(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "添加员工成功", output)
}

// Update handles PUT /staff/update/:id.
func (h *StaffHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateStaffInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Update(c.Request().Context(), principal, id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "更新员工信息成功", nil)
}

// Delete handles DELETE /staff/delete/:id.
func (h *StaffHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "删除员工成功", nil)
}

// AddAssessment handles POST /staff/assessment.
func (h *StaffHandler) AddAssessment(c echo.Context) error {
	var input usecase.AddReviewInput
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

	output, err := h.uc.AddReview(c.Request().Context(), principal, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "添加考核记录成功", output)
}

// Assessments handles GET /staff/assessment/:id.
func (h *StaffHandler) Assessments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListReviews(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "获取考核记录成功", output)
}
