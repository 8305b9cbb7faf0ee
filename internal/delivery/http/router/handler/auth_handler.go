package handler

import (
	"log/slog"

	"staffhub/internal/delivery/http/response"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the identity endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "注册成功", output)
}

// Login handles POST /login for both login variants.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "登录成功", output)
}

// ForgetPassword handles POST /forget_password.
func (h *AuthHandler) ForgetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "密码重置成功", nil)
}

// SendCode handles POST /send_code.
func (h *AuthHandler) SendCode(c echo.Context) error {
	var input usecase.SendCodeInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadParams
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.SendCode(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "验证码发送成功", output)
}

// Info handles GET /info for the authenticated account.
func (h *AuthHandler) Info(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Info(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "获取成功", output)
}
