package middleware

import (
	"strings"

	deliverycontext "staffhub/internal/delivery/context"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resulting
// principal on the request context. This is the only place that answers a
// real HTTP 401: a missing or malformed header reads "未授权", anything the
// verifier rejects reads "token无效或已过期". Handlers past this point may
// trust the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		principal, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, *principal)

		return next(c)
	}
}

// RequireAdmin rejects non-admin principals. It must run after
// Authenticate. The refusal is a business failure, not an HTTP one: the
// response stays 200 with body code 403.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}
		if !principal.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
