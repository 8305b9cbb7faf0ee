// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// principalFrom returns the identity the auth middleware attached to the
// request. Routes registered without the middleware have no principal, which
// is a wiring bug surfaced as an authentication failure.
func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

// pathID parses the numeric path parameter shared by the staff routes.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrBadParams
	}

	return id, nil
}
