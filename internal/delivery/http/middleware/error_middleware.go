package middleware

import (
	"fmt"
	"log/slog"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/delivery/http/response"
	domainerrors "staffhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders every error escaping a handler as Echo's
// HTTPErrorHandler. AppErrors carry their own status, body code and
// envelope dialect; anything else is logged and collapsed into the generic
// internal failure so no detail leaks to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.render(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if renderErr := response.Failure(c, httpErr.Code, httpErr.Code, message); renderErr != nil {
			m.log(c, renderErr)
		}

		return
	}

	m.log(c, err)
	m.render(c, domainerrors.ErrInternal)
}

func (m *ErrorMiddleware) render(c echo.Context, appErr domainerrors.AppError) {
	var renderErr error
	if appErr.Legacy() {
		renderErr = response.LegacyFailure(c, appErr.HTTPStatus(), appErr.Code(), appErr.Message())
	} else {
		renderErr = response.Failure(c, appErr.HTTPStatus(), appErr.Code(), appErr.Message())
	}
	if renderErr != nil {
		m.log(c, renderErr)
	}
}

func (m *ErrorMiddleware) log(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("unhandled request error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
