// Package response renders the two envelope dialects of the API. The auth
// endpoints answer {code, message, data} with HTTP-style body codes; the
// staff, attendance, analytics and avatar endpoints predate that and answer
// {code, msg, data} with 0 for success. Both dialects are frozen: clients
// parse them as-is.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the auth-dialect response body.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// LegacyEnvelope is the legacy-dialect response body.
type LegacyEnvelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success answers HTTP 200 with body code 200.
func Success(c echo.Context, message string, data any) error {
	if message == "" {
		message = "success"
	}

	return c.JSON(http.StatusOK, Envelope{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// LegacySuccess answers HTTP 200 with body code 0.
func LegacySuccess(c echo.Context, msg string, data any) error {
	return c.JSON(http.StatusOK, LegacyEnvelope{
		Code: 0,
		Msg:  msg,
		Data: data,
	})
}

// Failure renders a business failure in the auth dialect.
func Failure(c echo.Context, httpStatus, code int, message string) error {
	return c.JSON(httpStatus, Envelope{
		Code:    code,
		Message: message,
	})
}

// LegacyFailure renders a business failure in the legacy dialect.
func LegacyFailure(c echo.Context, httpStatus, code int, msg string) error {
	return c.JSON(httpStatus, LegacyEnvelope{
		Code: code,
		Msg:  msg,
	})
}
