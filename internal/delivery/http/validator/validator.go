// Package validator plugs go-playground/validator into echo's request
// validation hook.
package validator

import (
	domainerrors "staffhub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks struct tags and collapses any violation into the generic
// bad-parameters failure; field-level detail never reaches the client.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrBadParams
	}

	return nil
}
