// Package sms contains verification code delivery implementations.
package sms

import (
	"context"
	"log/slog"

	"staffhub/internal/domain/service"
)

// consoleSender logs the code instead of dispatching an SMS. A real
// gateway client satisfies the same interface.
type consoleSender struct {
	logger *slog.Logger
}

// NewConsoleSender is the constructor for consoleSender.
func NewConsoleSender(logger *slog.Logger) service.CodeSender {
	return &consoleSender{logger: logger}
}

// Send records the code in the service log.
func (s *consoleSender) Send(ctx context.Context, mobile, code string) error {
	s.logger.InfoContext(ctx, "验证码已发送", slog.String("mobile", mobile), slog.String("code", code))

	return nil
}
