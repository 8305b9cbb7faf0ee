package service

import "context"

// CodeSender delivers a verification code to a mobile number. Real SMS
// dispatch is an external effect behind this interface; the default
// implementation only logs the code.
type CodeSender interface {
	Send(ctx context.Context, mobile, code string) error
}
