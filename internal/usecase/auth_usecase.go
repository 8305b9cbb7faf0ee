// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// Login type discriminator: 0 = username/password, 1 = mobile/code.
const (
	LoginByPassword = 0
	LoginByCode     = 1
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	UserName  string `json:"user_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Code      string `json:"code" validate:"required"`
	CompanyID string `json:"company_id"`
}

// LoginInput covers both login variants, discriminated by Type.
type LoginInput struct {
	Type     int    `json:"type" validate:"oneof=0 1"`
	UserName string `json:"user_name" validate:"required_if=Type 0"`
	Password string `json:"password" validate:"required_if=Type 0"`
	Mobile   string `json:"mobile" validate:"required_if=Type 1"`
	Code     string `json:"code" validate:"required_if=Type 1"`
}

// ResetPasswordInput defines the data required to reset a password.
type ResetPasswordInput struct {
	Mobile      string `json:"mobile" validate:"required"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// SendCodeInput defines the data required to request a verification code.
type SendCodeInput struct {
	Mobile  string `json:"mobile" validate:"required"`
	Purpose int    `json:"type" validate:"oneof=1 2 3"`
}

// --- Output DTOs ---

// TokenOutput is the common payload of register and both login variants.
// ExpireTime duplicates the token's embedded expiry as a unix timestamp.
type TokenOutput struct {
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	ExpireTime int64  `json:"expire_time"`
}

// SendCodeOutput reports the expiry hint shown to the client.
type SendCodeOutput struct {
	ExpireTime int `json:"expire_time"`
}

// UserInfoOutput is the payload of the authenticated /info endpoint.
// Mobile is masked before it leaves the service layer.
type UserInfoOutput struct {
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	Mobile        string `json:"mobile"`
	Role          string `json:"role"`
	CompanyID     string `json:"company_id"`
	CreateTime    int64  `json:"create_time"`
	LastLoginTime int64  `json:"last_login_time"`
}

// AuthUsecase defines the identity flows: registration, both login
// variants, password reset, code issuance and the profile lookup.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	SendCode(ctx context.Context, input *SendCodeInput) (*SendCodeOutput, error)
	Info(ctx context.Context, principal entity.Principal) (*UserInfoOutput, error)
}
