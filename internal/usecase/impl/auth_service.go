// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"staffhub/config"
	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/domain/service"
	"staffhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	codeRepo         repository.VerificationCodeRepository
	credentials      service.CredentialValidator
	tokenService     service.TokenService
	codeSender       service.CodeSender
	codeTTL          time.Duration
	clientExpireHint int
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CodeRepo     repository.VerificationCodeRepository
	Credentials  service.CredentialValidator
	TokenService service.TokenService
	CodeSender   service.CodeSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	codeTTL := time.Hour
	clientExpireHint := 300
	if params.Config != nil && params.Config.Verification != nil {
		codeTTL = params.Config.Verification.CodeTTL
		clientExpireHint = params.Config.Verification.ClientExpireHint
	}

	return &authService{
		userRepo:         params.UserRepo,
		codeRepo:         params.CodeRepo,
		credentials:      params.Credentials,
		tokenService:     params.TokenService,
		codeSender:       params.CodeSender,
		codeTTL:          codeTTL,
		clientExpireHint: clientExpireHint,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a User-role account after all credential checks pass.
// Nothing is written before the last check, so a failed registration leaves
// no partial state. The unique index on user_name backs up the existence
// check when two registrations race.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	if input.UserName == "" || input.Password == "" || input.Mobile == "" || input.Code == "" {
		return nil, domainerrors.ErrBadParams
	}
	if !srv.credentials.ValidatePasswordFormat(input.Password) {
		return nil, domainerrors.ErrPasswordFormat
	}
	if !srv.credentials.ValidateMobileFormat(input.Mobile) {
		return nil, domainerrors.ErrMobileFormat
	}

	ok, err := srv.consumeCode(ctx, input.Mobile, input.Code, entity.PurposeRegister)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrCodeInvalid
	}

	if _, err := srv.userRepo.FindByUserName(ctx, input.UserName); err == nil {
		return nil, domainerrors.ErrUserNameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hash, err := srv.credentials.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		UserName:     input.UserName,
		PasswordHash: hash,
		Mobile:       input.Mobile,
		Role:         entity.RoleUser,
		CompanyID:    input.CompanyID,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrUserNameTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("user_name", user.UserName),
	)

	return srv.issueToken(user)
}

// Login dispatches on input.Type: 0 is username/password, 1 is mobile/code.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	switch input.Type {
	case usecase.LoginByPassword:
		return srv.loginByPassword(ctx, input.UserName, input.Password)
	case usecase.LoginByCode:
		return srv.loginByCode(ctx, input.Mobile, input.Code)
	default:
		return nil, domainerrors.ErrBadParams
	}
}

// loginByPassword answers the same generic failure for an unknown username
// and a wrong password, so the endpoint cannot be used to probe which
// usernames exist.
func (srv *authService) loginByPassword(ctx context.Context, userName, password string) (*usecase.TokenOutput, error) {
	if userName == "" || password == "" {
		return nil, domainerrors.ErrBadParams
	}

	user, err := srv.userRepo.FindByUserName(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrBadCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.credentials.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrBadCredentials
	}

	srv.touchLastLogin(ctx, user.ID)

	return srv.issueToken(user)
}

func (srv *authService) loginByCode(ctx context.Context, mobile, code string) (*usecase.TokenOutput, error) {
	if mobile == "" || code == "" {
		return nil, domainerrors.ErrBadParams
	}

	ok, err := srv.consumeCode(ctx, mobile, code, entity.PurposeLogin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerrors.ErrCodeInvalid
	}

	user, err := srv.userRepo.FindByMobile(ctx, mobile)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrMobileUnknown
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by mobile")
	}

	srv.touchLastLogin(ctx, user.ID)

	return srv.issueToken(user)
}

// ResetPassword replaces the stored hash for the account bound to the
// mobile number after the new password and the code both check out.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Mobile == "" || input.Code == "" || input.NewPassword == "" {
		return domainerrors.ErrBadParams
	}
	if !srv.credentials.ValidatePasswordFormat(input.NewPassword) {
		return domainerrors.ErrPasswordFormat
	}

	ok, err := srv.consumeCode(ctx, input.Mobile, input.Code, entity.PurposeResetPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrCodeInvalid
	}

	hash, err := srv.credentials.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, input.Mobile, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrMobileUnknown
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("password reset", slog.String("mobile", entity.MaskMobile(input.Mobile)))

	return nil
}

// SendCode issues a fresh 6-digit code. Earlier live codes for the same
// mobile and purpose stay valid until they expire on their own. The
// expire_time answered to the client is a display hint and is deliberately
// shorter than the stored validity window.
func (srv *authService) SendCode(ctx context.Context, input *usecase.SendCodeInput) (*usecase.SendCodeOutput, error) {
	if !srv.credentials.ValidateMobileFormat(input.Mobile) {
		return nil, domainerrors.ErrMobileFormat
	}

	purpose := entity.CodePurpose(input.Purpose)
	if !purpose.IsValid() {
		return nil, domainerrors.ErrBadParams
	}

	now := srv.now()
	code := &entity.VerificationCode{
		Mobile:    input.Mobile,
		Code:      fmt.Sprintf("%06d", 100000+rand.IntN(900000)),
		Purpose:   purpose,
		ExpiresAt: now.Add(srv.codeTTL),
		CreatedAt: now,
	}
	if err := srv.codeRepo.Create(ctx, code); err != nil {
		return nil, errors.Wrap(err, "failed to store verification code")
	}

	if err := srv.codeSender.Send(ctx, input.Mobile, code.Code); err != nil {
		return nil, errors.Wrap(err, "failed to send verification code")
	}

	return &usecase.SendCodeOutput{ExpireTime: srv.clientExpireHint}, nil
}

// Info returns the caller's own account record with the mobile masked.
func (srv *authService) Info(ctx context.Context, principal entity.Principal) (*usecase.UserInfoOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	// An account that has never logged in reports 0, not the zero time's
	// negative epoch offset.
	var lastLogin int64
	if !user.LastLoginAt.IsZero() {
		lastLogin = user.LastLoginAt.Unix()
	}

	return &usecase.UserInfoOutput{
		UserID:        user.ID,
		UserName:      user.UserName,
		Mobile:        entity.MaskMobile(user.Mobile),
		Role:          user.Role.String(),
		CompanyID:     user.CompanyID,
		CreateTime:    user.CreatedAt.Unix(),
		LastLoginTime: lastLogin,
	}, nil
}

// consumeCode reports whether a live code matches mobile, code and purpose.
// The newest matching row wins; a miss is a normal negative, not an error.
// Codes carry no consumed flag, so a live code stays usable until expiry.
func (srv *authService) consumeCode(ctx context.Context, mobile, code string, purpose entity.CodePurpose) (bool, error) {
	_, err := srv.codeRepo.FindLatestValid(ctx, mobile, code, purpose, srv.now())
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up verification code")
	}

	return true, nil
}

// touchLastLogin updates the login timestamp best-effort. A failure here
// must not abort an otherwise valid login.
func (srv *authService) touchLastLogin(ctx context.Context, userID int64) {
	if err := srv.userRepo.TouchLastLogin(ctx, userID, srv.now()); err != nil {
		srv.log(ctx).Warn("failed to record last login time",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}

// issueToken signs a token for the user's current identity and renders the
// common auth payload.
func (srv *authService) issueToken(user *entity.User) (*usecase.TokenOutput, error) {
	principal := entity.Principal{
		UserID:   user.ID,
		UserName: user.UserName,
		Role:     user.Role,
	}

	token, expiresAt, err := srv.tokenService.Issue(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.TokenOutput{
		UserID:     user.ID,
		UserName:   user.UserName,
		Role:       user.Role.String(),
		Token:      token,
		ExpireTime: expiresAt.Unix(),
	}, nil
}
