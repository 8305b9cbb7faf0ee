package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/domain/service"
	"staffhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// avatarService implements the AvatarUsecase interface.
type avatarService struct {
	store        service.AvatarStore
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// AvatarServiceParams holds dependencies for AvatarService, injected by Fx.
type AvatarServiceParams struct {
	fx.In

	Store        service.AvatarStore
	EmployeeRepo repository.EmployeeRepository
	Logger       *slog.Logger
}

// NewAvatarService is the constructor for avatarService.
func NewAvatarService(params AvatarServiceParams) usecase.AvatarUsecase {
	return &avatarService{
		store:        params.Store,
		employeeRepo: params.EmployeeRepo,
		logger:       params.Logger,
	}
}

func (srv *avatarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the image and returns its public URL without touching any
// profile.
func (srv *avatarService) Upload(ctx context.Context, r io.Reader, ext string) (*usecase.AvatarOutput, error) {
	url, err := srv.store.Save(ctx, r, ext)
	if err != nil {
		srv.log(ctx).Error("failed to store avatar", slog.String("error", err.Error()))

		return nil, domainerrors.ErrUploadFailed
	}

	return &usecase.AvatarOutput{URL: url}, nil
}

// UploadFor stores the image and binds it to an employee profile, behind
// the ownership gate. The replaced avatar blob is removed best-effort.
func (srv *avatarService) UploadFor(ctx context.Context, principal entity.Principal, employeeID int64, r io.Reader, ext string) (*usecase.AvatarOutput, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find staff")
	}

	if !principal.Owns(employee.UserID) {
		return nil, domainerrors.ErrStaffForbidden
	}

	url, err := srv.store.Save(ctx, r, ext)
	if err != nil {
		srv.log(ctx).Error("failed to store avatar", slog.String("error", err.Error()))

		return nil, domainerrors.ErrUploadFailed
	}

	oldURL, err := srv.employeeRepo.UpdateAvatar(ctx, employeeID, url)
	if err != nil {
		// The fresh blob is orphaned if the profile update fails.
		if removeErr := srv.store.Remove(ctx, url); removeErr != nil {
			srv.log(ctx).Warn("failed to remove orphaned avatar", slog.String("error", removeErr.Error()))
		}

		return nil, domainerrors.ErrUploadFailed
	}

	if oldURL != "" && oldURL != url {
		if err := srv.store.Remove(ctx, oldURL); err != nil {
			srv.log(ctx).Warn("failed to remove replaced avatar",
				slog.String("url", oldURL),
				slog.String("error", err.Error()),
			)
		}
	}

	return &usecase.AvatarOutput{URL: url}, nil
}
