package usecase

import (
	"context"
	"io"

	"staffhub/internal/domain/entity"
)

// AvatarOutput reports the public URL of a stored avatar.
type AvatarOutput struct {
	URL string `json:"url"`
}

// AvatarUsecase stores avatar images. UploadFor additionally binds the
// image to an employee profile, behind the ownership gate.
type AvatarUsecase interface {
	Upload(ctx context.Context, r io.Reader, ext string) (*AvatarOutput, error)
	UploadFor(ctx context.Context, principal entity.Principal, employeeID int64, r io.Reader, ext string) (*AvatarOutput, error)
}
