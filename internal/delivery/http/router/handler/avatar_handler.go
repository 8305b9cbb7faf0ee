package handler

import (
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"staffhub/config"
	"staffhub/internal/delivery/http/response"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// allowedAvatarExts maps accepted file extensions. Only JPG and PNG pass.
var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AvatarHandler holds dependencies for the avatar upload endpoints.
type AvatarHandler struct {
	uc      usecase.AvatarUsecase
	maxSize int64
	logger  *slog.Logger
}

// NewAvatarHandler is the constructor for AvatarHandler, injected by Fx.
func NewAvatarHandler(uc usecase.AvatarUsecase, cfg *config.Config, logger *slog.Logger) *AvatarHandler {
	maxSize := int64(2 << 20)
	if cfg != nil && cfg.Upload != nil && cfg.Upload.MaxSizeByte > 0 {
		maxSize = cfg.Upload.MaxSizeByte
	}

	return &AvatarHandler{uc: uc, maxSize: maxSize, logger: logger}
}

// Upload handles POST /avatar/upload: store the file, return its URL.
func (h *AvatarHandler) Upload(c echo.Context) error {
	file, ext, err := h.openAvatarFile(c)
	if err != nil {
		return err
	}
	defer file.Close()

	output, err := h.uc.Upload(c.Request().Context(), file, ext)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "头像上传成功", output)
}

// UploadFor handles POST /avatar/:employeeId: store the file and bind it
// to the profile, behind the ownership gate.
func (h *AvatarHandler) UploadFor(c echo.Context) error {
	employeeID, err := pathID(c, "employeeId")
	if err != nil {
		return err
	}

	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	file, ext, err := h.openAvatarFile(c)
	if err != nil {
		return err
	}
	defer file.Close()

	output, err := h.uc.UploadFor(c.Request().Context(), principal, employeeID, file, ext)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.LegacySuccess(c, "头像上传成功", output)
}

// openAvatarFile validates the multipart "avatar" part: present, JPG/PNG
// by extension and declared content type, and within the size limit.
func (h *AvatarHandler) openAvatarFile(c echo.Context) (multipart.File, string, error) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return nil, "", domainerrors.ErrNoFileUploaded
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !allowedAvatarExts[ext] || !strings.HasPrefix(contentType, "image/") {
		return nil, "", domainerrors.ErrBadFileType
	}

	if fileHeader.Size > h.maxSize {
		return nil, "", domainerrors.ErrUploadFailed
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open uploaded file")
	}

	return file, ext, nil
}
