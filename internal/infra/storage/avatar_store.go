// Package storage persists uploaded files through gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"staffhub/config"
	"staffhub/internal/domain/service"
)

// avatarStore implements service.AvatarStore on a local fileblob bucket.
// Swapping the bucket opener moves uploads to s3/gcs without touching
// callers.
type avatarStore struct {
	bucket    *blob.Bucket
	urlPrefix string
	logger    *slog.Logger
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStore opens the upload bucket and closes it on shutdown.
func NewAvatarStore(params Params) (service.AvatarStore, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Upload.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &avatarStore{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(params.Config.Upload.URLPrefix, "/"),
		logger:    params.Logger,
	}, nil
}

// Save streams the image into the bucket under a random name.
func (s *avatarStore) Save(ctx context.Context, r io.Reader, ext string) (string, error) {
	key := uuid.New().String() + ext

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentTypeFor(ext)})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		// Best effort removal of the partial object.
		if delErr := s.bucket.Delete(ctx, key); delErr != nil && gcerrors.Code(delErr) != gcerrors.NotFound {
			s.logger.WarnContext(ctx, "删除失败的上传文件时出错", slog.String("key", key), slog.Any("error", delErr))
		}

		return "", errors.Wrap(err, "failed to write avatar")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize avatar")
	}

	return s.urlPrefix + "/" + key, nil
}

// Remove deletes a stored avatar by its URL path. Missing objects and
// foreign paths are ignored.
func (s *avatarStore) Remove(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete avatar")
	}

	return nil
}

func contentTypeFor(ext string) string {
	if strings.EqualFold(ext, ".png") {
		return "image/png"
	}

	return "image/jpeg"
}
