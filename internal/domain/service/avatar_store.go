package service

import (
	"context"
	"io"
)

// AvatarStore persists uploaded avatar images and serves them by URL path.
type AvatarStore interface {
	// Save writes the image under a fresh name derived from ext
	// (".jpg"/".png") and returns the public URL path.
	Save(ctx context.Context, r io.Reader, ext string) (string, error)

	// Remove deletes a previously stored avatar by its URL path.
	// Unknown paths are not an error.
	Remove(ctx context.Context, url string) error
}
