package service

import "context"

// ImageStore persists product images and serves them from public URLs.
type ImageStore interface {
	// Save writes the image under a generated key and returns its public URL.
	Save(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// Delete removes a previously saved image by its public URL.
	Delete(ctx context.Context, url string) error
}
