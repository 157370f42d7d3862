package storage

import (
	"context"
	"io"
)

// BlobService is the object-store facade used by route handlers for
// profile pictures, blog images and assignment files.
type BlobService interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	// Delete removes the object behind a previously returned public URL.
	// Unknown URLs are not an error.
	Delete(ctx context.Context, publicURL string) error
	// PublicURL resolves a stored object key to its public URL.
	PublicURL(key string) string
}
