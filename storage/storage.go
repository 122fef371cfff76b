// Package storage hosts meal image assets, remotely on Cloudinary or on
// local disk as a fallback.
package storage

import "context"

// LocalUploadPrefix marks image URLs served from local disk rather than the
// remote asset store
const LocalUploadPrefix = "/uploads/"

// ImageStore uploads and deletes meal images. Upload accepts either a base64
// data-URL string or an io.Reader and returns the absolute URL of the stored
// asset. Delete is best-effort on implementations where the URL may not
// belong to the store.
type ImageStore interface {
	Upload(ctx context.Context, file any) (string, error)
	Delete(ctx context.Context, url string) error
}
