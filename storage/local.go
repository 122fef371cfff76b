package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes images to disk under the public directory. Used when no
// Cloudinary credentials are configured; the URLs it returns carry the local
// upload prefix the meal-delete path recognizes.
type LocalStore struct {
	PublicDir string
}

func NewLocalStore(publicDir string) *LocalStore {
	return &LocalStore{PublicDir: publicDir}
}

func (s *LocalStore) Upload(ctx context.Context, file any) (string, error) {
	var data []byte
	var ext string
	switch f := file.(type) {
	case string:
		var err error
		data, ext, err = DecodeDataURL(f)
		if err != nil {
			return "", err
		}
	case io.Reader:
		var err error
		data, err = io.ReadAll(f)
		if err != nil {
			return "", err
		}
		ext = "bin"
	default:
		return "", errors.New("unsupported file type")
	}

	dir := filepath.Join(s.PublicDir, "uploads", uploadFolder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	filename := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", err
	}
	return LocalUploadPrefix + uploadFolder + "/" + filename, nil
}

// Delete removes a locally stored image file. URLs outside the local upload
// prefix are ignored; removal failures are logged, not propagated.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, LocalUploadPrefix) {
		return nil
	}
	path := filepath.Join(s.PublicDir, filepath.FromSlash(url))
	if err := os.Remove(path); err != nil {
		log.Printf("Failed to delete image file %s: %v", path, err)
	} else {
		log.Printf("Deleted image file: %s", path)
	}
	return nil
}

// DecodeDataURL decodes a base64 data URL ("data:image/png;base64,....")
// into raw bytes and a file extension
func DecodeDataURL(s string) ([]byte, string, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, "", errors.New("not a data URL")
	}
	meta, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, "", errors.New("malformed data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}

	// "data:image/png;base64" -> "png"
	ext := "bin"
	mime, _, _ := strings.Cut(strings.TrimPrefix(meta, "data:"), ";")
	if _, sub, ok := strings.Cut(mime, "/"); ok {
		if i := strings.Index(sub, "+"); i >= 0 { // e.g. svg+xml
			sub = sub[:i]
		}
		ext = sub
	}
	return data, ext, nil
}
