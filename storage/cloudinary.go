package storage

import (
	"context"
	"log"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "meals"

// CloudinaryStore uploads meal images to Cloudinary under a fixed folder
// with a width limit and automatic format/quality optimization.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{client: cld}, nil
}

// Upload sends the file (base64 data-URL string or io.Reader) to Cloudinary
// and returns its secure URL
func (s *CloudinaryStore) Upload(ctx context.Context, file any) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadFolder,
		Transformation: "c_limit,w_1200/f_auto,q_auto",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// Delete removes the asset behind url from Cloudinary. URLs that do not
// belong to Cloudinary (legacy local paths) are ignored. Failures are
// logged, not propagated.
func (s *CloudinaryStore) Delete(ctx context.Context, url string) error {
	publicID := PublicIDFromURL(url)
	if publicID == "" {
		return nil
	}
	if _, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("Failed to delete Cloudinary image %s: %v", publicID, err)
		return nil
	}
	log.Printf("Deleted Cloudinary image: %s", publicID)
	return nil
}

// PublicIDFromURL derives the Cloudinary public ID from a delivery URL: the
// last path segment stripped of its extension, prefixed with the upload
// folder. Returns "" for URLs outside Cloudinary.
func PublicIDFromURL(url string) string {
	if url == "" || !strings.Contains(url, "cloudinary.com") {
		return ""
	}
	filename := url[strings.LastIndex(url, "/")+1:]
	name := strings.TrimSuffix(filename, path.Ext(filename))
	if name == "" {
		return ""
	}
	return uploadFolder + "/" + name
}
