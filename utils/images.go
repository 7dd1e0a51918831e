package utils

import (
	"context"
	"fmt"
	"io"

	"shop-api/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MaxImageSize caps uploaded image files at 5MB.
const MaxImageSize = 5 << 20

// ImageStore is the external object storage holding product and client
// pictures. Upload returns the hosted URL plus an opaque id used to remove
// the image later.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader) (models.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStore implements ImageStore against Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from a cloudinary:// credential URL.
func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader) (models.Image, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return models.Image{}, fmt.Errorf("upload image: %w", err)
	}
	return models.Image{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy image: %w", err)
	}
	return nil
}
