package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/lshigami/scribeset/config"
)

type cloudinaryImageStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryImageStore(cfg config.ImageStore) (ImageStore, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true
	return &cloudinaryImageStore{cld: cld, folder: cfg.Folder}, nil
}

func (s *cloudinaryImageStore) Upload(ctx context.Context, img ImageUpload) (*StoredImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, img.Reader, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return nil, errors.New("cloudinary upload: empty URL in response")
	}
	return &StoredImage{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
