package service

import (
	"context"
	"fmt"
	"io"

	"github.com/lshigami/scribeset/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// ImageUpload is a contributor image on its way to the hosting service.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// StoredImage is the durable reference handed back by the hosting service.
type StoredImage struct {
	URL      string
	PublicID string
}

// ImageStore uploads images to an external hosting service.
type ImageStore interface {
	Upload(ctx context.Context, img ImageUpload) (*StoredImage, error)
}

// NewImageStore builds the ImageStore selected by IMAGE_STORE.
func NewImageStore(lc fx.Lifecycle, cfg *config.Config) (ImageStore, error) {
	switch cfg.ImageStore.Provider {
	case "cloudinary":
		return NewCloudinaryImageStore(cfg.ImageStore)
	case "gcs":
		store, err := NewGCSImageStore(context.Background(), cfg.ImageStore)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("Closing GCS client")
				return store.Close()
			},
		})
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported image store %q", cfg.ImageStore.Provider)
	}
}
