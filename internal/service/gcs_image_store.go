package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/lshigami/scribeset/config"
	"google.golang.org/api/option"
)

const gcsUploadTimeout = 50 * time.Second

// GCSImageStore keeps images in a public Google Cloud Storage bucket.
type GCSImageStore struct {
	client *storage.Client
	bucket string
	folder string
}

func NewGCSImageStore(ctx context.Context, cfg config.ImageStore) (*GCSImageStore, error) {
	if cfg.GCSBucketName == "" {
		return nil, errors.New("GCS_BUCKET_NAME is not configured")
	}
	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSImageStore{client: client, bucket: cfg.GCSBucketName, folder: cfg.Folder}, nil
}

func (s *GCSImageStore) Upload(ctx context.Context, img ImageUpload) (*StoredImage, error) {
	ctx, cancel := context.WithTimeout(ctx, gcsUploadTimeout)
	defer cancel()

	objectPath := gcsObjectPath(s.folder, img.Filename)
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = img.ContentType
	if _, err := io.Copy(wc, img.Reader); err != nil {
		_ = wc.Close()
		return nil, fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("Writer.Close: %w", err)
	}

	return &StoredImage{
		URL:      fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath),
		PublicID: objectPath,
	}, nil
}

func (s *GCSImageStore) Close() error {
	return s.client.Close()
}

// gcsObjectPath names objects <folder>/<uuid><ext> so uploads never collide.
func gcsObjectPath(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(folder, uuid.NewString()+ext)
}
