package snapshot

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"sku-mapper/core/storage"
)

// Info describes one stored snapshot object.
type Info struct {
	// Key is the object name within the snapshot bucket.
	Key string `json:"key"`

	// Size is the object size in bytes.
	Size int64 `json:"size"`

	// LastModified is the upload timestamp.
	LastModified time.Time `json:"last_modified"`
}

// Service lists and fetches snapshot objects.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// List returns every snapshot object under prefix (empty lists all).
func (s *Service) List(ctx context.Context, prefix string) ([]Info, error) {
	infos := []Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		infos = append(infos, Info{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

// Get streams the content of one snapshot object.
func (s *Service) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
}

// Delete removes one snapshot object.
func (s *Service) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return err
	}
	s.logger.Info("Deleted snapshot", zap.String("key", key))
	return nil
}
