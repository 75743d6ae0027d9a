package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for snapshot storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily; the transport timeouts above ensure we don't
	// hang on connection setup, and operation-level contexts cover the rest.

	return &minioClientWrapper{Client: minioClient}, nil
}

type minioClientWrapper struct {
	*minio.Client
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// EnsureBucket checks that the configured bucket exists and creates it when
// missing. Called once at startup before any checkpoint is written.
func EnsureBucket(ctx context.Context, client Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", bucket, err)
	}
	return nil
}
