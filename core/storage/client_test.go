package storage_test

import (
	"context"
	"testing"

	"sku-mapper/core/storage"
	"sku-mapper/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "sku-snapshots",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sku-snapshots").Return(true, nil)

		err := storage.EnsureBucket(context.Background(), client, "sku-snapshots", "")
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatedWhenMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sku-snapshots").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "sku-snapshots", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := storage.EnsureBucket(context.Background(), client, "sku-snapshots", "us-east-1")
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}
