package snapshot_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"sku-mapper/core/storage/mocks"
	"sku-mapper/feature/snapshot"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestService_List(t *testing.T) {
	now := time.Now()
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "sku-snapshots", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 2)
			ch <- minio.ObjectInfo{Key: "checkpoints/abc/mappings.csv", Size: 42, LastModified: now}
			ch <- minio.ObjectInfo{Key: "checkpoints/def/mappings.csv", Size: 7, LastModified: now}
			close(ch)
			return ch
		})

	svc := snapshot.NewService(mockClient, "sku-snapshots", zap.NewNop())

	infos, err := svc.List(context.Background(), "checkpoints/")
	assert.NoError(t, err)
	assert.Len(t, infos, 2)
	assert.Equal(t, "checkpoints/abc/mappings.csv", infos[0].Key)
	assert.Equal(t, int64(42), infos[0].Size)
}

func TestService_ListPropagatesErrors(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "sku-snapshots", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Err: assert.AnError}
			close(ch)
			return ch
		})

	svc := snapshot.NewService(mockClient, "sku-snapshots", zap.NewNop())

	_, err := svc.List(context.Background(), "")
	assert.Error(t, err)
}

func TestService_Get(t *testing.T) {
	content := "SKU,MSKU\nCST-01,ABC-100\n"
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "sku-snapshots", "checkpoints/abc/mappings.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(content))), nil)

	svc := snapshot.NewService(mockClient, "sku-snapshots", zap.NewNop())

	obj, err := svc.Get(context.Background(), "checkpoints/abc/mappings.csv")
	assert.NoError(t, err)
	defer obj.Close()

	data, err := io.ReadAll(obj)
	assert.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFeature_DisabledWithoutStorage(t *testing.T) {
	feature := snapshot.NewFeature(nil, "", zap.NewNop())
	assert.False(t, feature.IsEnabled())

	enabled := snapshot.NewFeature(new(mocks.Client), "sku-snapshots", zap.NewNop())
	assert.True(t, enabled.IsEnabled())
}
