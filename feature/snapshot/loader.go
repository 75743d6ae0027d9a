package snapshot

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sku-mapper/core/storage"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the snapshot feature. It stays disabled when client is
// nil (snapshot storage not configured).
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	f := &Feature{enabled: client != nil}
	if f.enabled {
		f.service = NewService(client, bucket, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
