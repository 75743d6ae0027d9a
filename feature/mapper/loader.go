package mapper

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sku-mapper/core/match"
	"sku-mapper/core/storage"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the mapper feature. client may be nil when snapshot
// storage is disabled.
func NewFeature(logger *zap.Logger, scorer match.Scorer, threshold int, client storage.Client, bucket string) *Feature {
	svc := NewService(logger, scorer, threshold, client, bucket)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "mapper"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
