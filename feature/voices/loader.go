package voices

import (
	"time"

	"voice-sync/core/provider"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the Voices feature. The feature is disabled when no
// database connection is available, since the sync ledger requires one.
func NewFeature(db *gorm.DB, providerClient provider.Client, logger *zap.Logger, delay time.Duration) *Feature {
	if db == nil {
		return &Feature{enabled: false}
	}
	svc := NewService(db, providerClient, logger, delay)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "voices"
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
