package voices

import (
	"context"
	"time"

	"voice-sync/core/provider"
	"voice-sync/feature/voices/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles voice sync operations.
type Service struct {
	store      Store
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewService creates a new voices service.
func NewService(db *gorm.DB, providerClient provider.Client, logger *zap.Logger, delay time.Duration) *Service {
	store := NewStore(db)
	return &Service{
		store:      store,
		reconciler: NewReconciler(store, providerClient, logger, delay),
		logger:     logger,
	}
}

// SyncVoice propagates the voice to all active credentials.
func (s *Service) SyncVoice(ctx context.Context, voiceID, ownerID, name string) (FanOutSummary, error) {
	return s.reconciler.SyncToAllActive(ctx, voiceID, ownerID, name)
}

// RetryVoice re-attempts the voice's failed syncs against still-active credentials.
func (s *Service) RetryVoice(ctx context.Context, voiceID, ownerID, name string) (RetrySummary, error) {
	return s.reconciler.RetryFailed(ctx, voiceID, ownerID, name)
}

// IsAlreadySynced reports whether a credential already has the voice.
func (s *Service) IsAlreadySynced(ctx context.Context, credentialID, voiceID string) (bool, error) {
	return s.reconciler.IsAlreadySynced(ctx, credentialID, voiceID)
}

// VoiceSyncs returns the ledger rows for a voice.
func (s *Service) VoiceSyncs(ctx context.Context, voiceID string) ([]models.VoiceSync, error) {
	return s.store.ListSyncsByVoice(ctx, voiceID)
}

// CredentialSyncs returns the ledger rows for a credential.
func (s *Service) CredentialSyncs(ctx context.Context, credentialID string) ([]models.VoiceSync, error) {
	return s.store.ListSyncsByCredential(ctx, credentialID)
}
